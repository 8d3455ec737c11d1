package decoder

import (
	"context"

	"github.com/gotd/td/tg"

	"github.com/sanpater/pyrogram/internal/model"
	"github.com/sanpater/pyrogram/internal/peers"
)

// decodeService handles chat-lifecycle records. The action dispatch fills
// exactly one payload field; actions this layer does not understand leave
// the service tag empty.
func (d *Decoder) decodeService(ctx context.Context, msg *tg.MessageService, tables Tables, opts Options) (*model.Message, error) {
	fromPeer, _ := msg.GetFromID()

	userID := peers.RawID(fromPeer)
	if userID == 0 {
		userID = peers.RawID(msg.PeerID)
	}
	fromUser := userFromTables(tables, userID)
	var sender *model.Chat
	if fromUser == nil {
		sender = senderChat(fromPeer, msg.PeerID, tables)
	}

	out := &model.Message{
		ID:                   msg.ID,
		Date:                 unixTime(msg.Date),
		Chat:                 chatFromPeer(msg.PeerID, tables),
		FromUser:             fromUser,
		SenderChat:           sender,
		BusinessConnectionID: opts.BusinessConnectionID,
		Raw:                  msg,
	}

	d.applyAction(msg, out, tables)

	switch a := msg.Action.(type) {
	case *tg.MessageActionPinMessage:
		pinned, err := d.fetch.FetchPinned(ctx, out.Chat.ID)
		switch {
		case err == nil:
			out.PinnedMessage = pinned
			out.Service = model.ServicePinnedMessage
		case !swallowable(err):
			return nil, err
		}
	case *tg.MessageActionGameScore:
		out.GameHighScore = &model.GameHighScore{
			User:  fromUser,
			Score: a.Score,
		}
		if msg.ReplyTo != nil && opts.ReplyDepth > 0 {
			target, err := d.fetch.FetchReplyOf(ctx, out.Chat.ID, msg.ID, 0)
			switch {
			case err == nil:
				out.ReplyToMessage = target
				out.Service = model.ServiceGameHighScore
			case !swallowable(err):
				return nil, err
			}
		}
	}

	d.cache.Put(out.Chat.ID, out.ID, out)

	if header, ok := msg.ReplyTo.(*tg.MessageReplyHeader); ok && header.ForumTopic {
		out.TopicMessage = true
		out.MessageThreadID = threadID(header)
	}

	return out, nil
}

// applyAction maps one raw service action onto the message's payload
// cluster and tag.
func (d *Decoder) applyAction(msg *tg.MessageService, out *model.Message, tables Tables) {
	switch a := msg.Action.(type) {
	case *tg.MessageActionChatAddUser:
		for _, id := range a.Users {
			if u := userFromTables(tables, id); u != nil {
				out.NewChatMembers = append(out.NewChatMembers, u)
			}
		}
		out.Service = model.ServiceNewChatMembers
		out.ChatJoinType = model.JoinByAdd
	case *tg.MessageActionChatJoinedByLink:
		fromPeer, _ := msg.GetFromID()
		if u := userFromTables(tables, peers.RawID(fromPeer)); u != nil {
			out.NewChatMembers = append(out.NewChatMembers, u)
		}
		out.Service = model.ServiceNewChatMembers
		out.ChatJoinType = model.JoinByLink
	case *tg.MessageActionChatJoinedByRequest:
		fromPeer, _ := msg.GetFromID()
		if u := userFromTables(tables, peers.RawID(fromPeer)); u != nil {
			out.NewChatMembers = append(out.NewChatMembers, u)
		}
		out.Service = model.ServiceNewChatMembers
		out.ChatJoinType = model.JoinByRequest
	case *tg.MessageActionChatDeleteUser:
		out.LeftChatMember = userFromTables(tables, a.UserID)
		out.Service = model.ServiceLeftChatMember
	case *tg.MessageActionChatEditTitle:
		out.NewChatTitle = a.Title
		out.Service = model.ServiceNewChatTitle
	case *tg.MessageActionChatDeletePhoto:
		out.DeleteChatPhoto = true
		out.Service = model.ServiceDeleteChatPhoto
	case *tg.MessageActionChatMigrateTo:
		out.MigrateToChatID = peers.ChannelID(a.ChannelID)
		out.Service = model.ServiceMigrateToChatID
	case *tg.MessageActionChannelMigrateFrom:
		out.MigrateFromChatID = -a.ChatID
		out.Service = model.ServiceMigrateFromChatID
	case *tg.MessageActionChatCreate:
		out.GroupChatCreated = true
		out.Service = model.ServiceGroupChatCreated
	case *tg.MessageActionChannelCreate:
		out.ChannelChatCreated = true
		out.Service = model.ServiceChannelChatCreated
	case *tg.MessageActionChatEditPhoto:
		out.NewChatPhoto = decodePhoto(a.Photo, 0)
		out.Service = model.ServiceNewChatPhoto
	case *tg.MessageActionCustomAction:
		t := model.NewStr(a.Message, nil)
		out.Text = &t
		out.Service = model.ServiceCustomAction
	case *tg.MessageActionTopicCreate:
		created := &model.ForumTopicCreated{
			Title:     a.Title,
			IconColor: a.IconColor,
		}
		created.IconEmojiID, _ = a.GetIconEmojiID()
		out.ForumTopicCreated = created
		out.Service = model.ServiceForumTopicCreated
	case *tg.MessageActionTopicEdit:
		d.applyTopicEdit(a, out)
	case *tg.MessageActionGroupCallScheduled:
		out.VideoChatScheduled = &model.VideoChatScheduled{StartDate: unixTime(a.ScheduleDate)}
		out.Service = model.ServiceVideoChatScheduled
	case *tg.MessageActionGroupCall:
		if dur, ok := a.GetDuration(); ok && dur != 0 {
			out.VideoChatEnded = &model.VideoChatEnded{Duration: dur}
			out.Service = model.ServiceVideoChatEnded
		} else {
			out.VideoChatStarted = &model.VideoChatStarted{}
			out.Service = model.ServiceVideoChatStarted
		}
	case *tg.MessageActionInviteToGroupCall:
		invited := &model.VideoChatMembersInvited{}
		for _, id := range a.Users {
			if u := userFromTables(tables, id); u != nil {
				invited.Users = append(invited.Users, u)
			}
		}
		out.VideoChatMembersInvited = invited
		out.Service = model.ServiceVideoChatInvited
	case *tg.MessageActionPhoneCall:
		if reason, ok := a.GetReason(); ok {
			ended := &model.PhoneCallEnded{
				IsVideo: a.Video,
				CallID:  a.CallID,
				Reason:  discardReason(reason),
			}
			ended.Duration, _ = a.GetDuration()
			out.PhoneCallEnded = ended
			out.Service = model.ServicePhoneCallEnded
		} else {
			out.PhoneCallStarted = &model.PhoneCallStarted{
				IsVideo: a.Video,
				CallID:  a.CallID,
			}
			out.Service = model.ServicePhoneCallStarted
		}
	case *tg.MessageActionWebViewDataSentMe:
		out.WebAppData = &model.WebAppData{
			Data:       a.Data,
			ButtonText: a.Text,
		}
		out.Service = model.ServiceWebAppData
	case *tg.MessageActionGiveawayLaunch:
		created := &model.GiveawayCreated{}
		created.Stars, _ = a.GetStars()
		out.GiveawayCreated = created
		out.Service = model.ServiceGiveawayCreated
	case *tg.MessageActionGiveawayResults:
		completed := &model.GiveawayCompleted{
			WinnersCount:   a.WinnersCount,
			UnclaimedCount: a.UnclaimedCount,
			IsStarGiveaway: a.Stars,
		}
		if header, ok := msg.ReplyTo.(*tg.MessageReplyHeader); ok {
			completed.GiveawayMessageID, _ = header.GetReplyToMsgID()
		}
		out.GiveawayCompleted = completed
		out.Service = model.ServiceGiveawayCompleted
	case *tg.MessageActionGiftCode:
		code := &model.GiftCode{
			ViaGiveaway: a.ViaGiveaway,
			IsUnclaimed: a.Unclaimed,
			Months:      a.Months,
			Slug:        a.Slug,
		}
		if peer, ok := a.GetBoostPeer(); ok {
			code.BoostChatID = peers.ID(peer)
		}
		code.Currency, _ = a.GetCurrency()
		code.Amount, _ = a.GetAmount()
		out.GiftCode = code
		out.Service = model.ServiceGiftCode
	case *tg.MessageActionRequestedPeer:
		req := &model.RequestedChats{ButtonID: a.ButtonID}
		for _, peer := range a.Peers {
			req.PeerIDs = append(req.PeerIDs, peers.ID(peer))
		}
		out.RequestedChats = req
		out.Service = model.ServiceRequestedChats
	case *tg.MessageActionRequestedPeerSentMe:
		req := &model.RequestedChats{ButtonID: a.ButtonID}
		for _, peer := range a.Peers {
			req.PeerIDs = append(req.PeerIDs, requestedPeerID(peer))
		}
		out.RequestedChats = req
		out.Service = model.ServiceRequestedChats
	case *tg.MessageActionPaymentSent:
		payment := &model.SuccessfulPayment{
			Currency:    a.Currency,
			TotalAmount: a.TotalAmount,
		}
		payment.InvoiceSlug, _ = a.GetInvoiceSlug()
		out.SuccessfulPayment = payment
		out.Service = model.ServiceSuccessfulPayment
	case *tg.MessageActionPaymentSentMe:
		payment := &model.SuccessfulPayment{
			Currency:                a.Currency,
			TotalAmount:             a.TotalAmount,
			Payload:                 string(a.Payload),
			TelegramPaymentChargeID: a.Charge.ID,
			ProviderPaymentChargeID: a.Charge.ProviderChargeID,
		}
		payment.ShippingOptionID, _ = a.GetShippingOptionID()
		out.SuccessfulPayment = payment
		out.Service = model.ServiceSuccessfulPayment
	case *tg.MessageActionPaymentRefunded:
		refund := &model.RefundedPayment{
			Currency:                a.Currency,
			TotalAmount:             a.TotalAmount,
			TelegramPaymentChargeID: a.Charge.ID,
			ProviderPaymentChargeID: a.Charge.ProviderChargeID,
		}
		if payload, ok := a.GetPayload(); ok {
			refund.Payload = string(payload)
		}
		out.RefundedPayment = refund
		out.Service = model.ServiceRefundedPayment
	case *tg.MessageActionSetMessagesTTL:
		out.ChatTTLPeriod = a.Period
		out.Service = model.ServiceChatTTLChanged
	case *tg.MessageActionBoostApply:
		out.BoostsApplied = a.Boosts
		out.Service = model.ServiceBoostApply
	case *tg.MessageActionStarGift:
		out.Gift = d.decodeGift(a, tables)
		out.Service = model.ServiceGift
	case *tg.MessageActionBotAllowed:
		if domain, ok := a.GetDomain(); ok && domain != "" {
			out.ConnectedWebsite = domain
			out.Service = model.ServiceConnectedWebsite
		} else {
			allowed := &model.WriteAccessAllowed{
				FromRequest:        a.FromRequest,
				FromAttachmentMenu: a.AttachMenu,
			}
			if rawApp, ok := a.GetApp(); ok {
				if app, ok := rawApp.(*tg.BotApp); ok {
					allowed.WebAppName = app.ShortName
				}
			}
			out.WriteAccessAllowed = allowed
			out.Service = model.ServiceWriteAccessAllowed
		}
	case *tg.MessageActionScreenshotTaken:
		out.ScreenshotTaken = &model.ScreenshotTaken{}
		out.Service = model.ServiceScreenshotTaken
	case *tg.MessageActionContactSignUp:
		out.ContactRegistered = &model.ContactRegistered{}
		out.Service = model.ServiceContactRegistered
	}
}

// applyTopicEdit resolves the overloaded topic-edit action: a title change,
// the general topic being hidden, a topic closing, or a reopen.
func (d *Decoder) applyTopicEdit(a *tg.MessageActionTopicEdit, out *model.Message) {
	title, _ := a.GetTitle()
	hidden, hiddenSet := a.GetHidden()
	closed, closedSet := a.GetClosed()

	switch {
	case title != "":
		edited := &model.ForumTopicEdited{Title: title}
		edited.IconEmojiID, _ = a.GetIconEmojiID()
		out.ForumTopicEdited = edited
		out.Service = model.ServiceForumTopicEdited
	case hiddenSet && hidden:
		out.GeneralTopicHidden = &model.GeneralTopicHidden{}
		out.Service = model.ServiceGeneralTopicHidden
	case closedSet && closed:
		out.ForumTopicClosed = &model.ForumTopicClosed{}
		out.Service = model.ServiceForumTopicClosed
	default:
		if hiddenSet && hidden {
			out.GeneralTopicUnhidden = &model.GeneralTopicUnhidden{}
			out.Service = model.ServiceGeneralTopicUnhidden
		} else {
			out.ForumTopicReopened = &model.ForumTopicReopened{}
			out.Service = model.ServiceForumTopicReopened
		}
	}
}

func (d *Decoder) decodeGift(a *tg.MessageActionStarGift, tables Tables) *model.Gift {
	gift := &model.Gift{
		IsNameHidden: a.NameHidden,
		IsSaved:      a.Saved,
	}
	gift.ConvertStars = a.ConvertStars
	if caption, ok := a.GetMessage(); ok {
		t := model.NewStr(caption.Text, decodeEntities(caption.Entities, tables))
		gift.Caption = &t
	}
	if record := starGiftRecord(a.Gift); record != nil {
		gift.ID = record.ID
		gift.Stars = record.Stars
		if gift.ConvertStars == 0 {
			gift.ConvertStars = record.ConvertStars
		}
		gift.IsLimited = record.Limited
		gift.Sticker = stickerFromDocument(record.Sticker)
	}
	return gift
}

func starGiftRecord(gift any) *tg.StarGift {
	switch g := gift.(type) {
	case *tg.StarGift:
		return g
	case tg.StarGift:
		return &g
	}
	return nil
}

func requestedPeerID(peer tg.RequestedPeerClass) int64 {
	switch p := peer.(type) {
	case *tg.RequestedPeerUser:
		return p.UserID
	case *tg.RequestedPeerChat:
		return -p.ChatID
	case *tg.RequestedPeerChannel:
		return peers.ChannelID(p.ChannelID)
	default:
		return 0
	}
}

func discardReason(reason tg.PhoneCallDiscardReasonClass) model.CallDiscardReason {
	switch reason.(type) {
	case *tg.PhoneCallDiscardReasonMissed:
		return model.CallDiscardMissed
	case *tg.PhoneCallDiscardReasonDisconnect:
		return model.CallDiscardDisconnected
	case *tg.PhoneCallDiscardReasonHangup:
		return model.CallDiscardHangup
	case *tg.PhoneCallDiscardReasonBusy:
		return model.CallDiscardBusy
	default:
		return model.CallDiscardUnknown
	}
}
