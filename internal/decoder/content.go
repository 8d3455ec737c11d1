package decoder

import (
	"context"

	"github.com/gotd/td/tg"

	"github.com/sanpater/pyrogram/internal/model"
	"github.com/sanpater/pyrogram/internal/peers"
)

// decodeContent handles regular content-bearing records: text, media,
// forward and reply linkage, markup and counters.
func (d *Decoder) decodeContent(ctx context.Context, msg *tg.Message, tables Tables, opts Options) (*model.Message, error) {
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

	entities := decodeEntities(msg.Entities, tables)

	out := &model.Message{
		ID:                    msg.ID,
		Date:                  unixTime(msg.Date),
		Chat:                  chatFromPeer(msg.PeerID, tables),
		FromUser:              fromUser,
		SenderChat:            sender,
		Mentioned:             msg.Mentioned,
		Scheduled:             opts.Scheduled,
		FromScheduled:         msg.FromScheduled,
		Outgoing:              msg.Out,
		EditHidden:            msg.EditHide,
		HasProtectedContent:   msg.Noforwards,
		ShowCaptionAboveMedia: msg.InvertMedia,
		FromOffline:           msg.Offline,
		BusinessConnectionID:  opts.BusinessConnectionID,
		Raw:                   msg,
	}
	out.AuthorSignature, _ = msg.GetPostAuthor()
	if edited, ok := msg.GetEditDate(); ok {
		out.EditDate = unixTime(edited)
	}
	out.MediaGroupID, _ = msg.GetGroupedID()
	out.EffectID, _ = msg.GetEffect()
	out.Views, _ = msg.GetViews()
	out.Forwards, _ = msg.GetForwards()
	out.SenderBoostCount, _ = msg.GetFromBoostsApplied()
	if id, ok := msg.GetViaBotID(); ok {
		out.ViaBot = userFromTables(tables, id)
	}
	if id, ok := msg.GetViaBusinessBotID(); ok {
		out.SenderBusinessBot = userFromTables(tables, id)
	}
	if reactions, ok := msg.GetReactions(); ok {
		out.Reactions = decodeReactions(&reactions)
	}

	fwd, hasFwd := msg.GetFwdFrom()
	if hasFwd {
		out.ForwardDate = unixTime(fwd.Date)
		if fwdPeer, ok := fwd.GetFromID(); ok {
			if peers.ID(fwdPeer) > 0 {
				out.ForwardFrom = userFromTables(tables, peers.RawID(fwdPeer))
			} else {
				out.ForwardFromChat = chatFromPeer(fwdPeer, tables)
				out.ForwardFromMessageID, _ = fwd.GetChannelPost()
				out.ForwardSignature, _ = fwd.GetPostAuthor()
			}
		} else if name, ok := fwd.GetFromName(); ok {
			out.ForwardSenderName = name
		}
	}

	mediaPresent := false
	if media, ok := msg.GetMedia(); ok {
		mediaPresent = applyMedia(media, out, tables)
	}

	if markup, ok := msg.GetReplyMarkup(); ok {
		out.ReplyMarkup = decodeReplyMarkup(markup)
	}

	// A link preview rides along with the text, so the body keeps its text
	// role; every other attachment turns the body into a caption.
	textIsBody := !mediaPresent || out.WebPage != nil
	if msg.Message != "" {
		body := model.NewStr(msg.Message, entities)
		if textIsBody {
			out.Text = &body
		} else {
			out.Caption = &body
		}
	}
	if textIsBody {
		out.Entities = entities
	} else {
		out.CaptionEntities = entities
	}

	for _, e := range msg.Entities {
		if _, ok := e.(*tg.MessageEntityBlockquote); ok {
			out.Quote = true
			break
		}
	}

	if hasFwd {
		if savedPeer, ok := fwd.GetSavedFromPeer(); ok {
			if _, ok := fwd.GetSavedFromMsgID(); ok {
				ch, isChannel := tables.Chats[peers.RawID(savedPeer)].(*tg.Channel)
				if isChannel && !ch.Megagroup {
					out.AutomaticForward = true
				}
			}
		}
	}

	switch header := msg.ReplyTo.(type) {
	case *tg.MessageReplyHeader:
		out.ReplyToMessageID, _ = header.GetReplyToMsgID()
		out.ReplyToTopMessageID, _ = header.GetReplyToTopID()

		if header.ForumTopic {
			out.TopicMessage = true
			out.MessageThreadID = threadID(header)
			if tables.Topics != nil {
				out.Topic = decodeTopic(tables.Topics[int64(out.MessageThreadID)])
			}
		} else if header.Quote {
			out.Quote = true
			quoteEntities := decodeEntities(header.QuoteEntities, tables)
			if textIsBody {
				if text, ok := header.GetQuoteText(); ok && text != "" {
					quoted := model.NewStr(text, quoteEntities)
					out.QuoteText = &quoted
				}
				out.QuoteEntities = quoteEntities
			}
		}
	case *tg.MessageReplyStoryHeader:
		out.ReplyToStoryID = header.StoryID
		out.ReplyToStoryUserID = peers.ID(header.Peer)
	}

	if msg.ReplyTo != nil && opts.ReplyDepth > 0 {
		if err := d.resolveReply(ctx, msg, out, tables, opts); err != nil {
			return nil, err
		}
	}

	if out.Topic == nil && out.Chat.IsForum && d.me != nil && !d.me.IsBot {
		topicID := out.MessageThreadID
		if topicID == 0 {
			topicID = 1
		}
		topic, err := d.fetch.FetchTopic(ctx, out.Chat.ID, topicID)
		switch {
		case err == nil:
			out.Topic = topic
		case !swallowable(err):
			return nil, err
		}
	}

	// Poll counters go stale the moment they are stored, so poll messages
	// stay out of the cache.
	if out.Poll == nil {
		d.cache.Put(out.Chat.ID, out.ID, out)
	}

	return out, nil
}

// resolveReply attaches the replied-to message: a caller-supplied target
// wins, then the cache, then a fetch one level shallower.
func (d *Decoder) resolveReply(ctx context.Context, msg *tg.Message, out *model.Message, tables Tables, opts Options) error {
	if opts.ReplyTarget != nil {
		target, err := d.Decode(ctx, opts.ReplyTarget, tables, Options{
			BusinessConnectionID: opts.BusinessConnectionID,
		})
		if err != nil {
			return err
		}
		out.ReplyToMessage = target
		return nil
	}

	header, ok := msg.ReplyTo.(*tg.MessageReplyHeader)
	if !ok {
		if story, isStory := msg.ReplyTo.(*tg.MessageReplyStoryHeader); isStory {
			return d.resolveReplyStory(ctx, story, out)
		}
		return nil
	}

	var (
		chatID    int64
		messageID int
		direct    bool
	)
	if peer, ok := header.GetReplyToPeerID(); ok {
		chatID = peers.ID(peer)
		messageID, _ = header.GetReplyToMsgID()
		direct = true
	} else {
		chatID = out.Chat.ID
		messageID = out.ReplyToMessageID
	}

	if cached, ok := d.cache.Get(chatID, messageID); ok {
		out.ReplyToMessage = cached
		return nil
	}

	var (
		target *model.Message
		err    error
	)
	if direct {
		target, err = d.fetch.FetchMessage(ctx, chatID, messageID, opts.ReplyDepth-1)
	} else {
		target, err = d.fetch.FetchReplyOf(ctx, chatID, msg.ID, opts.ReplyDepth-1)
	}
	switch {
	case err == nil:
		out.ReplyToMessage = target
	case !swallowable(err):
		return err
	}
	return nil
}

// resolveReplyStory attaches the story a message replies to. Stories are
// only visible to regular user accounts, so bots skip the lookup.
func (d *Decoder) resolveReplyStory(ctx context.Context, header *tg.MessageReplyStoryHeader, out *model.Message) error {
	if d.me == nil || d.me.IsBot {
		return nil
	}
	story, err := d.fetch.FetchStory(ctx, peers.ID(header.Peer), header.StoryID)
	switch {
	case err == nil:
		out.ReplyToStory = story
	case !swallowable(err):
		return err
	}
	return nil
}
