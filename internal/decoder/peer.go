package decoder

import (
	"github.com/gotd/td/tg"

	"github.com/sanpater/pyrogram/internal/model"
	"github.com/sanpater/pyrogram/internal/peers"
)

// DecodeUser converts a raw user record into a domain user. Nil in, nil out.
func DecodeUser(u *tg.User) *model.User {
	return decodeUser(u)
}

// DecodeTopic converts a raw forum topic into a domain topic. Nil in, nil out.
func DecodeTopic(raw *tg.ForumTopic) *model.ForumTopic {
	return decodeTopic(raw)
}

// decodeUser converts a raw user record. Nil in, nil out.
func decodeUser(u *tg.User) *model.User {
	if u == nil {
		return nil
	}
	out := &model.User{
		ID:           u.ID,
		IsSelf:       u.Self,
		IsContact:    u.Contact,
		IsBot:        u.Bot,
		IsDeleted:    u.Deleted,
		IsVerified:   u.Verified,
		IsRestricted: u.Restricted,
		IsScam:       u.Scam,
		IsFake:       u.Fake,
		IsSupport:    u.Support,
		IsPremium:    u.Premium,
	}
	out.FirstName, _ = u.GetFirstName()
	out.LastName, _ = u.GetLastName()
	out.Username, _ = u.GetUsername()
	out.LanguageCode, _ = u.GetLangCode()
	out.PhoneNumber, _ = u.GetPhone()
	return out
}

// userFromTables looks a user up by raw id and decodes it.
func userFromTables(tables Tables, id int64) *model.User {
	if id == 0 {
		return nil
	}
	return decodeUser(tables.Users[id])
}

// chatFromPeer builds the chat a peer refers to, using the side tables for
// the record. A peer missing from the tables yields a minimal chat carrying
// only the signed id.
func chatFromPeer(peer tg.PeerClass, tables Tables) *model.Chat {
	switch p := peer.(type) {
	case *tg.PeerUser:
		chat := &model.Chat{ID: p.UserID, Type: model.ChatPrivate}
		if u := tables.Users[p.UserID]; u != nil {
			if u.Bot {
				chat.Type = model.ChatBot
			}
			chat.FirstName, _ = u.GetFirstName()
			chat.LastName, _ = u.GetLastName()
			chat.Username, _ = u.GetUsername()
			chat.IsVerified = u.Verified
			chat.IsRestricted = u.Restricted
			chat.IsScam = u.Scam
			chat.IsFake = u.Fake
		}
		return chat
	case *tg.PeerChat:
		chat := &model.Chat{ID: -p.ChatID, Type: model.ChatGroup}
		if raw, ok := tables.Chats[p.ChatID].(*tg.Chat); ok && raw != nil {
			chat.Title = raw.Title
			chat.IsCreator = raw.Creator
			chat.MembersCount = raw.ParticipantsCount
		}
		return chat
	case *tg.PeerChannel:
		chat := &model.Chat{ID: peers.ChannelID(p.ChannelID), Type: model.ChatChannel}
		if raw, ok := tables.Chats[p.ChannelID].(*tg.Channel); ok && raw != nil {
			applyChannel(chat, raw)
		}
		return chat
	default:
		return nil
	}
}

func applyChannel(chat *model.Chat, raw *tg.Channel) {
	if raw.Megagroup {
		chat.Type = model.ChatSupergroup
	}
	chat.Title = raw.Title
	chat.Username, _ = raw.GetUsername()
	chat.IsForum = raw.Forum
	chat.IsVerified = raw.Verified
	chat.IsRestricted = raw.Restricted
	chat.IsCreator = raw.Creator
	chat.IsScam = raw.Scam
	chat.IsFake = raw.Fake
	chat.MembersCount, _ = raw.GetParticipantsCount()
}

// senderChat derives the chat a message was sent on behalf of: the from
// peer when set, else the conversation peer.
func senderChat(fromID, peerID tg.PeerClass, tables Tables) *model.Chat {
	peer := fromID
	if peer == nil {
		peer = peerID
	}
	return chatFromPeer(peer, tables)
}

// decodeTopic converts a raw forum topic record. Nil in, nil out.
func decodeTopic(raw *tg.ForumTopic) *model.ForumTopic {
	if raw == nil {
		return nil
	}
	topic := &model.ForumTopic{
		ID:           raw.ID,
		Title:        raw.Title,
		Date:         raw.Date,
		IconColor:    raw.IconColor,
		TopMessageID: raw.TopMessage,
		CreatorID:    peers.ID(raw.FromID),
		IsClosed:     raw.Closed,
		IsPinned:     raw.Pinned,
		IsHidden:     raw.Hidden,
	}
	topic.IconEmojiID, _ = raw.GetIconEmojiID()
	return topic
}
