package telegram

import (
	"context"
	"fmt"

	"github.com/gotd/td/tg"
	"github.com/gotd/td/tgerr"

	"github.com/sanpater/pyrogram/internal/decoder"
	"github.com/sanpater/pyrogram/internal/model"
	"github.com/sanpater/pyrogram/internal/peers"
)

// mapRPCError folds the server's error vocabulary into the decoder's two
// swallowable categories. Anything else passes through unchanged.
func mapRPCError(err error) error {
	switch {
	case err == nil:
		return nil
	case tgerr.Is(err, "USER_ID_INVALID", "PEER_ID_INVALID", "MSG_ID_INVALID", "MESSAGE_IDS_EMPTY", "STORY_ID_INVALID"):
		return fmt.Errorf("%w: %v", decoder.ErrNotFound, err)
	case tgerr.Is(err, "CHANNEL_PRIVATE", "CHANNEL_INVALID", "CHANNEL_FORUM_MISSING"):
		return fmt.Errorf("%w: %v", decoder.ErrInaccessible, err)
	default:
		return err
	}
}

// inputUser builds an input user from a recorded access hash. Without one the
// server rejects the lookup, which maps to a not-found.
func (c *Client) inputUser(id int64) tg.InputUserClass {
	if hash, ok := c.userHash(id); ok {
		return &tg.InputUser{UserID: id, AccessHash: hash}
	}
	return &tg.InputUser{UserID: id}
}

// inputChannel builds an input channel for a signed channel chat id.
func (c *Client) inputChannel(chatID int64) tg.InputChannelClass {
	raw := peers.ChannelID(chatID)
	if hash, ok := c.channelHash(raw); ok {
		return &tg.InputChannel{ChannelID: raw, AccessHash: hash}
	}
	return &tg.InputChannel{ChannelID: raw}
}

// inputPeer builds an input peer for any signed chat id.
func (c *Client) inputPeer(chatID int64) tg.InputPeerClass {
	kind, ok := peers.TypeOf(chatID)
	if !ok {
		return &tg.InputPeerEmpty{}
	}
	switch kind {
	case peers.KindUser:
		if hash, ok := c.userHash(chatID); ok {
			return &tg.InputPeerUser{UserID: chatID, AccessHash: hash}
		}
		return &tg.InputPeerUser{UserID: chatID}
	case peers.KindChat:
		return &tg.InputPeerChat{ChatID: -chatID}
	default:
		raw := peers.ChannelID(chatID)
		if hash, ok := c.channelHash(raw); ok {
			return &tg.InputPeerChannel{ChannelID: raw, AccessHash: hash}
		}
		return &tg.InputPeerChannel{ChannelID: raw}
	}
}

// FetchUsers resolves raw user records by id.
func (c *Client) FetchUsers(ctx context.Context, ids []int64) ([]*tg.User, error) {
	inputs := make([]tg.InputUserClass, 0, len(ids))
	for _, id := range ids {
		inputs = append(inputs, c.inputUser(id))
	}

	raw, err := c.api.UsersGetUsers(ctx, inputs)
	if err != nil {
		return nil, mapRPCError(err)
	}

	users := make([]*tg.User, 0, len(raw))
	for _, u := range raw {
		full, ok := u.(*tg.User)
		if !ok {
			continue
		}
		c.rememberUser(full)
		users = append(users, full)
	}
	return users, nil
}

// FetchMessage fetches and decodes one message by id.
func (c *Client) FetchMessage(ctx context.Context, chatID int64, messageID int, replyDepth int) (*model.Message, error) {
	return c.fetchOne(ctx, chatID, &tg.InputMessageID{ID: messageID}, replyDepth)
}

// FetchReplyOf fetches and decodes the message that messageID replies to.
func (c *Client) FetchReplyOf(ctx context.Context, chatID int64, messageID int, replyDepth int) (*model.Message, error) {
	return c.fetchOne(ctx, chatID, &tg.InputMessageReplyTo{ID: messageID}, replyDepth)
}

// FetchPinned fetches and decodes the chat's pinned message.
func (c *Client) FetchPinned(ctx context.Context, chatID int64) (*model.Message, error) {
	return c.fetchOne(ctx, chatID, &tg.InputMessagePinned{}, 0)
}

// fetchOne performs the message lookup RPC appropriate for the chat kind and
// decodes the first returned record with the side tables the server attached.
func (c *Client) fetchOne(ctx context.Context, chatID int64, id tg.InputMessageClass, replyDepth int) (*model.Message, error) {
	var (
		raw tg.MessagesMessagesClass
		err error
	)
	if kind, ok := peers.TypeOf(chatID); ok && kind == peers.KindChannel {
		raw, err = c.api.ChannelsGetMessages(ctx, &tg.ChannelsGetMessagesRequest{
			Channel: c.inputChannel(chatID),
			ID:      []tg.InputMessageClass{id},
		})
	} else {
		raw, err = c.api.MessagesGetMessages(ctx, []tg.InputMessageClass{id})
	}
	if err != nil {
		return nil, mapRPCError(err)
	}

	messages, tables := c.splitResult(raw)
	if len(messages) == 0 {
		return nil, fmt.Errorf("%w: chat %d has no such message", decoder.ErrNotFound, chatID)
	}

	msg, err := c.decoder.Decode(ctx, messages[0], tables, decoder.Options{ReplyDepth: replyDepth})
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, fmt.Errorf("%w: chat %d returned an unknown record", decoder.ErrNotFound, chatID)
	}
	return msg, nil
}

// FetchTopic resolves a forum topic by id.
func (c *Client) FetchTopic(ctx context.Context, chatID int64, topicID int) (*model.ForumTopic, error) {
	raw, err := c.api.ChannelsGetForumTopicsByID(ctx, &tg.ChannelsGetForumTopicsByIDRequest{
		Channel: c.inputChannel(chatID),
		Topics:  []int{topicID},
	})
	if err != nil {
		return nil, mapRPCError(err)
	}

	for _, u := range raw.Users {
		if full, ok := u.(*tg.User); ok {
			c.rememberUser(full)
		}
	}
	for _, ch := range raw.Chats {
		c.rememberChat(ch)
	}

	for _, t := range raw.Topics {
		if topic, ok := t.(*tg.ForumTopic); ok && topic.ID == topicID {
			return decoder.DecodeTopic(topic), nil
		}
	}
	return nil, fmt.Errorf("%w: topic %d not in chat %d", decoder.ErrNotFound, topicID, chatID)
}

// FetchStory resolves a story by its owner peer and id.
func (c *Client) FetchStory(ctx context.Context, chatID int64, storyID int) (*model.Story, error) {
	raw, err := c.api.StoriesGetStoriesByID(ctx, &tg.StoriesGetStoriesByIDRequest{
		Peer: c.inputPeer(chatID),
		ID:   []int{storyID},
	})
	if err != nil {
		return nil, mapRPCError(err)
	}

	tables := c.buildTables(raw.Users, raw.Chats)
	for _, s := range raw.Stories {
		if item, ok := s.(*tg.StoryItem); ok && item.ID == storyID {
			return decoder.DecodeStory(item, chatID, tables), nil
		}
	}
	return nil, fmt.Errorf("%w: story %d not in chat %d", decoder.ErrNotFound, storyID, chatID)
}

// splitResult unpacks a message-list RPC result into its message slice and
// the decoder side tables built from the attached users and chats.
func (c *Client) splitResult(raw tg.MessagesMessagesClass) ([]tg.MessageClass, decoder.Tables) {
	var (
		messages []tg.MessageClass
		users    []tg.UserClass
		chats    []tg.ChatClass
	)
	switch r := raw.(type) {
	case *tg.MessagesMessages:
		messages, users, chats = r.Messages, r.Users, r.Chats
	case *tg.MessagesMessagesSlice:
		messages, users, chats = r.Messages, r.Users, r.Chats
	case *tg.MessagesChannelMessages:
		messages, users, chats = r.Messages, r.Users, r.Chats
	}
	return messages, c.buildTables(users, chats)
}

// buildTables indexes users and chats by raw id, recording access hashes
// along the way.
func (c *Client) buildTables(users []tg.UserClass, chats []tg.ChatClass) decoder.Tables {
	tables := decoder.Tables{
		Users:  make(map[int64]*tg.User, len(users)),
		Chats:  make(map[int64]tg.ChatClass, len(chats)),
		Topics: make(map[int64]*tg.ForumTopic),
	}
	for _, u := range users {
		full, ok := u.(*tg.User)
		if !ok {
			continue
		}
		c.rememberUser(full)
		tables.Users[full.ID] = full
	}
	for _, ch := range chats {
		c.rememberChat(ch)
		switch chat := ch.(type) {
		case *tg.Chat:
			tables.Chats[chat.ID] = chat
		case *tg.ChatForbidden:
			tables.Chats[chat.ID] = chat
		case *tg.Channel:
			tables.Chats[chat.ID] = chat
		case *tg.ChannelForbidden:
			tables.Chats[chat.ID] = chat
		}
	}
	return tables
}
