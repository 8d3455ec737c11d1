package telegram

import (
	"context"
	"database/sql"

	"github.com/gotd/td/tg"

	"github.com/sanpater/pyrogram/internal/database"
	"github.com/sanpater/pyrogram/internal/decoder"
	"github.com/sanpater/pyrogram/internal/model"
)

// handleUpdates dispatches one update container. Decode failures are logged
// and skipped so a malformed update never stops the session.
func (c *Client) handleUpdates(ctx context.Context, u tg.UpdatesClass) error {
	switch upd := u.(type) {
	case *tg.Updates:
		tables := c.buildTables(upd.Users, upd.Chats)
		for _, inner := range upd.Updates {
			c.handleUpdate(ctx, inner, tables)
		}
	case *tg.UpdatesCombined:
		tables := c.buildTables(upd.Users, upd.Chats)
		for _, inner := range upd.Updates {
			c.handleUpdate(ctx, inner, tables)
		}
	case *tg.UpdateShort:
		c.handleUpdate(ctx, upd.Update, c.buildTables(nil, nil))
	}
	return nil
}

// handleUpdate processes a single update against the side tables of its
// container.
func (c *Client) handleUpdate(ctx context.Context, u tg.UpdateClass, tables decoder.Tables) {
	var (
		raw       tg.MessageClass
		scheduled bool
	)
	switch upd := u.(type) {
	case *tg.UpdateNewMessage:
		raw = upd.Message
	case *tg.UpdateNewChannelMessage:
		raw = upd.Message
	case *tg.UpdateEditMessage:
		raw = upd.Message
	case *tg.UpdateEditChannelMessage:
		raw = upd.Message
	case *tg.UpdateNewScheduledMessage:
		raw = upd.Message
		scheduled = true
	default:
		return
	}

	msg, err := c.decoder.Decode(ctx, raw, tables, decoder.Options{
		Scheduled:  scheduled,
		ReplyDepth: c.replyDepth,
	})
	if err != nil {
		c.logger.ErrorContext(ctx, "Failed to decode message", "error", err)
		return
	}
	if msg == nil || msg.Empty || msg.Chat == nil {
		return
	}

	c.logger.DebugContext(ctx, "Decoded message",
		"chat_id", msg.Chat.ID, "message_id", msg.ID,
		"media", string(msg.Media), "service", string(msg.Service))

	if err := c.store.SaveMessage(ctx, archiveRow(msg)); err != nil {
		c.logger.ErrorContext(ctx, "Failed to archive message",
			"chat_id", msg.Chat.ID, "message_id", msg.ID, "error", err)
	}
}

// archiveRow flattens a decoded message into its archive row. The body keeps
// the markdown rendering so entity formatting survives the round trip.
func archiveRow(msg *model.Message) *database.ArchivedMessage {
	row := &database.ArchivedMessage{
		ChatID:      msg.Chat.ID,
		MessageID:   msg.ID,
		MediaType:   string(msg.Media),
		ServiceType: string(msg.Service),
		SentAt:      msg.Date,
	}
	switch {
	case msg.FromUser != nil:
		row.SenderID = msg.FromUser.ID
	case msg.SenderChat != nil:
		row.SenderID = msg.SenderChat.ID
	}
	if content := msg.Content(); content != nil {
		row.Body = content.Markdown()
	}
	if !msg.EditDate.IsZero() {
		row.EditedAt = sql.NullTime{Time: msg.EditDate, Valid: true}
	}
	return row
}
