package database

import (
	"database/sql"
	"time"
)

// ArchivedMessage is one decoded message persisted to the archive. Body
// holds the markdown rendering of the text or caption; MediaType and
// ServiceType mirror the decoded tags and are empty for plain text.
type ArchivedMessage struct {
	ID        uint      `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	ChatID    int64  `db:"chat_id"`
	MessageID int    `db:"message_id"`
	SenderID  int64  `db:"sender_id"`
	Body      string `db:"body"`

	MediaType   string `db:"media_type"`
	ServiceType string `db:"service_type"`

	SentAt   time.Time    `db:"sent_at"`
	EditedAt sql.NullTime `db:"edited_at"`
}
