package database_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/sanpater/pyrogram/internal/database"
)

func newTestStore(t *testing.T) database.Store {
	t.Helper()
	db, err := database.NewDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { database.CloseDB(db) })
	return database.NewStore(db, nil)
}

func row(chatID int64, messageID int, body string, sentAt time.Time) *database.ArchivedMessage {
	return &database.ArchivedMessage{
		ChatID:    chatID,
		MessageID: messageID,
		SenderID:  42,
		Body:      body,
		SentAt:    sentAt,
	}
}

func TestSaveAndFetchMessages(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i, m := range []*database.ArchivedMessage{
		row(-100, 1, "first", base),
		row(-100, 2, "second", base.Add(time.Minute)),
		row(5, 1, "elsewhere", base),
	} {
		if err := store.SaveMessage(ctx, m); err != nil {
			t.Fatalf("SaveMessage(#%d) error = %v", i, err)
		}
	}

	messages, err := store.RecentMessagesInChat(ctx, -100, 10)
	if err != nil {
		t.Fatalf("RecentMessagesInChat() error = %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(messages))
	}
	if messages[0].Body != "second" || messages[1].Body != "first" {
		t.Errorf("messages not ordered newest first: %q, %q", messages[0].Body, messages[1].Body)
	}

	count, err := store.CountMessages(ctx)
	if err != nil {
		t.Fatalf("CountMessages() error = %v", err)
	}
	if count != 3 {
		t.Errorf("CountMessages() = %d, want 3", count)
	}
}

func TestSaveMessageUpsertsOnEdit(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()
	sentAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	if err := store.SaveMessage(ctx, row(-100, 1, "original", sentAt)); err != nil {
		t.Fatalf("SaveMessage() error = %v", err)
	}

	edited := row(-100, 1, "edited", sentAt)
	edited.EditedAt = sql.NullTime{Time: sentAt.Add(time.Hour), Valid: true}
	if err := store.SaveMessage(ctx, edited); err != nil {
		t.Fatalf("SaveMessage(edit) error = %v", err)
	}

	count, err := store.CountMessages(ctx)
	if err != nil {
		t.Fatalf("CountMessages() error = %v", err)
	}
	if count != 1 {
		t.Fatalf("CountMessages() = %d, want 1 after upsert", count)
	}

	messages, err := store.RecentMessagesInChat(ctx, -100, 1)
	if err != nil {
		t.Fatalf("RecentMessagesInChat() error = %v", err)
	}
	if messages[0].Body != "edited" {
		t.Errorf("Body = %q, want edited", messages[0].Body)
	}
	if !messages[0].EditedAt.Valid {
		t.Error("EditedAt not persisted")
	}
}

func TestSaveMessageValidation(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()
	sentAt := time.Now().UTC()

	if err := store.SaveMessage(ctx, nil); err == nil {
		t.Error("SaveMessage(nil) expected error")
	}
	if err := store.SaveMessage(ctx, row(0, 1, "x", sentAt)); err == nil {
		t.Error("SaveMessage with zero chat_id expected error")
	}
	if err := store.SaveMessage(ctx, row(-100, 0, "x", sentAt)); err == nil {
		t.Error("SaveMessage with zero message_id expected error")
	}
}

func TestRecentMessagesValidation(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	if _, err := store.RecentMessagesInChat(context.Background(), 0, 10); err == nil {
		t.Error("RecentMessagesInChat(0) expected error")
	}
}

func TestRunSQLMaintenance(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	if err := store.RunSQLMaintenance(context.Background()); err != nil {
		t.Errorf("RunSQLMaintenance() error = %v", err)
	}
}
