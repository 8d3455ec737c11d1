package cache

import (
	"testing"
	"time"

	"github.com/sanpater/pyrogram/internal/model"
)

func TestPutGet(t *testing.T) {
	t.Parallel()

	c := New()
	msg := &model.Message{ID: 1}
	c.Put(100, 1, msg)

	got, ok := c.Get(100, 1)
	if !ok {
		t.Fatal("Get() miss after Put()")
	}
	if got != msg {
		t.Error("Get() returned a different message")
	}

	if _, ok := c.Get(100, 2); ok {
		t.Error("Get() hit for a key that was never stored")
	}
	if _, ok := c.Get(101, 1); ok {
		t.Error("Get() hit for the same message id in another chat")
	}
}

func TestPutReplacesExisting(t *testing.T) {
	t.Parallel()

	c := New()
	c.Put(100, 1, &model.Message{ID: 1})
	updated := &model.Message{ID: 1, Mentioned: true}
	c.Put(100, 1, updated)

	if c.Len() != 1 {
		t.Fatalf("Len() = %d after replacing, want 1", c.Len())
	}
	got, _ := c.Get(100, 1)
	if got != updated {
		t.Error("Get() returned the stale entry")
	}
}

func TestPutIgnoresNil(t *testing.T) {
	t.Parallel()

	c := New()
	c.Put(100, 1, nil)
	if c.Len() != 0 {
		t.Errorf("Len() = %d after storing nil, want 0", c.Len())
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	c := New(WithMaxEntries(2))
	c.Put(100, 1, &model.Message{ID: 1})
	c.Put(100, 2, &model.Message{ID: 2})

	// Touch the older entry so it becomes the most recently used.
	if _, ok := c.Get(100, 1); !ok {
		t.Fatal("Get() miss for a live entry")
	}

	c.Put(100, 3, &model.Message{ID: 3})

	if _, ok := c.Get(100, 2); ok {
		t.Error("least recently used entry survived eviction")
	}
	if _, ok := c.Get(100, 1); !ok {
		t.Error("recently used entry was evicted")
	}
	if _, ok := c.Get(100, 3); !ok {
		t.Error("newest entry was evicted")
	}
}

func TestExpiredEntryMisses(t *testing.T) {
	t.Parallel()

	now := time.Unix(1000000, 0)
	c := New(WithTTL(time.Minute))
	c.now = func() time.Time { return now }

	c.Put(100, 1, &model.Message{ID: 1})

	now = now.Add(30 * time.Second)
	if _, ok := c.Get(100, 1); !ok {
		t.Fatal("Get() miss before the TTL elapsed")
	}

	now = now.Add(31 * time.Second)
	if _, ok := c.Get(100, 1); ok {
		t.Error("Get() hit after the TTL elapsed")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d after an expired read, want 0", c.Len())
	}
}

func TestPrune(t *testing.T) {
	t.Parallel()

	now := time.Unix(1000000, 0)
	c := New(WithTTL(time.Minute))
	c.now = func() time.Time { return now }

	c.Put(100, 1, &model.Message{ID: 1})
	c.Put(100, 2, &model.Message{ID: 2})

	now = now.Add(2 * time.Minute)
	c.Put(100, 3, &model.Message{ID: 3})

	if removed := c.Prune(); removed != 2 {
		t.Errorf("Prune() = %d, want 2", removed)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d after pruning, want 1", c.Len())
	}
	if _, ok := c.Get(100, 3); !ok {
		t.Error("live entry was pruned")
	}
}
