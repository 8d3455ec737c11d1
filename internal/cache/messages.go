// Package cache provides the bounded in-process message cache the decoder
// uses to resolve reply links without a round trip. Entries are keyed by
// (chat id, message id); writes are last-writer-wins.
package cache

import (
	"container/list"
	"sync"
	"time"

	"github.com/sanpater/pyrogram/internal/model"
)

const (
	defaultMaxEntries = 10000
	defaultTTL        = 24 * time.Hour
)

// Key addresses one cached message.
type Key struct {
	ChatID    int64
	MessageID int
}

type entry struct {
	key      Key
	msg      *model.Message
	storedAt time.Time
}

// Messages is a bounded LRU cache with per-entry TTL. The zero value is not
// usable; construct with New.
type Messages struct {
	mu         sync.Mutex
	maxEntries int
	ttl        time.Duration
	order      *list.List
	index      map[Key]*list.Element
	now        func() time.Time
}

// Option mutates cache configuration.
type Option func(*Messages)

// WithMaxEntries bounds the number of cached messages.
func WithMaxEntries(n int) Option {
	return func(m *Messages) {
		if n > 0 {
			m.maxEntries = n
		}
	}
}

// WithTTL sets the entry lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(m *Messages) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

// New creates an empty message cache.
func New(options ...Option) *Messages {
	m := &Messages{
		maxEntries: defaultMaxEntries,
		ttl:        defaultTTL,
		order:      list.New(),
		index:      make(map[Key]*list.Element),
		now:        time.Now,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Get returns the cached message for key, if present and not expired.
func (m *Messages) Get(chatID int64, messageID int) (*model.Message, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	elem, ok := m.index[Key{ChatID: chatID, MessageID: messageID}]
	if !ok {
		return nil, false
	}
	ent := elem.Value.(*entry)
	if m.now().Sub(ent.storedAt) > m.ttl {
		m.removeLocked(elem)
		return nil, false
	}
	m.order.MoveToFront(elem)
	return ent.msg, true
}

// Put stores a message, replacing any previous entry for the same key and
// evicting the least recently used entry when the cache is full.
func (m *Messages) Put(chatID int64, messageID int, msg *model.Message) {
	if msg == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := Key{ChatID: chatID, MessageID: messageID}
	if elem, ok := m.index[key]; ok {
		ent := elem.Value.(*entry)
		ent.msg = msg
		ent.storedAt = m.now()
		m.order.MoveToFront(elem)
		return
	}

	elem := m.order.PushFront(&entry{key: key, msg: msg, storedAt: m.now()})
	m.index[key] = elem

	for m.order.Len() > m.maxEntries {
		m.removeLocked(m.order.Back())
	}
}

// Len reports the number of cached entries, counting expired ones that have
// not been touched yet.
func (m *Messages) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order.Len()
}

// Prune drops all expired entries and reports how many were removed.
func (m *Messages) Prune() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	now := m.now()
	for elem := m.order.Back(); elem != nil; {
		prev := elem.Prev()
		if now.Sub(elem.Value.(*entry).storedAt) > m.ttl {
			m.removeLocked(elem)
			removed++
		}
		elem = prev
	}
	return removed
}

func (m *Messages) removeLocked(elem *list.Element) {
	if elem == nil {
		return
	}
	m.order.Remove(elem)
	delete(m.index, elem.Value.(*entry).key)
}
