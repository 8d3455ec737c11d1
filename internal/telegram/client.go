// Package telegram wires the MTProto client to the decode pipeline. It owns
// the gotd client lifecycle, authorization, the update dispatch into the
// decoder, and the raw RPC lookups the decoder needs for cross-reference
// resolution.
package telegram

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/gotd/td/session"
	"github.com/gotd/td/telegram"
	"github.com/gotd/td/telegram/auth"
	"github.com/gotd/td/tg"

	"github.com/sanpater/pyrogram/internal/config"
	"github.com/sanpater/pyrogram/internal/database"
	"github.com/sanpater/pyrogram/internal/decoder"
)

// Client runs an MTProto user session and feeds every incoming message
// through the decoder into the archive store.
type Client struct {
	client  *telegram.Client
	api     *tg.Client
	decoder *decoder.Decoder
	store   database.Store
	logger  *slog.Logger

	cfg config.TelegramConfig
	// replyDepth bounds reply-chain resolution per decoded message.
	replyDepth int

	// Access hashes observed in updates and RPC results, needed to build
	// input peers for later lookups.
	mu            sync.Mutex
	userHashes    map[int64]int64
	channelHashes map[int64]int64
}

// NewClient creates the MTProto client. The decoder is constructed here
// because the client is also its Fetcher.
func NewClient(cfg config.Config, cache decoder.Cache, store database.Store, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c := &Client{
		store:         store,
		logger:        logger.With("component", "telegram"),
		cfg:           cfg.Telegram,
		replyDepth:    cfg.Decoder.ReplyDepth,
		userHashes:    make(map[int64]int64),
		channelHashes: make(map[int64]int64),
	}
	c.decoder = decoder.New(c, cache, logger)

	c.client = telegram.NewClient(cfg.Telegram.APIID, cfg.Telegram.APIHash, telegram.Options{
		SessionStorage: &session.FileStorage{Path: cfg.Telegram.SessionPath},
		UpdateHandler:  telegram.UpdateHandlerFunc(c.handleUpdates),
	})
	c.api = c.client.API()
	return c
}

// Run connects, authorizes if necessary, and blocks processing updates until
// the context is cancelled.
func (c *Client) Run(ctx context.Context) error {
	return c.client.Run(ctx, func(ctx context.Context) error {
		flow := auth.NewFlow(
			terminalAuth{phone: c.cfg.Phone, password: c.cfg.Password},
			auth.SendCodeOptions{},
		)
		if err := c.client.Auth().IfNecessary(ctx, flow); err != nil {
			return fmt.Errorf("authorization failed: %w", err)
		}

		self, err := c.client.Self(ctx)
		if err != nil {
			return fmt.Errorf("failed to resolve own account: %w", err)
		}
		c.rememberUser(self)
		c.decoder.SetSelf(decoder.DecodeUser(self))
		c.logger.InfoContext(ctx, "Signed in", "user_id", self.ID, "bot", self.Bot)

		<-ctx.Done()
		return ctx.Err()
	})
}

// rememberUser records the access hash of a user seen in an update or RPC
// result.
func (c *Client) rememberUser(u *tg.User) {
	if u == nil {
		return
	}
	if hash, ok := u.GetAccessHash(); ok {
		c.mu.Lock()
		c.userHashes[u.ID] = hash
		c.mu.Unlock()
	}
}

// rememberChat records the access hash of a channel seen in an update or RPC
// result. Basic groups carry no hash.
func (c *Client) rememberChat(chat tg.ChatClass) {
	ch, ok := chat.(*tg.Channel)
	if !ok {
		return
	}
	if hash, ok := ch.GetAccessHash(); ok {
		c.mu.Lock()
		c.channelHashes[ch.ID] = hash
		c.mu.Unlock()
	}
}

func (c *Client) userHash(id int64) (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	hash, ok := c.userHashes[id]
	return hash, ok
}

func (c *Client) channelHash(id int64) (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	hash, ok := c.channelHashes[id]
	return hash, ok
}
