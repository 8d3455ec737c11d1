// Package decoder converts raw wire-format message records into normalized
// domain messages. It owns the service-action, media and markup dispatch
// tables, reply and forward linkage resolution, and the message cache
// interaction; the RPC transport stays behind the Fetcher interface.
package decoder

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/gotd/td/tg"

	"github.com/sanpater/pyrogram/internal/model"
)

// Failure categories collaborators report. Both are swallowed at every
// enrichment call site: the affected field stays unset and decoding
// continues. Any other failure propagates to the caller unmodified.
var (
	// ErrNotFound marks a target message, peer or topic that does not exist.
	ErrNotFound = errors.New("target not found")
	// ErrInaccessible marks a private channel or a missing forum.
	ErrInaccessible = errors.New("channel inaccessible")
)

// swallowable reports whether an enrichment failure leaves the field unset
// instead of aborting the decode.
func swallowable(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrInaccessible)
}

// Fetcher is the narrow view of the client the decoder needs for
// cross-reference resolution. Implementations map their transport error
// vocabulary to ErrNotFound / ErrInaccessible.
type Fetcher interface {
	// FetchUsers resolves raw user records by id.
	FetchUsers(ctx context.Context, ids []int64) ([]*tg.User, error)
	// FetchMessage fetches and decodes one message by id. replyDepth bounds
	// further reply resolution inside that decode.
	FetchMessage(ctx context.Context, chatID int64, messageID int, replyDepth int) (*model.Message, error)
	// FetchReplyOf fetches and decodes the message that messageID replies to.
	FetchReplyOf(ctx context.Context, chatID int64, messageID int, replyDepth int) (*model.Message, error)
	// FetchPinned fetches and decodes the chat's pinned message.
	FetchPinned(ctx context.Context, chatID int64) (*model.Message, error)
	// FetchTopic resolves a forum topic by id.
	FetchTopic(ctx context.Context, chatID int64, topicID int) (*model.ForumTopic, error)
	// FetchStory resolves a story by its owner peer and id.
	FetchStory(ctx context.Context, chatID int64, storyID int) (*model.Story, error)
}

// Cache is the decoder's view of the message cache: a synchronous
// associative store keyed by (chat id, message id).
type Cache interface {
	Get(chatID int64, messageID int) (*model.Message, bool)
	Put(chatID int64, messageID int, msg *model.Message)
}

// Tables are the caller-supplied side tables of peers referenced by the raw
// record. Decode may merge users fetched through the side lookup into Users;
// the maps are otherwise read-only.
type Tables struct {
	Users  map[int64]*tg.User
	Chats  map[int64]tg.ChatClass
	Topics map[int64]*tg.ForumTopic
}

// Options tune one Decode call.
type Options struct {
	// Scheduled marks the raw record as coming from the scheduled queue.
	Scheduled bool
	// ReplyDepth bounds recursive reply resolution; 0 disables it.
	ReplyDepth int
	// BusinessConnectionID is carried through to the decoded message.
	BusinessConnectionID string
	// ReplyTarget, when set, is decoded in place of fetching the replied-to
	// message.
	ReplyTarget tg.MessageClass
}

// Decoder turns raw message records into model.Message values.
type Decoder struct {
	fetch Fetcher
	cache Cache
	log   *slog.Logger
	me    *model.User
}

// New creates a Decoder. fetch and cache must be non-nil.
func New(fetch Fetcher, cache Cache, log *slog.Logger) *Decoder {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Decoder{
		fetch: fetch,
		cache: cache,
		log:   log.With("component", "decoder"),
	}
}

// SetSelf records the account the surrounding client is signed in as. Topic
// auto-resolution only runs for regular users, not bots.
func (d *Decoder) SetSelf(me *model.User) {
	d.me = me
}

// Decode converts one raw message record into a domain message. Malformed
// but well-typed input never produces an error: unknown sub-variants degrade
// to an absent service/media tag. Errors surface only from non-swallowable
// collaborator failures.
func (d *Decoder) Decode(ctx context.Context, raw tg.MessageClass, tables Tables, opts Options) (*model.Message, error) {
	switch msg := raw.(type) {
	case *tg.MessageEmpty:
		return &model.Message{
			ID:                   msg.ID,
			Empty:                true,
			BusinessConnectionID: opts.BusinessConnectionID,
			Raw:                  msg,
		}, nil
	case *tg.MessageService:
		if err := d.prefetchPrivatePeers(ctx, msg.FromID, msg.PeerID, tables); err != nil {
			return nil, err
		}
		return d.decodeService(ctx, msg, tables, opts)
	case *tg.Message:
		if err := d.prefetchPrivatePeers(ctx, msg.FromID, msg.PeerID, tables); err != nil {
			return nil, err
		}
		return d.decodeContent(ctx, msg, tables, opts)
	default:
		return nil, nil
	}
}

// prefetchPrivatePeers merges the two endpoints of a private 1:1 exchange
// into the users table when either is missing. This mutates the caller's
// table on purpose: later lookups in the same update batch benefit from the
// fetched records.
func (d *Decoder) prefetchPrivatePeers(ctx context.Context, fromID, peerID tg.PeerClass, tables Tables) error {
	from, fromOK := fromID.(*tg.PeerUser)
	peer, peerOK := peerID.(*tg.PeerUser)
	if !fromOK || !peerOK {
		return nil
	}
	_, haveFrom := tables.Users[from.UserID]
	_, havePeer := tables.Users[peer.UserID]
	if haveFrom && havePeer {
		return nil
	}

	fetched, err := d.fetch.FetchUsers(ctx, []int64{from.UserID, peer.UserID})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	for _, u := range fetched {
		if u != nil {
			tables.Users[u.ID] = u
		}
	}
	return nil
}

// threadID derives the forum thread id from a reply header: the thread-top
// id when present, else the direct reply id, else the general topic (1).
func threadID(header *tg.MessageReplyHeader) int {
	if topID, ok := header.GetReplyToTopID(); ok && topID != 0 {
		return topID
	}
	if msgID, ok := header.GetReplyToMsgID(); ok && msgID != 0 {
		return msgID
	}
	return 1
}

func unixTime(ts int) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(int64(ts), 0).UTC()
}
