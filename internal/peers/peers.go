// Package peers implements the platform's signed peer-id encoding over the
// raw MTProto peer variants. Users keep their positive id, basic groups are
// negated, and channels are offset below ZeroChannelID so that every peer
// kind occupies a disjoint id range.
package peers

import "github.com/gotd/td/tg"

// Boundaries of the signed peer-id ranges.
const (
	ZeroChannelID = -1000000000000
	MinChannelID  = -100999999999999
	MinChatID     = -999999999999
	MaxUserID     = 999999999999
)

// Kind classifies a signed peer id.
type Kind string

const (
	KindUser    Kind = "user"
	KindChat    Kind = "chat"
	KindChannel Kind = "channel"
)

// RawID returns the unsigned id carried inside a raw peer, or 0 when the
// peer is nil or of an unknown variant.
func RawID(peer tg.PeerClass) int64 {
	switch p := peer.(type) {
	case *tg.PeerUser:
		return p.UserID
	case *tg.PeerChat:
		return p.ChatID
	case *tg.PeerChannel:
		return p.ChannelID
	default:
		return 0
	}
}

// ID returns the signed peer id for a raw peer, or 0 when the peer is nil
// or of an unknown variant.
func ID(peer tg.PeerClass) int64 {
	switch p := peer.(type) {
	case *tg.PeerUser:
		return p.UserID
	case *tg.PeerChat:
		return -p.ChatID
	case *tg.PeerChannel:
		return ChannelID(p.ChannelID)
	default:
		return 0
	}
}

// ChannelID converts an unsigned channel id to its signed form. The same
// conversion maps a migrate-to channel id into the domain chat-id space.
func ChannelID(raw int64) int64 {
	return ZeroChannelID - raw
}

// TypeOf reports the kind a signed peer id belongs to. ok is false for ids
// outside every known range.
func TypeOf(id int64) (Kind, bool) {
	switch {
	case id < 0 && id >= MinChatID:
		return KindChat, true
	case id >= MinChannelID && id < ZeroChannelID:
		return KindChannel, true
	case id > 0 && id <= MaxUserID:
		return KindUser, true
	default:
		return "", false
	}
}
