// Package peers_test tests the signed peer-id encoding.
package peers_test

import (
	"testing"

	"github.com/gotd/td/tg"

	"github.com/sanpater/pyrogram/internal/peers"
)

func TestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		peer tg.PeerClass
		want int64
	}{
		{
			name: "user keeps its id",
			peer: &tg.PeerUser{UserID: 123456},
			want: 123456,
		},
		{
			name: "basic group is negated",
			peer: &tg.PeerChat{ChatID: 10200300},
			want: -10200300,
		},
		{
			name: "channel is offset below the zero channel id",
			peer: &tg.PeerChannel{ChannelID: 1234567890},
			want: -1001234567890,
		},
		{
			name: "nil peer",
			peer: nil,
			want: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := peers.ID(tc.peer); got != tc.want {
				t.Errorf("ID() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestChannelIDIsInvolutive(t *testing.T) {
	t.Parallel()

	raw := int64(1234567890)
	signed := peers.ChannelID(raw)

	if signed != -1001234567890 {
		t.Fatalf("ChannelID(%d) = %d, want -1001234567890", raw, signed)
	}
	if back := peers.ChannelID(signed); back != raw {
		t.Errorf("ChannelID(ChannelID(%d)) = %d, want the original id back", raw, back)
	}
}

func TestTypeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		id     int64
		want   peers.Kind
		wantOK bool
	}{
		{name: "user id", id: 123456, want: peers.KindUser, wantOK: true},
		{name: "largest user id", id: peers.MaxUserID, want: peers.KindUser, wantOK: true},
		{name: "basic group id", id: -10200300, want: peers.KindChat, wantOK: true},
		{name: "channel id", id: -1001234567890, want: peers.KindChannel, wantOK: true},
		{name: "zero", id: 0, wantOK: false},
		{name: "below the channel range", id: peers.MinChannelID - 1, wantOK: false},
		{name: "above the user range", id: peers.MaxUserID + 1, wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := peers.TypeOf(tc.id)
			if ok != tc.wantOK {
				t.Fatalf("TypeOf(%d) ok = %v, want %v", tc.id, ok, tc.wantOK)
			}
			if ok && got != tc.want {
				t.Errorf("TypeOf(%d) = %q, want %q", tc.id, got, tc.want)
			}
		})
	}
}

func TestRawID(t *testing.T) {
	t.Parallel()

	if got := peers.RawID(&tg.PeerChannel{ChannelID: 777}); got != 777 {
		t.Errorf("RawID(channel 777) = %d, want 777", got)
	}
	if got := peers.RawID(nil); got != 0 {
		t.Errorf("RawID(nil) = %d, want 0", got)
	}
}
