// Package model contains the domain records produced by the decode pipeline.
// These types are independent of the transport layer; the only raw-format
// leak is the Raw backing field kept on Message for callers that need the
// original wire record.
package model

import (
	"time"

	"github.com/gotd/td/tg"
)

// Message is the normalized form of one raw wire-format message. Nearly all
// fields are optional; they are grouped into mutually-exclusive clusters:
//
//   - sender: FromUser XOR SenderChat
//   - service payload: exactly one sub-field set when Service is non-empty
//   - media payload: exactly one sub-field set when Media is non-empty
//   - text: Text/Entities XOR Caption/CaptionEntities
//   - reply linkage: message reply XOR story reply
type Message struct {
	ID    int
	Empty bool

	Chat            *Chat
	Date            time.Time
	MessageThreadID int
	TopicMessage    bool
	Topic           *ForumTopic

	FromUser   *User
	SenderChat *Chat

	Text            *Str
	Entities        []MessageEntity
	Caption         *Str
	CaptionEntities []MessageEntity
	Quote           bool
	QuoteText       *Str
	QuoteEntities   []MessageEntity

	// Media payload cluster. Media names the populated field.
	Media             MediaType
	Photo             *Photo
	Location          *Location
	Contact           *Contact
	Venue             *Venue
	Game              *Game
	Giveaway          *Giveaway
	GiveawayWinners   *GiveawayWinners
	Invoice           *Invoice
	Story             *StoryReference
	Audio             *Audio
	Voice             *Voice
	Animation         *Animation
	Video             *Video
	AlternativeVideos []*Video
	VideoNote         *VideoNote
	Sticker           *Sticker
	Document          *Document
	WebPage           *WebPage
	Poll              *Poll
	Dice              *Dice
	PaidMedia         *PaidMediaInfo
	HasMediaSpoiler   bool

	// Service payload cluster. Service names the populated field.
	Service                 ServiceType
	NewChatMembers          []*User
	ChatJoinType            ChatJoinType
	LeftChatMember          *User
	NewChatTitle            string
	NewChatPhoto            *Photo
	DeleteChatPhoto         bool
	MigrateToChatID         int64
	MigrateFromChatID       int64
	GroupChatCreated        bool
	ChannelChatCreated      bool
	PinnedMessage           *Message
	GameHighScore           *GameHighScore
	ForumTopicCreated       *ForumTopicCreated
	ForumTopicEdited        *ForumTopicEdited
	ForumTopicClosed        *ForumTopicClosed
	ForumTopicReopened      *ForumTopicReopened
	GeneralTopicHidden      *GeneralTopicHidden
	GeneralTopicUnhidden    *GeneralTopicUnhidden
	VideoChatScheduled      *VideoChatScheduled
	VideoChatStarted        *VideoChatStarted
	VideoChatEnded          *VideoChatEnded
	VideoChatMembersInvited *VideoChatMembersInvited
	PhoneCallStarted        *PhoneCallStarted
	PhoneCallEnded          *PhoneCallEnded
	WebAppData              *WebAppData
	GiveawayCreated         *GiveawayCreated
	GiveawayCompleted       *GiveawayCompleted
	GiftCode                *GiftCode
	Gift                    *Gift
	RequestedChats          *RequestedChats
	SuccessfulPayment       *SuccessfulPayment
	RefundedPayment         *RefundedPayment
	ChatTTLPeriod           int
	BoostsApplied           int
	ConnectedWebsite        string
	WriteAccessAllowed      *WriteAccessAllowed
	ScreenshotTaken         *ScreenshotTaken
	ContactRegistered       *ContactRegistered

	// Reply linkage: a message reply or a story reply, never both.
	ReplyToMessageID    int
	ReplyToTopMessageID int
	ReplyToMessage      *Message
	ReplyToStoryID      int
	ReplyToStoryUserID  int64
	ReplyToStory        *Story

	// Forward linkage.
	ForwardFrom          *User
	ForwardSenderName    string
	ForwardFromChat      *Chat
	ForwardFromMessageID int
	ForwardSignature     string
	ForwardDate          time.Time
	AutomaticForward     bool

	ViaBot            *User
	SenderBusinessBot *User
	AuthorSignature   string

	Views            int
	Forwards         int
	SenderBoostCount int
	Reactions        *MessageReactions
	ReplyMarkup      ReplyMarkup

	Mentioned             bool
	Scheduled             bool
	FromScheduled         bool
	Outgoing              bool
	EditDate              time.Time
	EditHidden            bool
	HasProtectedContent   bool
	ShowCaptionAboveMedia bool
	MediaGroupID          int64
	EffectID              int64
	FromOffline           bool

	BusinessConnectionID string

	// Raw is the wire record this message was decoded from.
	Raw tg.MessageClass
}

// Content returns whichever of text or caption is populated.
func (m *Message) Content() *Str {
	if m.Text != nil {
		return m.Text
	}
	return m.Caption
}
