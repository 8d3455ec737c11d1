package model

import "time"

// ServiceType tags which chat-lifecycle event a service message carries.
// Exactly one payload field matching the tag is set.
type ServiceType string

const (
	ServiceNewChatMembers       ServiceType = "new_chat_members"
	ServiceLeftChatMember       ServiceType = "left_chat_member"
	ServiceNewChatTitle         ServiceType = "new_chat_title"
	ServiceNewChatPhoto         ServiceType = "new_chat_photo"
	ServiceDeleteChatPhoto      ServiceType = "delete_chat_photo"
	ServiceMigrateToChatID      ServiceType = "migrate_to_chat_id"
	ServiceMigrateFromChatID    ServiceType = "migrate_from_chat_id"
	ServiceGroupChatCreated     ServiceType = "group_chat_created"
	ServiceChannelChatCreated   ServiceType = "channel_chat_created"
	ServiceCustomAction         ServiceType = "custom_action"
	ServicePinnedMessage        ServiceType = "pinned_message"
	ServiceGameHighScore        ServiceType = "game_high_score"
	ServiceForumTopicCreated    ServiceType = "forum_topic_created"
	ServiceForumTopicEdited     ServiceType = "forum_topic_edited"
	ServiceForumTopicClosed     ServiceType = "forum_topic_closed"
	ServiceForumTopicReopened   ServiceType = "forum_topic_reopened"
	ServiceGeneralTopicHidden   ServiceType = "general_topic_hidden"
	ServiceGeneralTopicUnhidden ServiceType = "general_topic_unhidden"
	ServiceVideoChatScheduled   ServiceType = "video_chat_scheduled"
	ServiceVideoChatStarted     ServiceType = "video_chat_started"
	ServiceVideoChatEnded       ServiceType = "video_chat_ended"
	ServiceVideoChatInvited     ServiceType = "video_chat_members_invited"
	ServicePhoneCallStarted     ServiceType = "phone_call_started"
	ServicePhoneCallEnded       ServiceType = "phone_call_ended"
	ServiceWebAppData           ServiceType = "web_app_data"
	ServiceGiveawayCreated      ServiceType = "giveaway_created"
	ServiceGiveawayCompleted    ServiceType = "giveaway_completed"
	ServiceGiftCode             ServiceType = "gift_code"
	ServiceGift                 ServiceType = "gift"
	ServiceRequestedChats       ServiceType = "requested_chats"
	ServiceSuccessfulPayment    ServiceType = "successful_payment"
	ServiceRefundedPayment      ServiceType = "refunded_payment"
	ServiceChatTTLChanged       ServiceType = "chat_ttl_changed"
	ServiceBoostApply           ServiceType = "boost_apply"
	ServiceConnectedWebsite     ServiceType = "connected_website"
	ServiceWriteAccessAllowed   ServiceType = "write_access_allowed"
	ServiceScreenshotTaken      ServiceType = "screenshot_taken"
	ServiceContactRegistered    ServiceType = "contact_registered"
)

// ChatJoinType records how a new member entered the chat.
type ChatJoinType string

const (
	JoinByAdd     ChatJoinType = "by_add"
	JoinByLink    ChatJoinType = "by_link"
	JoinByRequest ChatJoinType = "by_request"
)

// ForumTopicCreated announces a newly created forum topic.
type ForumTopicCreated struct {
	Title       string
	IconColor   int
	IconEmojiID int64
}

// ForumTopicEdited announces a change to a forum topic's title or icon.
type ForumTopicEdited struct {
	Title       string
	IconEmojiID int64
}

// ForumTopicClosed marks a topic-closed event.
type ForumTopicClosed struct{}

// ForumTopicReopened marks a topic-reopened event.
type ForumTopicReopened struct{}

// GeneralTopicHidden marks the general topic being hidden.
type GeneralTopicHidden struct{}

// GeneralTopicUnhidden marks the general topic being unhidden.
type GeneralTopicUnhidden struct{}

// VideoChatScheduled announces a group call scheduled for a future date.
type VideoChatScheduled struct {
	StartDate time.Time
}

// VideoChatStarted marks a group call starting.
type VideoChatStarted struct{}

// VideoChatEnded reports a finished group call.
type VideoChatEnded struct {
	Duration int
}

// VideoChatMembersInvited lists users invited to an ongoing group call.
type VideoChatMembersInvited struct {
	Users []*User
}

// PhoneCallStarted marks an outgoing or incoming call starting.
type PhoneCallStarted struct {
	IsVideo bool
	CallID  int64
}

// CallDiscardReason describes why a phone call ended.
type CallDiscardReason string

const (
	CallDiscardMissed       CallDiscardReason = "missed"
	CallDiscardDisconnected CallDiscardReason = "disconnected"
	CallDiscardHangup       CallDiscardReason = "hangup"
	CallDiscardBusy         CallDiscardReason = "busy"
	CallDiscardUnknown      CallDiscardReason = "unknown"
)

// PhoneCallEnded reports a finished phone call.
type PhoneCallEnded struct {
	IsVideo  bool
	CallID   int64
	Duration int
	Reason   CallDiscardReason
}

// WebAppData carries data sent back from a web app keyboard button.
type WebAppData struct {
	Data       string
	ButtonText string
}

// GiveawayCreated announces a giveaway being launched.
type GiveawayCreated struct {
	Stars int64
}

// GiveawayCompleted announces the results of a finished giveaway.
type GiveawayCompleted struct {
	WinnersCount      int
	UnclaimedCount    int
	IsStarGiveaway    bool
	GiveawayMessageID int
	GiveawayMessage   *Message
}

// GiftCode carries a gifted premium subscription code.
type GiftCode struct {
	ViaGiveaway bool
	IsUnclaimed bool
	BoostChatID int64
	Months      int
	Slug        string
	Currency    string
	Amount      int64
}

// Gift is a star gift sent between users.
type Gift struct {
	ID           int64
	Stars        int64
	ConvertStars int64
	IsLimited    bool
	IsNameHidden bool
	IsSaved      bool
	Caption      *Str
	Sticker      *Sticker
}

// RequestedChats reports peers shared through a request-peer keyboard button.
type RequestedChats struct {
	ButtonID int
	PeerIDs  []int64
}

// SuccessfulPayment confirms a completed payment.
type SuccessfulPayment struct {
	Currency                string
	TotalAmount             int64
	Payload                 string
	InvoiceSlug             string
	ShippingOptionID        string
	TelegramPaymentChargeID string
	ProviderPaymentChargeID string
}

// RefundedPayment reports a refunded payment.
type RefundedPayment struct {
	Currency                string
	TotalAmount             int64
	Payload                 string
	TelegramPaymentChargeID string
	ProviderPaymentChargeID string
}

// WriteAccessAllowed reports a bot being granted write access outside a chat.
type WriteAccessAllowed struct {
	FromRequest        bool
	FromAttachmentMenu bool
	WebAppName         string
}

// ScreenshotTaken marks a chat screenshot notification.
type ScreenshotTaken struct{}

// ContactRegistered marks a contact joining the platform.
type ContactRegistered struct{}

// GameHighScore reports a new high score for a game message.
type GameHighScore struct {
	User  *User
	Score int
}
