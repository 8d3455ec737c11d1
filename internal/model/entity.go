package model

// EntityType identifies the kind of a formatting or semantic span inside
// message text.
type EntityType string

const (
	EntityMention       EntityType = "mention"
	EntityHashtag       EntityType = "hashtag"
	EntityCashtag       EntityType = "cashtag"
	EntityBotCommand    EntityType = "bot_command"
	EntityURL           EntityType = "url"
	EntityEmail         EntityType = "email"
	EntityPhoneNumber   EntityType = "phone_number"
	EntityBold          EntityType = "bold"
	EntityItalic        EntityType = "italic"
	EntityUnderline     EntityType = "underline"
	EntityStrikethrough EntityType = "strikethrough"
	EntitySpoiler       EntityType = "spoiler"
	EntityCode          EntityType = "code"
	EntityPre           EntityType = "pre"
	EntityTextLink      EntityType = "text_link"
	EntityTextMention   EntityType = "text_mention"
	EntityBlockquote    EntityType = "blockquote"
	EntityBankCard      EntityType = "bank_card"
	EntityCustomEmoji   EntityType = "custom_emoji"
	EntityUnknown       EntityType = "unknown"
)

// MessageEntity is one span over message text. Offset and Length are
// expressed in UTF-16 code units, matching the wire format's convention.
type MessageEntity struct {
	Type   EntityType
	Offset int
	Length int

	// URL is set for text_link entities.
	URL string
	// User is set for text_mention entities when the sender was resolvable.
	User *User
	// Language is set for pre entities carrying a syntax hint.
	Language string
	// CustomEmojiID is set for custom_emoji entities.
	CustomEmojiID int64
	// Collapsed marks an expandable blockquote.
	Collapsed bool
}
