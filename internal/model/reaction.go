package model

// Reaction is one aggregated reaction on a message: either an emoji, a
// custom emoji document, or the paid star reaction.
type Reaction struct {
	Emoji         string
	CustomEmojiID int64
	IsPaid        bool

	Count       int
	ChosenOrder int
	IsChosen    bool
}

// MessageReactions aggregates all reactions on a message.
type MessageReactions struct {
	Reactions []Reaction
}
