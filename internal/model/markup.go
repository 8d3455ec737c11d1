package model

// ReplyMarkup is one of the four keyboard markup kinds attached to a
// message: InlineKeyboardMarkup, ReplyKeyboardMarkup, ReplyKeyboardRemove or
// ForceReply.
type ReplyMarkup interface {
	replyMarkup()
}

// InlineKeyboardButton is one button of an inline keyboard. Exactly one of
// the action fields is set.
type InlineKeyboardButton struct {
	Text string

	URL               string
	CallbackData      []byte
	SwitchInlineQuery string
	SwitchInlineQueryCurrentChat string
	WebAppURL         string
	IsGame            bool
	IsPay             bool
}

// InlineKeyboardMarkup is a keyboard rendered next to the message.
type InlineKeyboardMarkup struct {
	Rows [][]InlineKeyboardButton
}

func (InlineKeyboardMarkup) replyMarkup() {}

// KeyboardButton is one button of a reply keyboard.
type KeyboardButton struct {
	Text string

	RequestContact  bool
	RequestLocation bool
	RequestPoll     bool
	RequestQuiz     bool
	WebAppURL       string
}

// ReplyKeyboardMarkup is a custom reply keyboard.
type ReplyKeyboardMarkup struct {
	Rows [][]KeyboardButton

	ResizeKeyboard bool
	OneTime        bool
	Selective      bool
	Persistent     bool
	Placeholder    string
}

func (ReplyKeyboardMarkup) replyMarkup() {}

// ReplyKeyboardRemove instructs clients to drop the custom keyboard.
type ReplyKeyboardRemove struct {
	Selective bool
}

func (ReplyKeyboardRemove) replyMarkup() {}

// ForceReply instructs clients to open a reply interface.
type ForceReply struct {
	SingleUse   bool
	Selective   bool
	Placeholder string
}

func (ForceReply) replyMarkup() {}
