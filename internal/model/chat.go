package model

// ChatType classifies a conversation.
type ChatType string

const (
	ChatPrivate    ChatType = "private"
	ChatBot        ChatType = "bot"
	ChatGroup      ChatType = "group"
	ChatSupergroup ChatType = "supergroup"
	ChatChannel    ChatType = "channel"
)

// Chat is the conversation a message belongs to, or a chat acting as a
// message sender. The ID is in the signed peer-id space.
type Chat struct {
	ID   int64
	Type ChatType

	// Title is set for groups, supergroups and channels.
	Title string
	// FirstName/LastName are set for private chats.
	FirstName string
	LastName  string
	Username  string

	IsForum      bool
	IsVerified   bool
	IsRestricted bool
	IsCreator    bool
	IsScam       bool
	IsFake       bool

	MembersCount int
}

// ForumTopic is a named sub-thread of a forum supergroup.
type ForumTopic struct {
	ID           int
	Title        string
	Date         int
	IconColor    int
	IconEmojiID  int64
	TopMessageID int
	CreatorID    int64

	IsClosed bool
	IsPinned bool
	IsHidden bool
}
