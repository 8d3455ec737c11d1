package model

import "time"

// MediaType tags which media payload cluster a message carries. At most one
// payload field matching the tag is set.
type MediaType string

const (
	MediaPhoto           MediaType = "photo"
	MediaLocation        MediaType = "location"
	MediaContact         MediaType = "contact"
	MediaVenue           MediaType = "venue"
	MediaGame            MediaType = "game"
	MediaGiveaway        MediaType = "giveaway"
	MediaGiveawayWinners MediaType = "giveaway_winners"
	MediaInvoice         MediaType = "invoice"
	MediaStory           MediaType = "story"
	MediaAudio           MediaType = "audio"
	MediaVoice           MediaType = "voice"
	MediaAnimation       MediaType = "animation"
	MediaVideo           MediaType = "video"
	MediaVideoNote       MediaType = "video_note"
	MediaSticker         MediaType = "sticker"
	MediaDocument        MediaType = "document"
	MediaWebPage         MediaType = "web_page"
	MediaPoll            MediaType = "poll"
	MediaDice            MediaType = "dice"
	MediaPaidMedia       MediaType = "paid_media"
)

// Photo is a compressed image. Width/Height/FileSize describe the largest
// available size.
type Photo struct {
	ID          int64
	Width       int
	Height      int
	FileSize    int64
	Date        time.Time
	HasStickers bool
	TTLSeconds  int
}

// Video is a full video document.
type Video struct {
	ID                int64
	Width             int
	Height            int
	Duration          float64
	FileName          string
	MimeType          string
	FileSize          int64
	Date              time.Time
	SupportsStreaming bool
	NoSound           bool
	TTLSeconds        int
}

// VideoNote is a round video message.
type VideoNote struct {
	ID       int64
	Length   int
	Duration float64
	MimeType string
	FileSize int64
	Date     time.Time
}

// Animation is a GIF-style soundless looping video.
type Animation struct {
	ID       int64
	Width    int
	Height   int
	Duration float64
	FileName string
	MimeType string
	FileSize int64
	Date     time.Time
}

// Audio is a music file.
type Audio struct {
	ID        int64
	Duration  int
	Performer string
	Title     string
	FileName  string
	MimeType  string
	FileSize  int64
	Date      time.Time
}

// Voice is a voice note.
type Voice struct {
	ID       int64
	Duration int
	Waveform []byte
	MimeType string
	FileSize int64
	Date     time.Time
}

// Sticker is a sticker image or animation.
type Sticker struct {
	ID         int64
	Width      int
	Height     int
	Emoji      string
	IsMask     bool
	IsAnimated bool
	IsVideo    bool
	FileName   string
	MimeType   string
	FileSize   int64
	Date       time.Time
}

// Document is a generic file.
type Document struct {
	ID       int64
	FileName string
	MimeType string
	FileSize int64
	Date     time.Time
}

// Contact is a shared phone contact.
type Contact struct {
	PhoneNumber string
	FirstName   string
	LastName    string
	UserID      int64
	VCard       string
}

// Location is a point on the map.
type Location struct {
	Longitude      float64
	Latitude       float64
	AccuracyRadius int
}

// Venue is a location with attached venue metadata.
type Venue struct {
	Location  Location
	Title     string
	Address   string
	Provider  string
	VenueID   string
	VenueType string
}

// Game is a game preview attached to a message.
type Game struct {
	ID          int64
	Title       string
	ShortName   string
	Description string
	Photo       *Photo
}

// WebPage is a link preview.
type WebPage struct {
	ID          int64
	URL         string
	DisplayURL  string
	Type        string
	SiteName    string
	Title       string
	Description string
	Author      string
	EmbedURL    string
	EmbedType   string
	Duration    int
}

// PollOption is one answer of a poll.
type PollOption struct {
	Text       string
	VoterCount int
	Data       []byte
}

// Poll is a native poll. Vote counts reflect the snapshot carried by the raw
// record; live state is deliberately not cached.
type Poll struct {
	ID                    int64
	Question              string
	Options               []PollOption
	TotalVoterCount       int
	IsClosed              bool
	IsAnonymous           bool
	IsQuiz                bool
	AllowsMultipleAnswers bool
	ChosenOptionIDs       []int
}

// Dice is an animated emoji with a random value.
type Dice struct {
	Emoji string
	Value int
}

// Invoice is a billing request attached to a message.
type Invoice struct {
	Title                    string
	Description              string
	Currency                 string
	TotalAmount              int64
	StartParameter           string
	IsTest                   bool
	ShippingAddressRequested bool
}

// Giveaway is a prize giveaway announcement.
type Giveaway struct {
	ChatIDs            []int64
	Quantity           int
	Months             int
	Stars              int64
	UntilDate          time.Time
	OnlyNewSubscribers bool
	WinnersAreVisible  bool
	CountriesISO2      []string
	PrizeDescription   string
}

// GiveawayWinners announces the drawn winners of a finished giveaway.
type GiveawayWinners struct {
	ChatID            int64
	GiveawayMessageID int
	WinnersCount      int
	UnclaimedCount    int
	Winners           []*User
	Months            int
	Stars             int64
	UntilDate         time.Time
	IsRefunded        bool
	PrizeDescription  string
}

// StoryReference points at a story shared into a message.
type StoryReference struct {
	ID         int
	ChatID     int64
	ViaMention bool
}

// Story is a resolved story record, attached when a message replies to one.
type Story struct {
	ID             int
	ChatID         int64
	Date           time.Time
	ExpireDate     time.Time
	IsPinned       bool
	IsPublic       bool
	IsCloseFriends bool
	Caption        *Str
	Photo          *Photo
	Video          *Video
}

// PaidMediaInfo describes star-gated media attached to a message.
type PaidMediaInfo struct {
	StarsAmount int64
	Count       int
}
