package model

// User is a Telegram user or bot.
type User struct {
	ID           int64
	IsSelf       bool
	IsContact    bool
	IsBot        bool
	IsDeleted    bool
	IsVerified   bool
	IsRestricted bool
	IsScam       bool
	IsFake       bool
	IsSupport    bool
	IsPremium    bool

	FirstName    string
	LastName     string
	Username     string
	LanguageCode string
	PhoneNumber  string
}

// FullName joins the first and last name, whichever parts are present.
func (u *User) FullName() string {
	if u == nil {
		return ""
	}
	if u.LastName == "" {
		return u.FirstName
	}
	if u.FirstName == "" {
		return u.LastName
	}
	return u.FirstName + " " + u.LastName
}

// Mention returns an @username mention when the user has a username, falling
// back to the full name.
func (u *User) Mention() string {
	if u == nil {
		return ""
	}
	if u.Username != "" {
		return "@" + u.Username
	}
	return u.FullName()
}
