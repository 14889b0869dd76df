package model

// Scope identifies who is talking to the assistant and through which channel.
type Scope struct {
	UserID   string
	Username string
	Channel  string // "http", "telegram"
}
