package models

import "time"

// Session is the token pair the terminal client keeps between runs.
type Session struct {
	UserID       int64
	UserName     string
	AccessToken  string
	RefreshToken string
	UpdatedAt    time.Time
}

// Tokens returns the pair held by the session.
func (s Session) Tokens() TokenPair {
	return TokenPair{AccessToken: s.AccessToken, RefreshToken: s.RefreshToken}
}
