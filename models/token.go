package models

import "github.com/golang-jwt/jwt/v5"

// TokenType distinguishes access tokens from refresh tokens. It is stored in
// the "type" claim of every issued JWT.
type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// TokenClaims is the claim set of every token issued by the server.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Type is either [AccessToken] or [RefreshToken].
	Type TokenType `json:"type"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP bodies or headers.
// UserID is the parsed copy of the "sub" claim.
type Token struct {
	*jwt.Token `json:"-"`

	SignedString string    `json:"-"`
	UserID       int64     `json:"-"`
	Type         TokenType `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// TokenPair is the response of login, register and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
