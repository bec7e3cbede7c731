package service

import "errors"

var (
	ErrWrongPassword           = errors.New("incorrect username or password")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrPasswordHashingFailed   = errors.New("password hashing failed")

	// ErrForbidden is returned when the caller changes somebody else's account.
	ErrForbidden = errors.New("forbidden")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client-side errors.
var (
	ErrNotLoggedIn      = errors.New("not logged in")
	ErrLoginOnServer    = errors.New("login on server failed")
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrSessionExpired   = errors.New("session expired, please log in again")
)
