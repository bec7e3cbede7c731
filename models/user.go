package models

import "time"

// User represents an account entity as it is exposed through the API.
// Credential data never leaves the server in this shape; see [AuthUser].
type User struct {
	// ID is the unique identifier of the user.
	ID int64 `json:"id"`

	// UserName is the unique login of the user.
	UserName string `json:"user_name"`

	// FirstName is the optional given name of the user.
	FirstName string `json:"first_name"`

	// LastName is the optional family name of the user.
	LastName string `json:"last_name"`

	// Status is the account status flag. Zero means an ordinary active user.
	Status int `json:"status"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last profile change.
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthUser carries the data required to authenticate a user.
// It is used only between the store and the auth service.
type AuthUser struct {
	ID           int64
	UserName     string
	PasswordHash string
	Status       int
}

// NewUser is the data required to insert a user row.
type NewUser struct {
	UserName     string
	FirstName    string
	LastName     string
	PasswordHash string
}

// UpdateUserRequest is the body of PUT /users/{user_id}.
// Only non-nil fields are changed (partial update).
type UpdateUserRequest struct {
	UserName        *string `json:"user_name,omitempty"`
	FirstName       *string `json:"first_name,omitempty"`
	LastName        *string `json:"last_name,omitempty"`
	Password        *string `json:"password,omitempty"`
	PasswordConfirm *string `json:"password_confirm,omitempty"`

	// PasswordHash is filled by the service after hashing Password.
	// It is never read from or written to JSON.
	PasswordHash *string `json:"-"`
}

// Pagination is the limit/offset pair used by list endpoints.
type Pagination struct {
	Limit  int64
	Offset int64
}
