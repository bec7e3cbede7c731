package models

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	UserName        string  `json:"user_name"`
	Password        string  `json:"password"`
	PasswordConfirm string  `json:"password_confirm"`
	FirstName       *string `json:"first_name,omitempty"`
	LastName        *string `json:"last_name,omitempty"`
}
