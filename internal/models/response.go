package models

// UserResponse is the envelope for mutating user endpoints.
type UserResponse struct {
	Message string     `json:"message"`
	User    PublicUser `json:"user"`
}

// TokenUserResponse is returned by the token check endpoint. Unlike the
// directory projection it includes the live role, since the caller is
// the account owner.
type TokenUserResponse struct {
	Message string    `json:"message"`
	User    Principal `json:"user"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token   string     `json:"token"`
	Message string     `json:"message"`
	User    PublicUser `json:"user"`
}

// ErrorResponse is the JSON error envelope. Stack is only populated
// outside production mode.
type ErrorResponse struct {
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}
