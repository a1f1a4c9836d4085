package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrEmailNotVerified   = errors.New("Please verify your email to continue")
	ErrEmailInUse         = errors.New("Email already in use")
	ErrInvalidToken       = errors.New("Invalid or expired token")
	ErrEmailSendFailed    = errors.New("Failed to send verification email")
)
