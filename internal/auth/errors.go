package auth

import "errors"

var (
	ErrInvalidCode      = errors.New("authorization code was rejected")
	ErrInvalidState     = errors.New("unknown or expired oauth state")
	ErrEmailNotVerified = errors.New("google account email is not verified")
	ErrDomainNotAllowed = errors.New("workspace domain is not allowed")
	ErrInvalidToken     = errors.New("invalid or expired token")
	ErrSessionNotFound  = errors.New("session not found")
)
