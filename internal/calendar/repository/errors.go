package repository

import "errors"

var (
	ErrNotFound     = errors.New("record not found")
	ErrForbidden    = errors.New("access denied by provider")
	ErrUnauthorized = errors.New("provider credentials rejected")
	ErrNoCredential = errors.New("scope has no provider credentials")
)
