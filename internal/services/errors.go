package services

import "errors"

// Sentinel errors returned by the service layer. Handlers translate
// these to HTTP statuses with errors.Is instead of matching strings.
var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrDuplicateMovie     = errors.New("movie already exists in your list")
	ErrMovieNotFound      = errors.New("movie not found")
)
