package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidRole        = errors.New("role must be either user or admin")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters long")
)
