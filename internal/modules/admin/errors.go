package admin

import "errors"

var (
	ErrInvalidUserID = errors.New("invalid user id format")
	ErrUserNotFound  = errors.New("user not found")
)
