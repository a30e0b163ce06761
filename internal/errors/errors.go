package errors

import (
	"errors"
)

var (
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrAccountDisabled          = errors.New("account is disabled")
	ErrCurrentPasswordIncorrect = errors.New("current password is incorrect")
	ErrUserNotFound             = errors.New("user not found")
	ErrVolunteerNotFound        = errors.New("volunteer not found")
	ErrEmailAlreadyInUse        = errors.New("email already in use")
	ErrTokenInvalid             = errors.New("invalid or revoked token")
	ErrTokenMalformed           = errors.New("malformed token")
)
