package domain

import "errors"

// Closed error set; controllers match with errors.Is and map each variant
// to a localized flash message.
var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrAlreadyLoggedIn    = errors.New("already logged in")
	ErrMissingFields      = errors.New("required fields missing")
	ErrInvalidUsername    = errors.New("invalid username")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrMissingCredentials = errors.New("missing credentials")

	ErrNotLoggedIn  = errors.New("not logged in")
	ErrMissingSkill = errors.New("skill missing")
	ErrUnknownSkill = errors.New("unknown skill")
)
