package services

import "errors"

// Lookup misses
var (
	ErrUserNotFound = errors.New("user does not exist")
)

// Bad credentials
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Policy violations
var (
	ErrUserInactive      = errors.New("user account is locked")
	ErrUsernameTaken     = errors.New("username already registered")
	ErrEmailTaken        = errors.New("email already registered")
	ErrInvalidEmail      = errors.New("malformed email address")
	ErrInvalidMobile     = errors.New("malformed mobile number")
	ErrInvalidWechat     = errors.New("malformed wechat handle")
	ErrInvalidQQ         = errors.New("malformed qq handle")
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrCodeNotRequested  = errors.New("no verification code was requested")
	ErrCodeExpired       = errors.New("verification code expired")
	ErrResetStateMissing = errors.New("reset cookies missing or expired")
	ErrResetCodeWrong    = errors.New("reset code does not match")
	ErrNoAvatar          = errors.New("user has no avatar file")
)

// Wrong one-time code
var (
	ErrCodeIncorrect = errors.New("verification code incorrect")
)

// Server-side failures
var (
	ErrCacheDisabled = errors.New("email login requires the session cache")
)
