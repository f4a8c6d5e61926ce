package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAdminDisabled is returned when no admin credentials are configured.
	ErrAdminDisabled = errors.New("admin login disabled")
)

// Flash keys shared by the handlers and the views.
const (
	FlashContactSuccess = "success"
	FlashContactError   = "error"
	FlashAuthError      = "authError"
)
