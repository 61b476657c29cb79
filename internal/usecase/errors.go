package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrConflict              = errors.New("conflict")
	ErrIllegalState          = errors.New("illegal state")
	ErrPaymentLocked         = errors.New("payment locked")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
