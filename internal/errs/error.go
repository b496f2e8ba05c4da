package errs

import (
	"errors"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrUserName           = errors.New("username is required")
	ErrOutOfStock         = errors.New("book is no longer available")
	ErrInvalidTransition  = errors.New("operation not valid for current status")
	ErrEmptyMessage       = errors.New("message text is empty")
	ErrMissingParticipant = errors.New("transaction participant is missing")
	ErrForbidden          = errors.New("operation not permitted for this user")
	ErrOwnBook            = errors.New("cannot request own book")
	ErrDuplicateRequest   = errors.New("open request for this book already exists")
	ErrBookDisabled       = errors.New("book is disabled")
)

type ValidationErrorResponse struct {
	Message string `json:"message"`
	Errors  struct {
		AdditionalProperties string `json:"additionalProperties"`
	} `json:"errors"`
}
