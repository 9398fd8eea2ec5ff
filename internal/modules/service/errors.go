package service

import (
	"errors"
)

// Error kinds. Every error returned by a service for a caller mistake wraps
// exactly one of these; handlers map them to transport statuses.
var (
	ErrInvalidKey = errors.New("invalid key")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

const (
	msgInvalidKey        = "Invalid Key"
	msgNoPermission      = "Key doesn't have permission to do that"
	msgAdminRequired     = "Key must have admin permissions"
	msgInvalidSuggestion = "Invalid Suggestion ID"
	msgPartialPatch      = ". Some other fields may have been modified"
)

// DetailError carries the human-readable message shown to the caller.
type DetailError struct {
	Kind error
	Msg  string
	Err  error
}

func (e *DetailError) Error() string { return e.Msg }

func (e *DetailError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func invalidKey() error {
	return &DetailError{Kind: ErrInvalidKey, Msg: msgInvalidKey}
}

func forbidden(msg string) error {
	return &DetailError{Kind: ErrForbidden, Msg: msg}
}

func validation(err error) error {
	return &DetailError{Kind: ErrValidation, Msg: err.Error(), Err: err}
}

func notFound(msg string) error {
	return &DetailError{Kind: ErrNotFound, Msg: msg}
}

// InvalidKey is the error for an unknown or missing key.
func InvalidKey() error { return invalidKey() }
