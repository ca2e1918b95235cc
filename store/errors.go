package store

import "errors"

var (
	// ErrNotFound indicates the id did not resolve to a document.
	ErrNotFound = errors.New("store: not found")
	// ErrDuplicateEmail indicates the email is already registered.
	ErrDuplicateEmail = errors.New("store: email already registered")
	// ErrForbidden indicates the requester does not own the resource.
	ErrForbidden = errors.New("store: forbidden")
	// ErrValidation indicates a missing or empty required field.
	ErrValidation = errors.New("store: validation failed")
)
