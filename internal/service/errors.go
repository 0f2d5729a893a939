package service

import "errors"

var (
	// ErrNotFound is returned when the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when a user acts on another user's card.
	ErrForbidden = errors.New("forbidden")
)
