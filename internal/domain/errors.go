package domain

import "errors"

var (
	// ErrNotFound: the addressed or referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict: the write clashes with existing data (overlapping stay,
	// booking already converted).
	ErrConflict = errors.New("conflict")
	// ErrValidation: malformed input, detected before any store access.
	ErrValidation = errors.New("invalid input")
)
