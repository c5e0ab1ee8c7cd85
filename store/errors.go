package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a missing plan file, subject or topic.
	ErrNotFound = errors.New("not found")
	// ErrPlanExists marks a create against an already-used file name.
	ErrPlanExists = errors.New("plan already exists")
	// ErrInvalidName marks a file name that would escape the user directory.
	ErrInvalidName = errors.New("invalid file name")
)

// ParseError reports a plan file that exists but does not hold valid
// JSON. It is deliberately distinct from ErrNotFound: only a missing
// file may be treated as a fresh document.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
