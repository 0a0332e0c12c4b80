package sanitize

import (
	"errors"
	"fmt"
)

var (
	// ErrPathTraversal flags values containing "..", "/" or "\".
	ErrPathTraversal = errors.New("path traversal detected")
	// ErrTooShort flags slugs and names shorter than two characters after cleanup.
	ErrTooShort = errors.New("must be at least 2 characters long")
	// ErrInvalidURL flags values that are not absolute http(s) URLs.
	ErrInvalidURL = errors.New("invalid URL")
	// ErrInvalidVersion flags values that are neither semver nor WordPress versions.
	ErrInvalidVersion = errors.New("version must follow semantic versioning (e.g., 1.0.0 or 6.5)")
	// ErrUnknownKind flags a Kind the sanitizer does not handle.
	ErrUnknownKind = errors.New("unknown sanitization kind")
)

// Error reports a rejected value together with the field and original input.
type Error struct {
	Field  string
	Input  string
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("sanitize: %s: %v in %q", e.Field, e.Err, e.Input)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}
