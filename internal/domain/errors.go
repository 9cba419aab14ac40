package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrCommunityNotFound     = errors.New("community not found")
	ErrMessageNotFound       = errors.New("message not found")
	ErrParentMessageNotFound = errors.New("parent message not found")
	ErrCommunityNameTaken    = errors.New("community name already taken")
	ErrDuplicateReaction     = errors.New("reaction already exists for this message, user and kind")
	ErrInvalidReactionKind   = errors.New("invalid reaction kind")
)

// ValidationError carries field-level validation messages. It is expected and
// recoverable; handlers surface it as a 400 with the field map attached.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records a message for a field and returns the error for chaining.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields[field] = message
	return e
}

// Empty reports whether no field failed validation.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e.Fields[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
