package models

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by lookups that match no document.
var ErrNotFound = errors.New("document not found")

// ConfigurationError reports a missing or unusable configuration value.
// The process cannot start without it.
type ConfigurationError struct {
	Key string
	Msg string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s: %s", e.Key, e.Msg)
}

// ConnectionError wraps a failure to reach the database. It is never cached,
// so calling Acquire again retries.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "mongodb connection failed: " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// ValidationError is a failed required/format/enum constraint on one field.
type ValidationError struct {
	Entity string
	Field  string
	Msg    string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// ReferenceError is returned when a booking points at an event that does not exist.
type ReferenceError struct {
	Entity string
	ID     string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s with ID %s does not exist", e.Entity, e.ID)
}

// ConflictError wraps a uniqueness violation reported by the store.
type ConflictError struct {
	Entity string
	Err    error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists: %v", e.Entity, e.Err)
}

func (e *ConflictError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsReference(err error) bool {
	var re *ReferenceError
	return errors.As(err, &re)
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
