// File: internal/services/chat/errors.go
package chat

import (
	"errors"
	"fmt"
)

type ErrorType string

const (
	ErrTypeConfig      ErrorType = "CONFIG"
	ErrTypeValidation  ErrorType = "VALIDATION"
	ErrTypePersistence ErrorType = "PERSISTENCE"
	ErrTypeGeneration  ErrorType = "GENERATION"
	ErrTypeNotFound    ErrorType = "NOT_FOUND"
)

// ChatError carries one coarse failure kind per orchestration stage so the
// handler layer can map it to the right status code. The cause stays
// attached for logs and is never shown to the external caller.
type ChatError struct {
	Type      ErrorType
	Operation string
	Message   string
	SessionID string
	Cause     error
}

func (e *ChatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("Chat %s error in %s: %s (caused by: %v)",
			e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("Chat %s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *ChatError) Unwrap() error { return e.Cause }

func NewValidationError(operation, msg string) *ChatError {
	return &ChatError{Type: ErrTypeValidation, Operation: operation, Message: msg}
}

func NewPersistenceError(operation, msg string, cause error) *ChatError {
	return &ChatError{Type: ErrTypePersistence, Operation: operation, Message: msg, Cause: cause}
}

func NewGenerationError(operation, msg string, cause error) *ChatError {
	return &ChatError{Type: ErrTypeGeneration, Operation: operation, Message: msg, Cause: cause}
}

// TypeOf extracts the coarse failure kind from err, or "" when err is not
// a ChatError.
func TypeOf(err error) ErrorType {
	var chatErr *ChatError
	if errors.As(err, &chatErr) {
		return chatErr.Type
	}
	return ""
}
