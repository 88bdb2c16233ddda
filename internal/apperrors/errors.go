package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel for generic lookups where the resource name doesn't matter.
var ErrNotFound = errors.New("resource not found")

// ValidationError carries per-field detail so the frontend can highlight
// exactly what the caller got wrong. Nothing is persisted when one is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d invalid field(s)", len(e.Fields))
}

func NewValidation() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (e *ValidationError) Add(field, msg string) {
	e.Fields[field] = msg
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// NotFoundError names the missing resource (404 analogue).
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func NotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// ConflictError covers uniqueness violations and business-rule rejections
// like removing the last active managing director (409 analogue).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func Conflict(msg string) *ConflictError {
	return &ConflictError{Message: msg}
}
