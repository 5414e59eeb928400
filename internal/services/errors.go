package services

import (
	"errors"
	"fmt"

	"github.com/UNI-F-2025/campus-service/internal/validator"
)

// ===== SENTINEL ERRORS =====

var (
	ErrNotFound         = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrConflict         = errors.New("resource conflict")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrStorage          = errors.New("storage error")
)

// ValidationErrors re-exports the validator error list so handlers only
// import the services package.
type ValidationErrors = validator.ValidationErrors

// ===== TYPED ERRORS =====

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on field %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

func NewValidationError(field, message string, value interface{}) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Value:   value,
	}
}

// NotFoundError carries the resource kind and id that could not be found.
type NotFoundError struct {
	Resource string `json:"resource"`
	ID       string `json:"id"`
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ConflictError marks writes rejected by a uniqueness rule.
type ConflictError struct {
	Resource string `json:"resource"`
	Reason   string `json:"reason"`
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict: %s", e.Resource, e.Reason)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

func NewConflictError(resource, reason string) *ConflictError {
	return &ConflictError{Resource: resource, Reason: reason}
}

// PermissionError records who was denied what and why.
type PermissionError struct {
	UserID   string `json:"user_id"`
	Resource string `json:"resource"`
	ID       string `json:"id,omitempty"`
	Action   string `json:"action"`
	Reason   string `json:"reason"`
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("user %s cannot %s %s: %s", e.UserID, e.Action, e.Resource, e.Reason)
}

func (e *PermissionError) Unwrap() error {
	return ErrForbidden
}

func NewPermissionError(userID, id, resource, action, reason string) *PermissionError {
	return &PermissionError{
		UserID:   userID,
		Resource: resource,
		ID:       id,
		Action:   action,
		Reason:   reason,
	}
}

// StorageError wraps unexpected persistence failures.
type StorageError struct {
	Operation string `json:"operation"`
	Err       error  `json:"-"`
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Operation, e.Err)
}

func (e *StorageError) Unwrap() error {
	return ErrStorage
}

func NewStorageError(operation string, err error) *StorageError {
	return &StorageError{Operation: operation, Err: err}
}
