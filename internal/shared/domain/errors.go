package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound indicates the targeted identity does not exist in the store.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an insert targeted an identity that is already stored.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidIdentifier indicates a malformed identifier string.
	ErrInvalidIdentifier = errors.New("ID must be a valid UUID")

	// ErrEntityValidation indicates an entity failed its invariants.
	ErrEntityValidation = errors.New("entity validation error")
)

// InvalidIdentifierError is returned when an identifier string is not a
// canonical version-4 UUID.
type InvalidIdentifierError struct {
	Value string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidIdentifier.Error(), e.Value)
}

func (e *InvalidIdentifierError) Unwrap() error { return ErrInvalidIdentifier }

// NotFoundError is returned when an operation targets a missing identity.
type NotFoundError struct {
	IDs  []string
	Kind string
}

// NewNotFoundError builds a NotFoundError for one or more identities of kind.
func NewNotFoundError(kind string, ids ...fmt.Stringer) *NotFoundError {
	values := make([]string, len(ids))
	for i, id := range ids {
		values[i] = id.String()
	}
	return &NotFoundError{IDs: values, Kind: kind}
}

// ID returns the first missing identity.
func (e *NotFoundError) ID() string {
	if len(e.IDs) == 0 {
		return ""
	}
	return e.IDs[0]
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s Not Found using ID %s", e.Kind, strings.Join(e.IDs, ", "))
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// AlreadyExistsError is returned when an insert reuses a stored identity.
type AlreadyExistsError struct {
	ID   string
	Kind string
}

// NewAlreadyExistsError builds an AlreadyExistsError for id of kind.
func NewAlreadyExistsError(kind string, id fmt.Stringer) *AlreadyExistsError {
	return &AlreadyExistsError{ID: id.String(), Kind: kind}
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s already exists with ID %s", e.Kind, e.ID)
}

func (e *AlreadyExistsError) Unwrap() error { return ErrAlreadyExists }

// EntityValidationError carries the complete per-field report of a failed
// validation attempt.
type EntityValidationError struct {
	Report ValidationReport
}

// NewEntityValidationError wraps a report.
func NewEntityValidationError(report ValidationReport) *EntityValidationError {
	return &EntityValidationError{Report: report}
}

func (e *EntityValidationError) Error() string {
	fields := e.Report.Fields()
	if len(fields) == 0 {
		return ErrEntityValidation.Error()
	}
	return fmt.Sprintf("%s: %s", ErrEntityValidation.Error(), strings.Join(fields, ", "))
}

func (e *EntityValidationError) Unwrap() error { return ErrEntityValidation }

// IsNotFound reports whether err is, or wraps, a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists reports whether err is, or wraps, a duplicate identity error.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}
