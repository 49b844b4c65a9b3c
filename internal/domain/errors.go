package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
	ErrPersistence = errors.New("persistence error")
	ErrCsrfInvalid = errors.New("the csrf token is not valid, CSRF attack?")

	// Programmer errors: misconfigured resources, never user-recoverable.
	ErrUndefinedBatchAction = errors.New("undefined batch action")
	ErrMissingHandler       = errors.New("missing batch handler")
	ErrExportFormat         = errors.New("export format not allowed")
)

// MsgRequired is the field message used when a required value is blank.
const MsgRequired = "is required"

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NotFoundError names what could not be located: an object, one of its
// revisions, the audit reader of a class, or a route/method.
type NotFoundError struct {
	What     string
	ID       string
	Revision string
	Class    string
	Detail   string
}

func (e *NotFoundError) Error() string {
	switch {
	case e.Detail != "":
		return e.Detail
	case e.Revision != "":
		return fmt.Sprintf("unable to find the targeted object `%s` from the revision `%s` with classname : `%s`",
			e.ID, e.Revision, e.Class)
	case e.What == "audit reader":
		return fmt.Sprintf("unable to find the audit reader for class : %s", e.Class)
	default:
		return fmt.Sprintf("unable to find the %s with id: %s", e.whatOrObject(), e.ID)
	}
}

func (e *NotFoundError) whatOrObject() string {
	if e.What == "" {
		return "object"
	}
	return e.What
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ObjectNotFound reports a missing subject.
func ObjectNotFound(id string) *NotFoundError {
	return &NotFoundError{What: "object", ID: id}
}

// RevisionNotFound reports a missing revision of an existing subject.
func RevisionNotFound(id, revision, class string) *NotFoundError {
	return &NotFoundError{What: "revision", ID: id, Revision: revision, Class: class}
}

// PersistenceError wraps a failure raised by the persistence collaborator.
// It matches both ErrPersistence and the underlying cause.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrPersistence.Error(), e.Op)
	}
	return fmt.Sprintf("%s: %s: %v", ErrPersistence.Error(), e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrPersistence}
	}
	return []error{ErrPersistence, e.Err}
}

// Cause returns the wrapped failure, if any.
func (e *PersistenceError) Cause() error {
	return e.Err
}

// AccessDenied builds the error returned when the actor may not perform
// action on the resource (or on a specific object when id is non-empty).
func AccessDenied(action, id string) error {
	if id == "" {
		return fmt.Errorf("access denied to action %q: %w", action, ErrForbidden)
	}
	return fmt.Errorf("access denied to action %q on object %s: %w", action, id, ErrForbidden)
}
