package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the order dispatch and intake error taxonomy.
// Each maps to a stable HTTP status in the inbound adapter.
var (
	ErrForbidden          = errors.New("forbidden")
	ErrVersionConflict    = errors.New("version conflict")
	ErrIntegrityViolation = errors.New("integrity violation")
	ErrAlreadyDispatched  = errors.New("already dispatched")
	ErrDuplicateObject    = errors.New("object already exists")
	ErrDependencyFailure  = errors.New("dependency failure")
)

// ForbiddenError indicates the caller's role is not in the permitted set for an action.
type ForbiddenError struct {
	Role   string
	Action string
}

// NewForbiddenError creates a ForbiddenError for a role attempting an action.
func NewForbiddenError(role, action string) *ForbiddenError {
	return &ForbiddenError{Role: role, Action: action}
}

func (e *ForbiddenError) Error() string {
	return sanitize(fmt.Sprintf("%s: role %q is not allowed to %s", ErrForbidden, e.Role, e.Action))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// VersionConflictError indicates the caller-supplied optimistic version does not
// match the stored one: the object was modified by a concurrent process.
type VersionConflictError struct {
	ParamName string
	Supplied  int
	Stored    int
}

// NewVersionConflictError creates a VersionConflictError for a stale supplied version.
func NewVersionConflictError(paramName string, supplied, stored int) *VersionConflictError {
	return &VersionConflictError{ParamName: paramName, Supplied: supplied, Stored: stored}
}

func (e *VersionConflictError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s supplied version %d, stored version %d",
		ErrVersionConflict, e.ParamName, e.Supplied, e.Stored))
}

func (e *VersionConflictError) Unwrap() error {
	return ErrVersionConflict
}

// IntegrityViolationError indicates the stored integrity seal did not match the
// recomputed digest: the critical fields were mutated outside the sanctioned path.
// The engine restores the sealed values before reporting this error.
type IntegrityViolationError struct {
	ParamName string
	ID        any
}

// NewIntegrityViolationError creates an IntegrityViolationError for a tampered object.
func NewIntegrityViolationError(paramName string, id any) *IntegrityViolationError {
	return &IntegrityViolationError{ParamName: paramName, ID: id}
}

func (e *IntegrityViolationError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s %s was modified outside the transaction path and has been restored",
		ErrIntegrityViolation, e.ParamName, e.ID))
}

func (e *IntegrityViolationError) Unwrap() error {
	return ErrIntegrityViolation
}

// AlreadyDispatchedError indicates an idempotent rejection: the order is in its
// dispatched state and the dispatch operation must not run again.
type AlreadyDispatchedError struct {
	ID any
}

// NewAlreadyDispatchedError creates an AlreadyDispatchedError for an order.
func NewAlreadyDispatchedError(id any) *AlreadyDispatchedError {
	return &AlreadyDispatchedError{ID: id}
}

func (e *AlreadyDispatchedError) Error() string {
	return sanitize(fmt.Sprintf("%s: order %s", ErrAlreadyDispatched, e.ID))
}

func (e *AlreadyDispatchedError) Unwrap() error {
	return ErrAlreadyDispatched
}

// DuplicateObjectError indicates a uniqueness constraint rejected a write.
type DuplicateObjectError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewDuplicateObjectError creates a DuplicateObjectError without an underlying cause.
func NewDuplicateObjectError(paramName string, id any) *DuplicateObjectError {
	return &DuplicateObjectError{ParamName: paramName, ID: id}
}

// NewDuplicateObjectErrorWithCause creates a DuplicateObjectError wrapping the storage error.
func NewDuplicateObjectErrorWithCause(paramName string, id any, cause error) *DuplicateObjectError {
	return &DuplicateObjectError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *DuplicateObjectError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrDuplicateObject, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrDuplicateObject, e.ID))
}

func (e *DuplicateObjectError) Unwrap() error {
	return ErrDuplicateObject
}

// DependencyFailureError indicates a remote collaborator was unreachable or
// returned data the caller could not use.
type DependencyFailureError struct {
	Dependency string
	Cause      error
}

// NewDependencyFailureError creates a DependencyFailureError for a named collaborator.
func NewDependencyFailureError(dependency string, cause error) *DependencyFailureError {
	return &DependencyFailureError{Dependency: dependency, Cause: cause}
}

func (e *DependencyFailureError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %v)", ErrDependencyFailure, e.Dependency, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrDependencyFailure, e.Dependency))
}

func (e *DependencyFailureError) Unwrap() error {
	return ErrDependencyFailure
}
