package domain

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when a lookup or delete matched no row.
type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// ValidationError covers missing identifiers, unparsable payloads and rejected fields.
// No database work happens once one of these is produced.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// NoChangeError means the statement ran cleanly but affected zero rows.
type NoChangeError struct{}

func (NoChangeError) Error() string { return "No changes made or record not found" }

// PrepareError is a statement the database refused to prepare.
type PrepareError struct {
	Op  string
	Err error
}

func (e PrepareError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("Prepare failed: %v", e.Err)
	}
	return fmt.Sprintf("Prepare failed (%s): %v", e.Op, e.Err)
}

func (e PrepareError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// InternalError wraps execution failures; Msg defaults to the driver text.
type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

// UnavailableError reports that the database could not be reached.
type UnavailableError struct {
	Err error
}

func (e UnavailableError) Error() string {
	return fmt.Sprintf("Database connection failed: %v", e.Err)
}

func (e UnavailableError) Unwrap() error { return e.Err }

// UnauthorizedError is a failed login or a missing/invalid bearer token.
type UnauthorizedError struct {
	Msg string
}

func (e UnauthorizedError) Error() string {
	if e.Msg == "" {
		return "unauthorized"
	}
	return e.Msg
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsNoChange(err error) bool {
	var target NoChangeError
	return errors.As(err, &target)
}

func IsPrepare(err error) bool {
	var target PrepareError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

func IsUnavailable(err error) bool {
	var target UnavailableError
	return errors.As(err, &target)
}

func IsUnauthorized(err error) bool {
	var target UnauthorizedError
	return errors.As(err, &target)
}
