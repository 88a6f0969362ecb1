package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Kind ResourceKind
	ID   string
}

func (e NotFoundError) Error() string {
	if e.Kind == "" {
		return "record not found"
	}
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Kind.Label())
	}
	return fmt.Sprintf("%s %q not found", e.Kind.Label(), e.ID)
}

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	switch {
	case e.Field != "" && e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Field != "":
		return fmt.Sprintf("invalid %s", e.Field)
	default:
		return "validation error"
	}
}

func (e ValidationError) Unwrap() error { return e.Err }

// ConflictError is returned when a record id already exists in its collection.
type ConflictError struct {
	Kind ResourceKind
	ID   string
	Err  error
}

func (e ConflictError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s conflict", e.Kind.Label())
	}
	return fmt.Sprintf("%s %q already exists", e.Kind.Label(), e.ID)
}

func (e ConflictError) Unwrap() error { return e.Err }

// InternalError wraps backend failures with a short operation label.
type InternalError struct {
	Op  string
	Err error
}

func (e InternalError) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case e.Op != "":
		return e.Op
	default:
		return "internal error"
	}
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
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
