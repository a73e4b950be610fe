package projects

import (
	"errors"
	"fmt"
)

var (
	ErrInvalid  = errors.New("invalid project")
	ErrNotFound = errors.New("project not found")
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid project %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalid }

type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("project not found: %d", e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }
