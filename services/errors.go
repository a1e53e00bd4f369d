package services

import (
	"errors"
	"fmt"
)

// Every error a service returns wraps exactly one of these.
var (
	ErrConflict    = errors.New("already exists")
	ErrAuth        = errors.New("invalid username or password")
	ErrValidation  = errors.New("invalid input")
	ErrPersistence = errors.New("storage failure")
	ErrNotFound    = errors.New("not found")
)

func validationErr(err error) error {
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

func persistenceErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrPersistence, op, err)
}
