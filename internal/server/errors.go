// Package server provides the HTTP REST API for the matching service.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/recruit-matcher/internal/db"
	"github.com/jonathan/recruit-matcher/internal/matching"
)

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ErrDependency indicates an upstream extraction or embedding failure.
type ErrDependency struct {
	Operation string
	Cause     error
}

func (e *ErrDependency) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Operation, e.Cause)
}

func (e *ErrDependency) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	var weightErr *matching.WeightError
	var dependencyErr *ErrDependency

	switch {
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &validationErr), errors.As(err, &weightErr):
		return http.StatusBadRequest
	case errors.As(err, &dependencyErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
