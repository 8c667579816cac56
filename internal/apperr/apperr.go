// Package apperr defines the closed error taxonomy used at the HTTP
// and WebSocket boundary. Every error that can reach a handler is one
// of these kinds; there is no open-ended hierarchy to extend.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the semantic error category, independent of transport.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindPrecondition Kind = "precondition"
	KindConflict     Kind = "conflict"
	KindTransient    Kind = "transient"
	KindFatal        Kind = "fatal"
)

// AppError is the single error type that crosses the handler
// boundary. Code is the short machine-readable reason (e.g. "full",
// "duplicate_name", "not_started") named in spec.md's error tables.
type AppError struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// HTTPStatus maps a Kind to the response class spec.md §7 requires.
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindPrecondition:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindTransient:
		return http.StatusServiceUnavailable
	case KindFatal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, code, message string) *AppError {
	return &AppError{Kind: kind, Code: code, Message: message}
}

func Wrap(kind Kind, code, message string, err error) *AppError {
	return &AppError{Kind: kind, Code: code, Message: message, Err: err}
}

// As reports whether err is an *AppError, unwrapping through the
// standard error chain.
func As(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// Common constructors for the error codes spec.md's handler table names.

func NotFound(resource, id string) *AppError {
	return New(KindNotFound, "not_found", fmt.Sprintf("%s %s not found", resource, id))
}

func Validation(code, message string) *AppError {
	return New(KindValidation, code, message)
}

func Precondition(code, message string) *AppError {
	return New(KindPrecondition, code, message)
}

func Conflict(message string) *AppError {
	return New(KindConflict, "conflict", message)
}

func Transient(message string, err error) *AppError {
	return Wrap(KindTransient, "transient", message, err)
}

func Fatal(message string, err error) *AppError {
	return Wrap(KindFatal, "fatal", message, err)
}
