// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package httperr provides error types with HTTP status codes for handler error handling.
package httperr

import (
	"errors"
	"log/slog"
	"net/http"
)

// CodedError wraps an error with an HTTP status code.
type CodedError struct {
	err  error
	code int
}

// Error implements the error interface.
func (e *CodedError) Error() string {
	return e.err.Error()
}

// Unwrap returns the underlying error for errors.Is() and errors.As() compatibility.
func (e *CodedError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code associated with this error.
func (e *CodedError) HTTPCode() int {
	return e.code
}

// WithCode wraps an error with an HTTP status code.
// If err is nil, WithCode returns nil.
func WithCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &CodedError{err: err, code: code}
}

// Code extracts the HTTP status code from an error.
// If no CodedError is found in the chain, it returns http.StatusInternalServerError.
func Code(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.code
	}

	return http.StatusInternalServerError
}

// New creates a new error with the given message and HTTP status code.
func New(message string, code int) error {
	return &CodedError{err: errors.New(message), code: code}
}

// Write sends err to the client with the status code from Code.
// Client errors (4xx) expose the error message and are logged at debug level.
// Server errors hide the message behind the status text and are logged at error level.
func Write(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	code := Code(err)
	if code >= http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "status", code, "error", err)
		http.Error(w, http.StatusText(code), code)
		return
	}

	logger.DebugContext(r.Context(), "request rejected", "method", r.Method, "path", r.URL.Path, "status", code, "error", err)
	http.Error(w, err.Error(), code)
}
