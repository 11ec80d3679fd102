// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package httperr provides error types for failed HTTP responses.
package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

// CodedError wraps an error with the HTTP status of a failed response and,
// when the server reported one, the application error code from its body.
type CodedError struct {
	err     error
	status  int
	apiCode *int
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
	return e.status
}

// APICode returns the application error code and whether the server sent one.
func (e *CodedError) APICode() (int, bool) {
	if e.apiCode == nil {
		return 0, false
	}
	return *e.apiCode, true
}

// WithCode wraps an error with an HTTP status code.
// If err is nil, WithCode returns nil.
func WithCode(err error, status int) error {
	if err == nil {
		return nil
	}
	return &CodedError{err: err, status: status}
}

// WithAPICode wraps an error with an HTTP status and an application error code.
// If err is nil, WithAPICode returns nil.
func WithAPICode(err error, status, apiCode int) error {
	if err == nil {
		return nil
	}
	return &CodedError{err: err, status: status, apiCode: &apiCode}
}

// Code extracts the HTTP status code from an error.
// It returns http.StatusOK for nil and http.StatusInternalServerError when
// the chain holds no CodedError.
func Code(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.status
	}

	return http.StatusInternalServerError
}

// APICode extracts the application error code from an error chain.
func APICode(err error) (int, bool) {
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.APICode()
	}
	return 0, false
}

// New creates a new error with the given message and HTTP status code.
func New(message string, status int) error {
	return &CodedError{err: errors.New(message), status: status}
}

// Failed builds the error returned for a failed response. The message falls
// back to the status text when the server did not send one.
func Failed(method, url string, status int, apiCode *int, message string) error {
	if message == "" {
		message = http.StatusText(status)
	}
	err := fmt.Errorf("%s %s: %d %s", method, url, status, message)
	if apiCode != nil {
		return WithAPICode(err, status, *apiCode)
	}
	return WithCode(err, status)
}
