// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package condition

import (
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"
)

var (
	// ErrCompile is returned when a condition fails to parse or type check.
	ErrCompile = errors.New("condition compile failed")

	// ErrEvaluation is returned when evaluating a condition fails.
	ErrEvaluation = errors.New("condition evaluation failed")

	// ErrNotBool is returned when a condition does not produce a boolean.
	ErrNotBool = errors.New("condition did not evaluate to a bool")
)

// ErrKind identifies the compile phase that rejected a condition.
type ErrKind string

const (
	// ErrKindParse indicates a syntax error.
	ErrKindParse ErrKind = "parse"
	// ErrKindCheck indicates a type checking error.
	ErrKindCheck ErrKind = "check"
)

// Issue is one problem found in a condition.
type Issue struct {
	Line int    `json:"line,omitempty"`
	Col  int    `json:"col,omitempty"`
	Msg  string `json:"msg,omitempty"`
}

// CompileError reports every issue CEL found in a condition.
type CompileError struct {
	Kind   ErrKind `json:"kind"`
	Source string  `json:"source"`
	Issues []Issue `json:"issues,omitempty"`
	cause  error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("condition %s error in %q: %s", e.Kind, e.Source, e.cause)
}

// Unwrap returns the underlying error, which wraps ErrCompile.
func (e *CompileError) Unwrap() error {
	return e.cause
}

func newCompileError(kind ErrKind, source string, issues *cel.Issues) error {
	list := make([]Issue, 0, len(issues.Errors()))
	for _, err := range issues.Errors() {
		list = append(list, Issue{
			Line: err.Location.Line(),
			Col:  err.Location.Column(),
			Msg:  err.Message,
		})
	}
	return &CompileError{
		Kind:   kind,
		Source: source,
		Issues: list,
		cause:  fmt.Errorf("%w: %w", ErrCompile, issues.Err()),
	}
}
