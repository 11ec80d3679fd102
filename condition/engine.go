// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package condition

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
)

const (
	// DefaultMaxExpressionLength is the maximum allowed length of a condition.
	DefaultMaxExpressionLength = 4096

	// DefaultCostLimit bounds the runtime cost of evaluating a condition.
	DefaultCostLimit = 100000
)

// Failure is the view of a failed response that conditions evaluate against.
type Failure struct {
	Status  int
	Code    int
	HasCode bool
	Message string
	URL     string
	Method  string
}

func (f Failure) activation() map[string]any {
	return map[string]any{
		"status":   int64(f.Status),
		"code":     int64(f.Code),
		"has_code": f.HasCode,
		"message":  f.Message,
		"url":      f.URL,
		"method":   f.Method,
	}
}

// Engine compiles conditions against the failure variables.
type Engine struct {
	once                sync.Once
	env                 *cel.Env
	envErr              error
	maxExpressionLength int
	costLimit           uint64
}

// Condition is a compiled condition.
type Condition struct {
	source  string
	program cel.Program
}

// NewEngine returns an Engine with the default limits.
func NewEngine() *Engine {
	return &Engine{
		maxExpressionLength: DefaultMaxExpressionLength,
		costLimit:           DefaultCostLimit,
	}
}

// WithCostLimit sets the runtime cost limit for conditions compiled afterwards.
func (e *Engine) WithCostLimit(limit uint64) *Engine {
	e.costLimit = limit
	return e
}

// getEnv creates the CEL environment on first use.
func (e *Engine) getEnv() (*cel.Env, error) {
	e.once.Do(func() {
		e.env, e.envErr = cel.NewEnv(
			cel.Variable("status", cel.IntType),
			cel.Variable("code", cel.IntType),
			cel.Variable("has_code", cel.BoolType),
			cel.Variable("message", cel.StringType),
			cel.Variable("url", cel.StringType),
			cel.Variable("method", cel.StringType),
		)
	})
	return e.env, e.envErr
}

// Compile parses and type checks expr. The expression must produce a bool.
func (e *Engine) Compile(expr string) (*Condition, error) {
	if len(expr) > e.maxExpressionLength {
		return nil, fmt.Errorf("%w: expression length %d exceeds maximum of %d",
			ErrCompile, len(expr), e.maxExpressionLength)
	}

	env, err := e.getEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	parsed, issues := env.Parse(expr)
	if issues.Err() != nil {
		return nil, newCompileError(ErrKindParse, expr, issues)
	}

	checked, issues := env.Check(parsed)
	if issues.Err() != nil {
		return nil, newCompileError(ErrKindCheck, expr, issues)
	}

	if !checked.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("%w: %q has type %s", ErrNotBool, expr, checked.OutputType())
	}

	program, err := env.Program(checked, cel.CostLimit(e.costLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL program for %q: %w", expr, err)
	}

	return &Condition{source: expr, program: program}, nil
}

// Source returns the expression the condition was compiled from.
func (c *Condition) Source() string {
	return c.source
}

// Matches evaluates the condition against f.
func (c *Condition) Matches(f Failure) (bool, error) {
	out, _, err := c.program.Eval(f.activation())
	if err != nil {
		return false, fmt.Errorf("%w: %s", ErrEvaluation, err)
	}

	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w: got %T", ErrNotBool, out.Value())
	}
	return result, nil
}
