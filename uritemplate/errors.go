// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package uritemplate

import (
	"errors"
	"fmt"
)

// ErrInvalidPattern is returned when a pattern cannot be compiled.
var ErrInvalidPattern = errors.New("invalid uri template")

// PatternError describes why a pattern failed to compile.
type PatternError struct {
	Pattern string
	Reason  string
}

// Error implements the error interface.
func (e *PatternError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrInvalidPattern, e.Pattern, e.Reason)
}

// Unwrap returns ErrInvalidPattern.
func (*PatternError) Unwrap() error {
	return ErrInvalidPattern
}
