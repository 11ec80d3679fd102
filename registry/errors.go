// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"errors"
	"fmt"
)

// CapabilityURITemplates names the capability needed to register template patterns.
const CapabilityURITemplates = "uri template matcher"

var (
	// ErrMissingDependency is returned when a pattern needs a capability the
	// Builder was not configured with.
	ErrMissingDependency = errors.New("missing dependency")

	// ErrDuplicateRule is returned when a pattern and method pair is registered twice.
	ErrDuplicateRule = errors.New("duplicate error rule")

	// ErrInvalidRule is returned when a rule fails validation.
	ErrInvalidRule = errors.New("invalid error rule")

	// ErrBuilderSealed is returned when registering after Build.
	ErrBuilderSealed = errors.New("registry already built")
)

// MissingDependencyError reports the capability a registration needed.
type MissingDependencyError struct {
	Capability string
	Pattern    string
}

// Error implements the error interface.
func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("%s: no %s was configured, it is required to register %q",
		ErrMissingDependency, e.Capability, e.Pattern)
}

// Unwrap returns ErrMissingDependency.
func (*MissingDependencyError) Unwrap() error {
	return ErrMissingDependency
}
