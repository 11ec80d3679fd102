// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package state

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxNameLength bounds state names.
const MaxNameLength = 256

var validNameRegex = regexp.MustCompile(`^[A-Za-z0-9_$][A-Za-z0-9_$\-]*(\.[A-Za-z0-9_$][A-Za-z0-9_$\-]*)*$`)

// ValidateName validates a navigation state name.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("state name cannot be empty or consist only of whitespace")
	}

	if strings.Contains(name, "\x00") {
		return fmt.Errorf("state name cannot contain null bytes")
	}

	if len(name) > MaxNameLength {
		return fmt.Errorf("state name exceeds %d characters", MaxNameLength)
	}

	if strings.Contains(name, "..") || strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") {
		return fmt.Errorf("state name cannot contain empty segments: %q", name)
	}

	if !validNameRegex.MatchString(name) {
		return fmt.Errorf("state name can only contain dot-separated segments of letters, digits, underscores, dashes and dollar signs: %q", name)
	}

	return nil
}
