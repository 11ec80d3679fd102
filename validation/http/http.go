// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package http provides validation functions for HTTP methods and URL patterns.
package http

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/net/http/httpguts"
)

// maxPatternLength bounds registered URL patterns.
const maxPatternLength = 2048

// ValidateMethod validates that a string is a valid HTTP method token per RFC 7230.
// Methods are matched case-sensitively, so no normalization is applied.
func ValidateMethod(method string) error {
	if method == "" {
		return fmt.Errorf("method cannot be empty")
	}

	if len(method) > 64 {
		return fmt.Errorf("method exceeds maximum length of 64 bytes")
	}

	// A method is a token, which is the same grammar as a header field name
	if !httpguts.ValidHeaderFieldName(method) {
		return fmt.Errorf("invalid HTTP method %q: contains invalid characters", method)
	}

	return nil
}

// ValidateURLPattern validates a literal URL or URI template used as a rule key.
//
// A valid pattern:
//   - Is not empty and not longer than 2048 bytes
//   - Contains no whitespace or control characters
//   - Contains no fragment (#)
//   - Has balanced placeholder braces
func ValidateURLPattern(pattern string) error {
	if pattern == "" {
		return fmt.Errorf("url pattern cannot be empty")
	}

	if len(pattern) > maxPatternLength {
		return fmt.Errorf("url pattern exceeds maximum length of %d bytes", maxPatternLength)
	}

	if strings.ContainsFunc(pattern, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	}) {
		return fmt.Errorf("url pattern must not contain whitespace or control characters: %q", pattern)
	}

	if strings.Contains(pattern, "#") {
		return fmt.Errorf("url pattern must not contain fragments (#): %s", pattern)
	}

	depth := 0
	for _, r := range pattern {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return fmt.Errorf("url pattern has unbalanced braces: %s", pattern)
			}
		}
	}
	if depth != 0 {
		return fmt.Errorf("url pattern has unbalanced braces: %s", pattern)
	}

	return nil
}
