// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package http provides validation functions for the HTTP methods and URL
patterns that error rules are registered under.

# Method Validation

Methods must be RFC 7230 tokens. They are compared case-sensitively by the
rule registry, so "GET" and "get" are different methods:

	if err := http.ValidateMethod("GET"); err != nil {
		// Handle invalid method
	}

# URL Pattern Validation

Patterns are either literal URLs or URI templates with {name} placeholders
and an optional ?param1&param2 query discriminator:

	if err := http.ValidateURLPattern("https://api.example.com/items/{id}"); err != nil {
		// Handle invalid pattern
	}

Patterns must not contain whitespace, control characters or fragments, and
placeholder braces must be balanced.
*/
package http
