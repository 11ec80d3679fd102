// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package uritemplate compiles URL patterns with named placeholders and query
parameter discriminators, and matches request URLs against them.

# Pattern Syntax

	http://dummy.de/list/{vid}           path placeholder
	/items/{id:[0-9]+}                   placeholder with a regexp
	http://dummy.de/list?limit&offset    required query parameters
	/users/{id}/posts?page               both

Scheme and host are compared literally (case-insensitive). The path is
matched with the chi routing tree, so any pattern chi accepts works here,
including a trailing * wildcard. Every name in the query discriminator must
be present in the request parameters with a non-nil value.

# Basic Usage

	tmpl, err := uritemplate.Compile("http://dummy.de/list/{vid}")
	if err != nil {
		// invalid pattern
	}

	params, ok := tmpl.Match("http://dummy.de/list/42", nil)
	// ok == true, params["vid"] == "42"

Query values embedded in the URL are merged with the explicit parameter map,
and explicit parameters win:

	tmpl, _ := uritemplate.Compile("/list?limit&offset")
	_, ok := tmpl.Match("/list?limit=10", map[string]any{"offset": "20"})
	// ok == true

# Concurrency

A compiled Template is safe for concurrent use.
*/
package uritemplate
