// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package registry holds the table of error rules that decide which message is
shown when a request fails.

A rule associates a URL pattern and an HTTP method with a MessageSpec. The
table is built in two phases: a Builder collects rules while the application
starts, and Build freezes them into an immutable Registry that is read for
every failed response.

# Registering Rules

	b := registry.NewBuilder(registry.WithURITemplates())

	_ = b.AddErrorHandling("dummyUri", "GET", registry.Plain("error"))
	_ = b.AddErrorHandling("http://dummy.de/list/{vid}", "GET", registry.Plain("error getting item"))
	_ = b.AddErrorHandling("http://dummy.de/list?search_term", "GET", registry.Plain("error search-param"))
	_ = b.AddErrorHandling("http://dummy.de/list?limit&offset", "GET", registry.Plain("error paging-param"))
	_ = b.AddErrorHandling("dummyFilterUri", "GET", registry.Structured{
		Default: "error default",
		Custom: []registry.CustomEntry{
			{Status: 400, Code: 100, Message: "my custom error message"},
		},
	})

	reg := b.Build()

Literal patterns are stored in a map keyed by method and URL. Patterns with
{name} placeholders or a ?param1&param2 query discriminator are compiled to
templates and kept in registration order; the first one that matches wins,
so more specific query discriminators must be registered first.

Template patterns need a template compiler. A Builder created without one
accepts literal patterns only and rejects templates with a
*MissingDependencyError.

Registering the same pattern and method twice is rejected with
ErrDuplicateRule.

# Resolving

	rule, ok := reg.Resolve("http://dummy.de/list", "GET", map[string]any{
		"offset": "3", "limit": "4", "search_term": nil,
	})
	// ok == true, rule.Pattern == "http://dummy.de/list?limit&offset"

A nil parameter value is treated as absent.

Rules registered without scheme and host also apply to absolute request
URLs, which is what an http.Client always sends. An absolute URL that has
no literal rule of its own is looked up again by its path, first as is and
then without the leading slash, so "/api/list" and "api/list" both match
"http://host/api/list". Templates without an origin match the path of any
origin:

	_ = b.AddErrorHandling("/api/items/{id}", "GET", registry.Plain("error getting item"))

	rule, ok := reg.Resolve("http://localhost:8080/api/items/7", "GET", nil)
	// ok == true

# Rule Documents

Rules can be declared in YAML and loaded with LoadYAML or LoadFile. Documents
are checked against an embedded JSON schema before any rule is registered:

	rules:
	  - url: dummyUri
	    method: GET
	    message: error
	  - url: dummyFilterUri
	    method: GET
	    messages:
	      default: error default
	      custom:
	        - status: 400
	          code: 100
	          message: my custom error message
	          when: 'url.startsWith("dummy")'

# Concurrency

The Builder is safe for concurrent registration. A built Registry is
immutable and safe for concurrent Resolve calls.
*/
package registry
