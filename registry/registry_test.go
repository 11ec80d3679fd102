// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDummyRegistry(t *testing.T) *Registry {
	t.Helper()

	b := NewBuilder(WithURITemplates())
	require.NoError(t, b.AddErrorHandling("dummyUri", "GET", Plain("error")))
	require.NoError(t, b.AddErrorHandling("dummyFilterUri", "GET", Structured{
		Default: "error default",
		Custom:  []CustomEntry{{Status: 400, Code: 100, Message: "my custom error message"}},
	}))
	require.NoError(t, b.AddErrorHandling("http://dummy.de/list/{vid}", "GET", Plain("error getting item")))
	require.NoError(t, b.AddErrorHandling("http://dummy.de/list?search_term", "GET", Plain("error search-param")))
	require.NoError(t, b.AddErrorHandling("http://dummy.de/list?limit&offset", "GET", Plain("error paging-param")))
	require.NoError(t, b.AddErrorHandling("http://dummy.de/list", "DELETE", Plain("error delete")))
	return b.Build()
}

func TestRegistry_Resolve(t *testing.T) {
	t.Parallel()

	reg := newDummyRegistry(t)
	require.Equal(t, 6, reg.Len())

	tests := []struct {
		name        string
		url         string
		method      string
		params      map[string]any
		wantFound   bool
		wantPattern string
	}{
		{
			name: "literal", url: "dummyUri", method: "GET",
			wantFound: true, wantPattern: "dummyUri",
		},
		{
			name: "literal with another method", url: "dummyUri", method: "POST",
		},
		{
			name: "method is case-sensitive", url: "dummyUri", method: "get",
		},
		{
			name: "unknown url", url: "wrong", method: "GET",
		},
		{
			name: "literal delete rule", url: "http://dummy.de/list", method: "DELETE",
			wantFound: true, wantPattern: "http://dummy.de/list",
		},
		{
			name: "path template", url: "http://dummy.de/list/42", method: "GET",
			wantFound: true, wantPattern: "http://dummy.de/list/{vid}",
		},
		{
			name: "paging params", url: "http://dummy.de/list", method: "GET",
			params:    map[string]any{"offset": "3", "limit": "4", "search_term": nil},
			wantFound: true, wantPattern: "http://dummy.de/list?limit&offset",
		},
		{
			name: "search wins when both match because it was registered first",
			url:  "http://dummy.de/list", method: "GET",
			params:    map[string]any{"offset": "5", "limit": "6", "search_term": "blaa"},
			wantFound: true, wantPattern: "http://dummy.de/list?search_term",
		},
		{
			name: "search only", url: "http://dummy.de/list", method: "GET",
			params:    map[string]any{"search_term": "blaa"},
			wantFound: true, wantPattern: "http://dummy.de/list?search_term",
		},
		{
			name: "no discriminating params", url: "http://dummy.de/list", method: "GET",
			params: map[string]any{"limit": "4"},
		},
		{
			name: "params from url query", url: "http://dummy.de/list?limit=1&offset=2", method: "GET",
			wantFound: true, wantPattern: "http://dummy.de/list?limit&offset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rule, ok := reg.Resolve(tt.url, tt.method, tt.params)
			require.Equal(t, tt.wantFound, ok)
			if !tt.wantFound {
				assert.Nil(t, rule)
				return
			}
			assert.Equal(t, tt.wantPattern, rule.Pattern)
			assert.Equal(t, tt.method, rule.Method)
		})
	}
}

func TestRegistry_LiteralRulesAreExact(t *testing.T) {
	t.Parallel()

	pairs := []struct{ url, method, msg string }{
		{"a", "GET", "a-get"},
		{"a", "POST", "a-post"},
		{"b", "GET", "b-get"},
		{"http://x.de/a", "PUT", "x-put"},
	}

	b := NewBuilder()
	for _, p := range pairs {
		require.NoError(t, b.AddErrorHandling(p.url, p.method, Plain(p.msg)))
	}
	reg := b.Build()

	for _, p := range pairs {
		rule, ok := reg.Resolve(p.url, p.method, nil)
		require.True(t, ok)
		assert.Equal(t, Plain(p.msg), rule.Messages)
		assert.False(t, rule.IsTemplate())
	}
}

func TestRegistry_ResolvePathOnlyRules(t *testing.T) {
	t.Parallel()

	b := NewBuilder(WithURITemplates())
	require.NoError(t, b.AddErrorHandling("/api/list", "GET", Plain("error listing")))
	require.NoError(t, b.AddErrorHandling("dummyUri", "GET", Plain("error")))
	require.NoError(t, b.AddErrorHandling("/api/items/{id}", "GET", Plain("error getting item")))
	require.NoError(t, b.AddErrorHandling("http://other.de/api/list", "GET", Plain("error listing other")))
	reg := b.Build()

	tests := []struct {
		name        string
		url         string
		method      string
		wantFound   bool
		wantPattern string
	}{
		{
			name: "absolute url matches path literal", url: "http://127.0.0.1:8080/api/list", method: "GET",
			wantFound: true, wantPattern: "/api/list",
		},
		{
			name: "query is ignored for the path lookup", url: "http://127.0.0.1:8080/api/list?limit=5", method: "GET",
			wantFound: true, wantPattern: "/api/list",
		},
		{
			name: "absolute url matches relative literal", url: "http://dummy.de/dummyUri", method: "GET",
			wantFound: true, wantPattern: "dummyUri",
		},
		{
			name: "exact absolute literal wins", url: "http://other.de/api/list", method: "GET",
			wantFound: true, wantPattern: "http://other.de/api/list",
		},
		{
			name: "absolute url matches path template", url: "http://127.0.0.1:8080/api/items/1", method: "GET",
			wantFound: true, wantPattern: "/api/items/{id}",
		},
		{
			name: "method still has to match", url: "http://127.0.0.1:8080/api/list", method: "DELETE",
		},
		{
			name: "different path", url: "http://127.0.0.1:8080/api/other", method: "GET",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rule, ok := reg.Resolve(tt.url, tt.method, nil)
			require.Equal(t, tt.wantFound, ok)
			if tt.wantFound {
				assert.Equal(t, tt.wantPattern, rule.Pattern)
			}
		})
	}
}

func TestRegistry_NilAndEmpty(t *testing.T) {
	t.Parallel()

	var nilReg *Registry
	_, ok := nilReg.Resolve("dummyUri", "GET", nil)
	assert.False(t, ok)
	assert.Equal(t, 0, nilReg.Len())

	empty := NewBuilder().Build()
	_, ok = empty.Resolve("dummyUri", "GET", nil)
	assert.False(t, ok)
}
