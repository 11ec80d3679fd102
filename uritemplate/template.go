// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package uritemplate

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Params holds the values captured by a successful match, keyed by
// placeholder or query parameter name.
type Params map[string]string

// Template is a compiled URL pattern.
type Template struct {
	pattern string
	origin  string
	path    string
	query   []string
	mux     *chi.Mux
}

// IsTemplate reports whether pattern needs compiling, that is whether it has
// a placeholder or a query discriminator. Anything else is a literal URL.
func IsTemplate(pattern string) bool {
	return strings.ContainsAny(pattern, "{?")
}

// Compile parses pattern into a Template.
func Compile(pattern string) (*Template, error) {
	if pattern == "" {
		return nil, &PatternError{Pattern: pattern, Reason: "pattern is empty"}
	}

	base, rawQuery, hasQuery := cutQuery(pattern)
	origin, path := splitOrigin(base)
	if strings.ContainsAny(origin, "{}") {
		return nil, &PatternError{Pattern: pattern, Reason: "placeholders are only supported in the path"}
	}

	var query []string
	if hasQuery {
		for _, name := range strings.Split(rawQuery, "&") {
			name = strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(name), "{"), "}")
			if name == "" {
				continue
			}
			query = append(query, name)
		}
		if len(query) == 0 {
			return nil, &PatternError{Pattern: pattern, Reason: "query discriminator names no parameters"}
		}
	}

	mux := chi.NewRouter()
	if err := route(mux, path); err != nil {
		return nil, &PatternError{Pattern: pattern, Reason: err.Error()}
	}

	return &Template{
		pattern: pattern,
		origin:  origin,
		path:    path,
		query:   query,
		mux:     mux,
	}, nil
}

// route registers path on mux. chi reports malformed routes by panicking.
func route(mux *chi.Mux, path string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	mux.Handle(path, http.NotFoundHandler())
	return nil
}

// Pattern returns the source pattern.
func (t *Template) Pattern() string {
	return t.pattern
}

// QueryParams returns the names of the required query parameters in
// declaration order.
func (t *Template) QueryParams() []string {
	return append([]string(nil), t.query...)
}

// Match tests rawURL and params against the template. Patterns without an
// origin match the path of absolute URLs too. On success it returns
// the captured placeholder values together with the discriminating query
// parameters.
func (t *Template) Match(rawURL string, params map[string]any) (Params, bool) {
	base, rawQuery, _ := cutQuery(rawURL)
	origin, path := splitOrigin(base)
	// a pattern without scheme and host matches any origin
	if t.origin != "" && origin != t.origin {
		return nil, false
	}

	rctx := chi.NewRouteContext()
	if !t.mux.Match(rctx, http.MethodGet, path) {
		return nil, false
	}

	out := make(Params, len(rctx.URLParams.Keys)+len(t.query))
	for i, key := range rctx.URLParams.Keys {
		out[key] = rctx.URLParams.Values[i]
	}

	if len(t.query) == 0 {
		return out, true
	}

	values := mergeQuery(rawQuery, params)
	for _, name := range t.query {
		v, ok := values[name]
		if !ok || v == nil {
			return nil, false
		}
		out[name] = fmt.Sprint(v)
	}
	return out, true
}

// mergeQuery combines the query string of the URL with explicit params.
// The first value of a repeated query key is used.
func mergeQuery(rawQuery string, params map[string]any) map[string]any {
	values := make(map[string]any, len(params))
	if rawQuery != "" {
		// ParseQuery keeps every pair it could decode, so a partial
		// result is still usable
		parsed, _ := url.ParseQuery(rawQuery)
		for k, vs := range parsed {
			if len(vs) > 0 {
				values[k] = vs[0]
			}
		}
	}
	for k, v := range params {
		values[k] = v
	}
	return values
}

// cutQuery splits s at the first '?' that is not inside a placeholder.
func cutQuery(s string) (base, query string, found bool) {
	depth := 0
	for i, r := range s {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
		case '?':
			if depth == 0 {
				return s[:i], s[i+1:], true
			}
		}
	}
	return s, "", false
}

// splitOrigin separates "scheme://host" from the path. Relative URLs have
// an empty origin and are anchored at "/".
func splitOrigin(s string) (origin, path string) {
	if i := strings.Index(s, "://"); i >= 0 {
		rest := s[i+len("://"):]
		j := strings.IndexByte(rest, '/')
		if j < 0 {
			return strings.ToLower(s), "/"
		}
		return strings.ToLower(s[:i+len("://")+j]), rest[j:]
	}
	if !strings.HasPrefix(s, "/") {
		s = "/" + s
	}
	return "", s
}
