// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	neturl "net/url"
	"strings"
)

// Registry is an immutable table of error rules.
type Registry struct {
	literals map[ruleKey]*Rule
	// templates holds template rules per method in registration order.
	templates map[string][]*Rule
	size      int
}

// Resolve returns the rule for a request to url with method, or false when
// no rule applies. Literal rules are tried first, then template rules in
// registration order. An absolute url that misses the literal table is
// looked up again by its path, with and without the leading slash.
func (r *Registry) Resolve(url, method string, params map[string]any) (*Rule, bool) {
	if r == nil {
		return nil, false
	}

	if rule, ok := r.literals[ruleKey{method: method, pattern: url}]; ok {
		return rule, true
	}
	if path, ok := absolutePath(url); ok {
		for _, key := range []string{path, strings.TrimPrefix(path, "/")} {
			if rule, ok := r.literals[ruleKey{method: method, pattern: key}]; ok {
				return rule, true
			}
		}
	}

	for _, rule := range r.templates[method] {
		if _, ok := rule.matcher.Match(url, params); ok {
			return rule, true
		}
	}
	return nil, false
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return r.size
}

// absolutePath returns the path of an absolute URL.
func absolutePath(raw string) (string, bool) {
	u, err := neturl.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return "", false
	}
	if u.Path == "" {
		return "/", true
	}
	return u.Path, true
}
