// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"github.com/stacklok/toolhive-alerts/condition"
	"github.com/stacklok/toolhive-alerts/logger"
	"github.com/stacklok/toolhive-alerts/uritemplate"
)

// Failure is the failed response a rule message is selected for.
type Failure = condition.Failure

// Matcher tests a request URL and parameters against a compiled template.
type Matcher interface {
	Match(url string, params map[string]any) (uritemplate.Params, bool)
}

// Rule is a registered error rule.
type Rule struct {
	Pattern  string
	Method   string
	Messages MessageSpec

	matcher Matcher
	// conditions is index-aligned with Structured.Custom; nil entries have no When.
	conditions []*condition.Condition
}

// IsTemplate reports whether the rule was registered with a template pattern.
func (r *Rule) IsTemplate() bool {
	return r.matcher != nil
}

// Message returns the message to show for f.
//
// Plain rules always return their message. Structured rules return the
// first custom entry whose status and code equal the failure's (and whose
// condition holds), or Default. A failure without an error code never
// selects a custom entry.
func (r *Rule) Message(f Failure) string {
	switch spec := r.Messages.(type) {
	case Plain:
		return string(spec)
	case Structured:
		if !f.HasCode {
			return spec.Default
		}
		for i, entry := range spec.Custom {
			if entry.Status != f.Status || entry.Code != f.Code {
				continue
			}
			if cond := r.conditions[i]; cond != nil {
				ok, err := cond.Matches(f)
				if err != nil {
					logger.Debugw("custom message condition failed",
						"pattern", r.Pattern, "method", r.Method, "when", cond.Source(), "error", err)
					continue
				}
				if !ok {
					continue
				}
			}
			return entry.Message
		}
		return spec.Default
	}
	return ""
}
