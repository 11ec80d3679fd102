// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/stacklok/toolhive-alerts/condition"
	"github.com/stacklok/toolhive-alerts/logger"
	"github.com/stacklok/toolhive-alerts/uritemplate"
	httpval "github.com/stacklok/toolhive-alerts/validation/http"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// CompileFunc compiles a template pattern into a Matcher.
type CompileFunc func(pattern string) (Matcher, error)

// Option configures a Builder.
type Option func(*Builder)

// WithTemplateCompiler enables template patterns using compile.
func WithTemplateCompiler(compile CompileFunc) Option {
	return func(b *Builder) {
		b.compile = compile
	}
}

// WithURITemplates enables template patterns using the uritemplate package.
func WithURITemplates() Option {
	return WithTemplateCompiler(func(pattern string) (Matcher, error) {
		return uritemplate.Compile(pattern)
	})
}

// WithConditionEngine sets the engine that compiles custom entry conditions.
func WithConditionEngine(engine *condition.Engine) Option {
	return func(b *Builder) {
		b.conditions = engine
	}
}

type ruleKey struct {
	method  string
	pattern string
}

// Builder collects error rules until Build is called.
type Builder struct {
	mu         sync.Mutex
	compile    CompileFunc
	conditions *condition.Engine
	literals   map[ruleKey]*Rule
	templates  []*Rule
	sealed     bool
}

// NewBuilder creates an empty Builder. Without WithURITemplates or
// WithTemplateCompiler only literal patterns can be registered.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		literals: make(map[ruleKey]*Rule),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.conditions == nil {
		b.conditions = condition.NewEngine()
	}
	return b
}

// AddErrorHandling registers spec for failed requests to urlPattern with method.
func (b *Builder) AddErrorHandling(urlPattern, method string, spec MessageSpec) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.sealed {
		return ErrBuilderSealed
	}

	rule, err := b.newRule(urlPattern, method, spec)
	if err != nil {
		return err
	}

	key := ruleKey{method: method, pattern: urlPattern}
	if b.exists(key) {
		return fmt.Errorf("%w: %s %s", ErrDuplicateRule, method, urlPattern)
	}

	if rule.IsTemplate() {
		b.templates = append(b.templates, rule)
	} else {
		b.literals[key] = rule
	}

	logger.Debugw("registered error rule", "pattern", urlPattern, "method", method, "template", rule.IsTemplate())
	return nil
}

func (b *Builder) exists(key ruleKey) bool {
	if _, ok := b.literals[key]; ok {
		return true
	}
	for _, r := range b.templates {
		if r.Method == key.method && r.Pattern == key.pattern {
			return true
		}
	}
	return false
}

// newRule validates its arguments and compiles the pattern and conditions.
func (b *Builder) newRule(urlPattern, method string, spec MessageSpec) (*Rule, error) {
	if err := httpval.ValidateURLPattern(urlPattern); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRule, err)
	}
	if err := httpval.ValidateMethod(method); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRule, err)
	}

	rule := &Rule{Pattern: urlPattern, Method: method}

	switch s := spec.(type) {
	case Plain:
		if s == "" {
			return nil, fmt.Errorf("%w: message cannot be empty", ErrInvalidRule)
		}
		rule.Messages = s
	case Structured:
		if err := getValidator().Struct(s); err != nil {
			return nil, fmt.Errorf("%w: %s %s: %w", ErrInvalidRule, method, urlPattern, err)
		}
		// copy so later changes to the caller's slice cannot reach the rule
		s.Custom = append([]CustomEntry(nil), s.Custom...)
		rule.Messages = s
		rule.conditions = make([]*condition.Condition, len(s.Custom))
		for i, entry := range s.Custom {
			if entry.When == "" {
				continue
			}
			cond, err := b.conditions.Compile(entry.When)
			if err != nil {
				return nil, fmt.Errorf("%w: custom entry %d of %s %s: %w", ErrInvalidRule, i, method, urlPattern, err)
			}
			rule.conditions[i] = cond
		}
	default:
		return nil, fmt.Errorf("%w: unsupported message spec %T", ErrInvalidRule, spec)
	}

	if !uritemplate.IsTemplate(urlPattern) {
		return rule, nil
	}

	if b.compile == nil {
		return nil, &MissingDependencyError{Capability: CapabilityURITemplates, Pattern: urlPattern}
	}
	matcher, err := b.compile(urlPattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRule, err)
	}
	rule.matcher = matcher
	return rule, nil
}

// Build freezes the registered rules into a Registry. The Builder rejects
// further registrations afterwards.
func (b *Builder) Build() *Registry {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.sealed = true

	reg := &Registry{
		literals:  make(map[ruleKey]*Rule, len(b.literals)),
		templates: make(map[string][]*Rule),
	}
	for k, r := range b.literals {
		reg.literals[k] = r
	}
	for _, r := range b.templates {
		reg.templates[r.Method] = append(reg.templates[r.Method], r)
	}
	reg.size = len(b.literals) + len(b.templates)
	return reg
}
