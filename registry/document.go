// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed data/rules.schema.json
var embeddedSchemaFS embed.FS

const rulesSchemaFile = "data/rules.schema.json"

// Document is a YAML rule document.
type Document struct {
	Rules []RuleDocument `yaml:"rules"`
}

// RuleDocument declares one rule. Exactly one of Message and Messages is set.
type RuleDocument struct {
	URL      string              `yaml:"url"`
	Method   string              `yaml:"method"`
	Message  string              `yaml:"message,omitempty"`
	Messages *StructuredDocument `yaml:"messages,omitempty"`
}

// StructuredDocument is the YAML form of Structured.
type StructuredDocument struct {
	Default string        `yaml:"default"`
	Custom  []CustomEntry `yaml:"custom,omitempty"`
}

// Spec returns the MessageSpec the document declares.
func (d RuleDocument) Spec() MessageSpec {
	if d.Messages != nil {
		return Structured{Default: d.Messages.Default, Custom: d.Messages.Custom}
	}
	return Plain(d.Message)
}

// LoadFile reads a YAML rule document from path and registers its rules on b.
func LoadFile(b *Builder, path string) error {
	// #nosec G304 - the rules file path is chosen by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read rules file: %w", err)
	}
	return LoadYAML(b, data)
}

// LoadYAML validates a YAML rule document and registers its rules on b in
// document order. Validation happens before any rule is registered, but a
// rule rejected by the Builder stops loading after the rules before it.
func LoadYAML(b *Builder, data []byte) error {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse rules document: %w", err)
	}

	jsonData, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to convert rules document: %w", err)
	}
	if err := ValidateDocument(jsonData); err != nil {
		return err
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to decode rules document: %w", err)
	}

	for i, rd := range doc.Rules {
		if err := b.AddErrorHandling(rd.URL, rd.Method, rd.Spec()); err != nil {
			return fmt.Errorf("rule %d (%s %s): %w", i, rd.Method, rd.URL, err)
		}
	}
	return nil
}

// ValidateDocument validates JSON bytes against the rule document schema.
func ValidateDocument(data []byte) error {
	const errPrefix = "rules schema validation failed"

	schemaData, err := embeddedSchemaFS.ReadFile(rulesSchemaFile)
	if err != nil {
		return fmt.Errorf("failed to read embedded schema %s: %w", rulesSchemaFile, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", errPrefix, err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return formatNumberedErrors(errPrefix, msgs)
}

// formatNumberedErrors formats a list of messages as a single error with a numbered list.
func formatNumberedErrors(prefix string, msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}
	if len(msgs) == 1 {
		return fmt.Errorf("%s: %s", prefix, msgs[0])
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s with %d errors:\n", prefix, len(msgs))
	for i, msg := range msgs {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, msg)
	}
	return errors.New(strings.TrimSuffix(b.String(), "\n"))
}
