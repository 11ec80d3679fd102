// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package registry

// MessageSpec describes the message shown for a rule. It is either Plain or
// Structured.
type MessageSpec interface {
	isMessageSpec()
}

// Plain is a message shown unconditionally.
type Plain string

func (Plain) isMessageSpec() {}

// Structured selects a message by response status and error code, falling
// back to Default.
type Structured struct {
	Default string        `validate:"required"`
	Custom  []CustomEntry `validate:"dive"`
}

func (Structured) isMessageSpec() {}

// CustomEntry overrides the default message for one status and error code.
// When, if set, is a condition that must also hold.
type CustomEntry struct {
	Status  int    `yaml:"status" json:"status" validate:"min=100,max=599"`
	Code    int    `yaml:"code" json:"code"`
	Message string `yaml:"message" json:"message" validate:"required"`
	When    string `yaml:"when,omitempty" json:"when,omitempty"`
}
