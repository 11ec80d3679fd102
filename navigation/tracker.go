// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package navigation

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=tracker.go -destination=mocks/mock_tracker.go -package=mocks StateErrorTracker

import "sync"

// StateErrorTracker reports whether a view state already displays its own error.
type StateErrorTracker interface {
	HasStateError(stateName string) bool
}

// StateErrorHandler records the states that currently display an error.
// It is safe for concurrent use.
type StateErrorHandler struct {
	mu     sync.RWMutex
	states map[string]struct{}
}

var _ StateErrorTracker = (*StateErrorHandler)(nil)

// NewStateErrorHandler creates a handler with no recorded errors.
func NewStateErrorHandler() *StateErrorHandler {
	return &StateErrorHandler{states: make(map[string]struct{})}
}

// MarkStateError records that stateName displays an error.
func (h *StateErrorHandler) MarkStateError(stateName string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.states[stateName] = struct{}{}
}

// ClearStateError removes the record for stateName.
func (h *StateErrorHandler) ClearStateError(stateName string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.states, stateName)
}

// HasStateError implements StateErrorTracker.
func (h *StateErrorHandler) HasStateError(stateName string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.states[stateName]
	return ok
}
