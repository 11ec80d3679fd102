// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package navigation

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingListener struct {
	mu     sync.Mutex
	events []string
}

func (l *recordingListener) OnNavigationStart(stateName string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, "start:"+stateName)
}

func (l *recordingListener) OnNavigationSuccess() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, "success")
}

func TestStateErrorHandler(t *testing.T) {
	t.Parallel()

	h := NewStateErrorHandler()
	assert.False(t, h.HasStateError("stateName"))
	assert.False(t, h.HasStateError(""))

	h.MarkStateError("stateName")
	assert.True(t, h.HasStateError("stateName"))
	assert.False(t, h.HasStateError("other"))

	h.ClearStateError("stateName")
	assert.False(t, h.HasStateError("stateName"))
}

func TestBus_DeliversInOrder(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	first := &recordingListener{}
	second := &recordingListener{}
	require.NoError(t, bus.Attach(first))
	require.NoError(t, bus.Attach(second))

	bus.StateChangeStart("items")
	bus.StateChangeSuccess()
	bus.StateChangeStart("items.detail")

	want := []string{"start:items", "success", "start:items.detail"}
	assert.Equal(t, want, first.events)
	assert.Equal(t, want, second.events)
}

func TestBus_PublishWithoutListeners(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	assert.NotPanics(t, func() {
		bus.StateChangeStart("items")
		bus.StateChangeSuccess()
	})
}
