// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package navigation

import (
	"fmt"

	evbus "github.com/asaskevich/EventBus"
)

// Topics published by the Bus.
const (
	TopicStateChangeStart   = "$stateChangeStart"
	TopicStateChangeSuccess = "$stateChangeSuccess"
)

// Listener receives state transition signals.
type Listener interface {
	OnNavigationStart(stateName string)
	OnNavigationSuccess()
}

// Bus delivers state transition signals to attached listeners. Delivery is
// synchronous: a publish returns after every listener has run.
type Bus struct {
	bus evbus.Bus
}

// NewBus creates a Bus without listeners.
func NewBus() *Bus {
	return &Bus{bus: evbus.New()}
}

// Attach subscribes l to both transition topics.
func (b *Bus) Attach(l Listener) error {
	if err := b.bus.Subscribe(TopicStateChangeStart, l.OnNavigationStart); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", TopicStateChangeStart, err)
	}
	if err := b.bus.Subscribe(TopicStateChangeSuccess, l.OnNavigationSuccess); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", TopicStateChangeSuccess, err)
	}
	return nil
}

// StateChangeStart announces a transition to stateName.
func (b *Bus) StateChangeStart(stateName string) {
	b.bus.Publish(TopicStateChangeStart, stateName)
}

// StateChangeSuccess announces that the current transition completed.
func (b *Bus) StateChangeSuccess() {
	b.bus.Publish(TopicStateChangeSuccess)
}
