// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package navigation connects the application's view state layer to the error
dispatcher.

The state layer announces transitions on a Bus. A transition starts with
StateChangeStart carrying the target state name and ends with
StateChangeSuccess. Listeners such as the dispatcher are attached to the bus
and receive both signals synchronously, in publish order.

While a transition fails, the state layer may show its own error for the
target state. It records that with a StateErrorHandler, and the dispatcher
asks the handler through the StateErrorTracker interface before it raises an
alert of its own.

# Basic Usage

	states := navigation.NewStateErrorHandler()
	bus := navigation.NewBus()
	_ = bus.Attach(dispatcher)

	bus.StateChangeStart("items.detail")
	states.MarkStateError("items.detail")
	// failed responses now stay silent
	bus.StateChangeSuccess()
*/
package navigation
