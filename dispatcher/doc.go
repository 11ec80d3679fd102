// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package dispatcher turns failed HTTP responses into user-facing alerts.

For every failed response the Dispatcher looks up an error rule in a
registry.Registry. When a rule matches and the navigation layer does not
already show an error for the current view state, it resolves the rule's
message and sends it to an alert.Sink with severity "danger". Unmatched,
malformed and suppressed responses produce no alert.

# Basic Usage

	b := registry.NewBuilder(registry.WithURITemplates())
	_ = b.AddErrorHandling("dummyUri", "GET", registry.Plain("error"))

	alerts := alert.NewService()
	states := navigation.NewStateErrorHandler()
	d := dispatcher.New(b.Build(), states, alerts)

	d.ResponseError(&dispatcher.Response{
		Config: &dispatcher.RequestConfig{URL: "dummyUri", Method: "GET"},
		Status: 500,
	})
	// alerts.Alerts() now holds one "danger" alert with message "error"

# Navigation State

The dispatcher tracks the view state being navigated to. OnNavigationStart
sets it and OnNavigationSuccess resets it to the empty string. Attach the
dispatcher to a navigation.Bus to receive both signals from the state layer.

# Metrics

WithMetrics counts every outcome in the
response_error_outcomes_total{outcome} Prometheus counter.

# Concurrency

A Dispatcher is safe for concurrent use. Navigation signals and
ResponseError calls are serialized on the current state name only; sink
calls happen outside any lock.
*/
package dispatcher
