// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package dispatcher

import (
	"sync"

	"github.com/stacklok/toolhive-alerts/alert"
	"github.com/stacklok/toolhive-alerts/logger"
	"github.com/stacklok/toolhive-alerts/navigation"
	"github.com/stacklok/toolhive-alerts/registry"
)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithMetrics records every outcome in m.
func WithMetrics(m *Metrics) Option {
	return func(d *Dispatcher) {
		d.metrics = m
	}
}

// Dispatcher routes failed responses to an alert sink.
type Dispatcher struct {
	registry *registry.Registry
	tracker  navigation.StateErrorTracker
	sink     alert.Sink
	metrics  *Metrics

	mu           sync.RWMutex
	currentState string
}

var _ navigation.Listener = (*Dispatcher)(nil)

// New creates a Dispatcher. A nil tracker never suppresses alerts and a nil
// sink sends alerts to the process logger.
func New(reg *registry.Registry, tracker navigation.StateErrorTracker, sink alert.Sink, opts ...Option) *Dispatcher {
	if sink == nil {
		sink = alert.LogSink{}
	}
	d := &Dispatcher{
		registry: reg,
		tracker:  tracker,
		sink:     sink,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// OnNavigationStart records stateName as the state being navigated to.
func (d *Dispatcher) OnNavigationStart(stateName string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.currentState = stateName
}

// OnNavigationSuccess resets the current state to the empty string.
func (d *Dispatcher) OnNavigationSuccess() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.currentState = ""
}

// CurrentState returns the state recorded by the last navigation signal.
func (d *Dispatcher) CurrentState() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.currentState
}

// ResponseError handles a failed response. It sends at most one alert and
// never fails: responses without a request config or without a matching
// rule are ignored.
func (d *Dispatcher) ResponseError(resp *Response) Outcome {
	outcome := d.dispatch(resp)
	d.metrics.observe(outcome)
	return outcome
}

func (d *Dispatcher) dispatch(resp *Response) Outcome {
	if resp == nil || resp.Config == nil {
		return OutcomeNoMatch
	}
	cfg := resp.Config

	rule, ok := d.registry.Resolve(cfg.URL, cfg.Method, cfg.Params)
	if !ok {
		logger.Debugw("no error rule matched", "method", cfg.Method, "url", cfg.URL, "status", resp.Status)
		return OutcomeNoMatch
	}

	state := d.CurrentState()
	if d.tracker != nil && d.tracker.HasStateError(state) {
		logger.Debugw("alert suppressed, state shows its own error",
			"state", state, "method", cfg.Method, "url", cfg.URL)
		return OutcomeSuppressed
	}

	message := rule.Message(failureOf(resp))
	d.sink.Add(alert.SeverityDanger, message)
	return OutcomeAlerted
}

func failureOf(resp *Response) registry.Failure {
	f := registry.Failure{
		Status: resp.Status,
		URL:    resp.Config.URL,
		Method: resp.Config.Method,
	}
	if resp.Data != nil {
		f.Message = resp.Data.Message
		if resp.Data.Code != nil {
			f.Code = *resp.Data.Code
			f.HasCode = true
		}
	}
	return f
}
