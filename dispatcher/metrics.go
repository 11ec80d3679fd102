// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package dispatcher

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts dispatch outcomes.
type Metrics struct {
	outcomes *prometheus.CounterVec
}

// NewMetrics creates the dispatcher collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "response_error_outcomes_total",
				Help: "Failed HTTP responses handled by the alert dispatcher, by outcome.",
			},
			[]string{"outcome"},
		),
	}
	if err := reg.Register(m.outcomes); err != nil {
		return nil, fmt.Errorf("failed to register dispatcher metrics: %w", err)
	}
	return m, nil
}

func (m *Metrics) observe(o Outcome) {
	if m == nil {
		return
	}
	m.outcomes.WithLabelValues(o.String()).Inc()
}
