// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package dispatcher

// Outcome is what ResponseError did with a response.
type Outcome int

const (
	// OutcomeNoMatch means no rule applies to the response.
	OutcomeNoMatch Outcome = iota
	// OutcomeSuppressed means a rule applies but the current view state
	// already shows an error.
	OutcomeSuppressed
	// OutcomeAlerted means one alert was sent to the sink.
	OutcomeAlerted
)

// String returns the metric label for o.
func (o Outcome) String() string {
	switch o {
	case OutcomeNoMatch:
		return "no_match"
	case OutcomeSuppressed:
		return "suppressed"
	case OutcomeAlerted:
		return "alerted"
	default:
		return "unknown"
	}
}
