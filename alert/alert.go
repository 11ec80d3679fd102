// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package alert

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=alert.go -destination=mocks/mock_sink.go -package=mocks Sink

import (
	"github.com/stacklok/toolhive-alerts/logger"
)

// Severity is the level an alert is displayed with.
type Severity string

const (
	// SeveritySuccess marks a confirmation.
	SeveritySuccess Severity = "success"
	// SeverityInfo marks an informational notice.
	SeverityInfo Severity = "info"
	// SeverityWarning marks a recoverable problem.
	SeverityWarning Severity = "warning"
	// SeverityDanger marks a failure. Failed responses are always reported with it.
	SeverityDanger Severity = "danger"
)

// Sink receives alerts. Add must not block on the caller.
type Sink interface {
	Add(severity Severity, message string)
}

// LogSink writes alerts to the process logger.
type LogSink struct{}

// Add implements Sink.
func (LogSink) Add(severity Severity, message string) {
	switch severity {
	case SeverityDanger:
		logger.Errorw(message, "severity", string(severity))
	case SeverityWarning:
		logger.Warnw(message, "severity", string(severity))
	default:
		logger.Infow(message, "severity", string(severity))
	}
}
