// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package alert provides the sink that user-facing alerts are sent to.

The dispatcher only depends on the Sink interface. Service is an in-memory
implementation that keeps the alerts for a UI to render and dismiss, and
LogSink writes alerts to the process logger.

# Basic Usage

	alerts := alert.NewService(alert.WithMaxAlerts(5))
	alerts.Add(alert.SeverityDanger, "could not load the list")

	for _, a := range alerts.Alerts() {
		fmt.Println(a.ID, a.Severity, a.Message)
	}
	alerts.Close(id)
*/
package alert
