// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package collector exposes the error dispatcher over HTTP so that browser
front ends and other clients can report failed responses and navigation
signals to a shared alert store.

# Routes

	GET    /healthz
	GET    /metrics                     Prometheus exposition
	POST   /v1/response-errors          body: dispatcher.Response, reply: {"outcome": "..."}
	POST   /v1/navigation/start         body: {"state": "name"}
	POST   /v1/navigation/success
	GET    /v1/alerts                   current alerts, oldest first
	DELETE /v1/alerts                   clear all alerts
	DELETE /v1/alerts/{id}              close one alert

Navigation signals are published on a navigation.Bus, so every listener
attached to the bus, usually the dispatcher, observes them in order.

Errors are returned as {"error": "..."} with the status carried by the
httperr coded error.
*/
package collector
