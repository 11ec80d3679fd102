// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package recovery provides panic recovery middleware for HTTP handlers.
//
// The middleware recovers from panics in HTTP handlers, logs them with their
// stack trace and returns a 500 Internal Server Error response to the
// client. This keeps a single panicking request from crashing the alert
// collector.
//
// # Basic Usage
//
//	r := chi.NewRouter()
//	r.Use(recovery.Middleware)
//	r.Post("/v1/response-errors", handler)
package recovery
