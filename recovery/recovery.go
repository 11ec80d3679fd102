// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package recovery

import (
	"net/http"
	"runtime/debug"

	"github.com/stacklok/toolhive-alerts/logger"
)

// Middleware is an HTTP middleware that recovers from panics.
// The panic value and stack trace are logged at error level and the client
// receives a 500 response with a JSON error body.
//
// http.ErrAbortHandler is re-panicked so net/http can abort the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler { //nolint:errorlint // sentinel compared by identity
				panic(rec)
			}

			logger.Errorw("recovered from panic",
				"method", r.Method,
				"path", r.URL.Path,
				"panic", rec,
				"stack", string(debug.Stack()),
			)
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"Internal Server Error"}`))
		}()
		next.ServeHTTP(w, r)
	})
}
