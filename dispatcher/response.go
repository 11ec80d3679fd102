// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package dispatcher

// Response describes a failed HTTP response. Nil pointers and a zero Status
// mean the field is absent.
type Response struct {
	Config *RequestConfig `json:"config,omitempty"`
	Status int            `json:"status,omitempty"`
	Data   *ErrorData     `json:"data,omitempty"`
}

// RequestConfig describes the request that failed.
type RequestConfig struct {
	URL    string `json:"url,omitempty"`
	Method string `json:"method,omitempty"`
	// Params holds the request parameters. A nil value means the parameter
	// is undefined.
	Params map[string]any `json:"params,omitempty"`
}

// ErrorData is the error body returned by the server.
type ErrorData struct {
	Code    *int   `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}
