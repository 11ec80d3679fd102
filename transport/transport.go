// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/stacklok/toolhive-alerts/dispatcher"
	"github.com/stacklok/toolhive-alerts/httperr"
	"github.com/stacklok/toolhive-alerts/logger"
)

// maxErrorBody bounds how much of a failed response body is inspected.
const maxErrorBody = 64 << 10

// Reporter receives failed responses.
type Reporter interface {
	ResponseError(resp *dispatcher.Response) dispatcher.Outcome
}

// RoundTripper reports failed responses to a Reporter.
type RoundTripper struct {
	next     http.RoundTripper
	reporter Reporter
}

var _ http.RoundTripper = (*RoundTripper)(nil)

// NewRoundTripper wraps next, which defaults to http.DefaultTransport.
// A nil reporter passes every response through unreported.
func NewRoundTripper(next http.RoundTripper, reporter Reporter) *RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &RoundTripper{next: next, reporter: reporter}
}

// RoundTrip implements http.RoundTripper. Transport errors are passed
// through without being reported.
func (rt *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := rt.next.RoundTrip(req)
	if err != nil || resp.StatusCode < http.StatusBadRequest || rt.reporter == nil {
		return resp, err
	}

	outcome := rt.reporter.ResponseError(Describe(req, resp))
	logger.Debugw("reported failed response",
		"method", req.Method, "url", redact(req.URL), "status", resp.StatusCode, "outcome", outcome.String())
	return resp, nil
}

// Describe builds the dispatcher view of a failed response. It peeks at the
// body and leaves resp.Body readable from the start.
func Describe(req *http.Request, resp *http.Response) *dispatcher.Response {
	return &dispatcher.Response{
		Config: &dispatcher.RequestConfig{
			URL:    redact(req.URL),
			Method: req.Method,
			Params: params(req.URL.Query()),
		},
		Status: resp.StatusCode,
		Data:   peekErrorData(resp),
	}
}

// CheckResponse returns nil for responses below 400 and an httperr coded
// error otherwise.
func CheckResponse(resp *http.Response) error {
	if resp.StatusCode < http.StatusBadRequest {
		return nil
	}

	var method, target string
	if resp.Request != nil {
		method, target = resp.Request.Method, redact(resp.Request.URL)
	}

	var (
		code    *int
		message string
	)
	if data := peekErrorData(resp); data != nil {
		code, message = data.Code, data.Message
	}
	return httperr.Failed(method, target, resp.StatusCode, code, message)
}

// peekErrorData decodes a JSON error body, restoring resp.Body afterwards.
func peekErrorData(resp *http.Response) *dispatcher.ErrorData {
	if resp.Body == nil || resp.Body == http.NoBody {
		return nil
	}

	head, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	resp.Body = &replayBody{Reader: io.MultiReader(bytes.NewReader(head), resp.Body), Closer: resp.Body}
	if err != nil || len(head) == 0 {
		return nil
	}

	var data dispatcher.ErrorData
	if err := json.Unmarshal(head, &data); err != nil {
		return nil
	}
	if data.Code == nil && data.Message == "" {
		return nil
	}
	return &data
}

type replayBody struct {
	io.Reader
	io.Closer
}

// redact drops the query and fragment from u.
func redact(u *url.URL) string {
	if u == nil {
		return ""
	}
	c := *u
	c.RawQuery = ""
	c.ForceQuery = false
	c.Fragment = ""
	c.RawFragment = ""
	return c.String()
}

func params(values url.Values) map[string]any {
	if len(values) == 0 {
		return nil
	}
	out := make(map[string]any, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out
}
