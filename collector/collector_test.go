// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package collector

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/toolhive-alerts/alert"
	"github.com/stacklok/toolhive-alerts/dispatcher"
	"github.com/stacklok/toolhive-alerts/navigation"
	"github.com/stacklok/toolhive-alerts/registry"
)

type fixture struct {
	router  http.Handler
	alerts  *alert.Service
	tracker *navigation.StateErrorHandler
	disp    *dispatcher.Dispatcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	b := registry.NewBuilder(registry.WithURITemplates())
	require.NoError(t, b.AddErrorHandling("dummyUri", http.MethodGet, registry.Plain("error getting")))
	require.NoError(t, b.AddErrorHandling("http://dummy.de/list?limit&offset", http.MethodGet, registry.Structured{
		Default: "error paging",
		Custom:  []registry.CustomEntry{{Status: 400, Code: 100, Message: "page out of range"}},
	}))

	promReg := prometheus.NewRegistry()
	metrics, err := dispatcher.NewMetrics(promReg)
	require.NoError(t, err)

	alerts := alert.NewService()
	tracker := navigation.NewStateErrorHandler()
	d := dispatcher.New(b.Build(), tracker, alerts, dispatcher.WithMetrics(metrics))

	bus := navigation.NewBus()
	require.NoError(t, bus.Attach(d))

	return &fixture{
		router:  NewRouter(d, bus, alerts, promReg),
		alerts:  alerts,
		tracker: tracker,
		disp:    d,
	}
}

func (f *fixture) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestReportResponseError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		wantOutcome string
		wantMessage string
	}{
		{
			name:        "literal",
			body:        `{"config": {"url": "dummyUri", "method": "GET"}, "status": 500}`,
			wantOutcome: "alerted",
			wantMessage: "error getting",
		},
		{
			name: "paging custom",
			body: `{"config": {"url": "http://dummy.de/list", "method": "GET",
				"params": {"limit": 10, "offset": 20}}, "status": 400, "data": {"code": 100}}`,
			wantOutcome: "alerted",
			wantMessage: "page out of range",
		},
		{
			name:        "no match",
			body:        `{"config": {"url": "otherUri", "method": "GET"}, "status": 500}`,
			wantOutcome: "no_match",
		},
		{
			name:        "no config",
			body:        `{"status": 500}`,
			wantOutcome: "no_match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			rec := f.do(t, http.MethodPost, "/v1/response-errors", tt.body)
			require.Equal(t, http.StatusOK, rec.Code)

			var got OutcomeResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.wantOutcome, got.Outcome)

			alerts := f.alerts.Alerts()
			if tt.wantMessage == "" {
				assert.Empty(t, alerts)
				return
			}
			require.Len(t, alerts, 1)
			assert.Equal(t, alert.SeverityDanger, alerts[0].Severity)
			assert.Equal(t, tt.wantMessage, alerts[0].Message)
		})
	}
}

func TestReportResponseError_InvalidBody(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	rec := f.do(t, http.MethodPost, "/v1/response-errors", `{"status": "oops"`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var got ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Contains(t, got.Error, "invalid request body")

	big := `{"status": 500, "pad": "` + strings.Repeat("x", maxBodyBytes) + `"}`
	rec = f.do(t, http.MethodPost, "/v1/response-errors", big)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestNavigation(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.tracker.MarkStateError("list")

	rec := f.do(t, http.MethodPost, "/v1/navigation/start", `{"state": "list"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "list", f.disp.CurrentState())

	rec = f.do(t, http.MethodPost, "/v1/response-errors", `{"config": {"url": "dummyUri", "method": "GET"}, "status": 500}`)
	assert.JSONEq(t, `{"outcome":"suppressed"}`, rec.Body.String())

	rec = f.do(t, http.MethodPost, "/v1/navigation/success", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, f.disp.CurrentState())

	rec = f.do(t, http.MethodPost, "/v1/response-errors", `{"config": {"url": "dummyUri", "method": "GET"}, "status": 500}`)
	assert.JSONEq(t, `{"outcome":"alerted"}`, rec.Body.String())

	for _, body := range []string{`{}`, `{"state": "app..list"}`} {
		rec = f.do(t, http.MethodPost, "/v1/navigation/start", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid navigation request")
	}
}

func TestAlerts(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/v1/alerts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	f.alerts.Add(alert.SeverityDanger, "one")
	f.alerts.Add(alert.SeverityDanger, "two")

	rec = f.do(t, http.MethodGet, "/v1/alerts", "")
	var listed []alert.Alert
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 2)

	rec = f.do(t, http.MethodDelete, "/v1/alerts/"+listed[0].ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.Len(t, f.alerts.Alerts(), 1)
	assert.Equal(t, "two", f.alerts.Alerts()[0].Message)

	rec = f.do(t, http.MethodDelete, "/v1/alerts/"+listed[0].ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodDelete, "/v1/alerts", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, f.alerts.Alerts())
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.do(t, http.MethodPost, "/v1/response-errors", `{"config": {"url": "dummyUri", "method": "GET"}, "status": 500}`)

	rec := f.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `response_error_outcomes_total{outcome="alerted"} 1`)
}

type panicReporter struct{}

func (panicReporter) ResponseError(*dispatcher.Response) dispatcher.Outcome {
	panic("boom")
}

func TestRouter_RecoversFromPanics(t *testing.T) {
	t.Parallel()

	router := NewRouter(panicReporter{}, navigation.NewBus(), alert.NewService(), prometheus.NewRegistry())
	req := httptest.NewRequest(http.MethodPost, "/v1/response-errors", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
}
