// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package collector

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stacklok/toolhive-alerts/alert"
	"github.com/stacklok/toolhive-alerts/dispatcher"
	"github.com/stacklok/toolhive-alerts/httperr"
	"github.com/stacklok/toolhive-alerts/logger"
	"github.com/stacklok/toolhive-alerts/recovery"
	statename "github.com/stacklok/toolhive-alerts/validation/state"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// RequestTimeout bounds the handling of a single API request.
const RequestTimeout = 30 * time.Second

// Reporter receives failed responses.
type Reporter interface {
	ResponseError(resp *dispatcher.Response) dispatcher.Outcome
}

// Navigator publishes navigation signals.
type Navigator interface {
	StateChangeStart(stateName string)
	StateChangeSuccess()
}

// AlertStore holds the alerts raised so far.
type AlertStore interface {
	Alerts() []alert.Alert
	Close(id string) bool
	Clear()
}

// OutcomeResponse is the reply to a reported response error.
type OutcomeResponse struct {
	Outcome string `json:"outcome"`
}

// NavigationRequest is the body of POST /v1/navigation/start.
type NavigationRequest struct {
	State string `json:"state" validate:"required,max=256"`
}

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

type handler struct {
	reporter  Reporter
	navigator Navigator
	alerts    AlertStore
}

// NewRouter returns the collector API. A nil gatherer serves the default
// Prometheus registry on /metrics.
func NewRouter(reporter Reporter, navigator Navigator, alerts AlertStore, gatherer prometheus.Gatherer) *chi.Mux {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	h := &handler{reporter: reporter, navigator: navigator, alerts: alerts}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(recovery.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(RequestTimeout))

		r.Post("/response-errors", h.reportResponseError)
		r.Post("/navigation/start", h.navigationStart)
		r.Post("/navigation/success", h.navigationSuccess)

		r.Get("/alerts", h.listAlerts)
		r.Delete("/alerts", h.clearAlerts)
		r.Delete("/alerts/{id}", h.closeAlert)
	})
	return r
}

func (h *handler) reportResponseError(w http.ResponseWriter, r *http.Request) {
	var resp dispatcher.Response
	if err := decodeBody(w, r, &resp); err != nil {
		respondWithError(w, err)
		return
	}

	outcome := h.reporter.ResponseError(&resp)
	respondWithJSON(w, http.StatusOK, OutcomeResponse{Outcome: outcome.String()})
}

func (h *handler) navigationStart(w http.ResponseWriter, r *http.Request) {
	var req NavigationRequest
	if err := decodeBody(w, r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := getValidator().Struct(req); err != nil {
		respondWithError(w, httperr.WithCode(fmt.Errorf("invalid navigation request: %w", err), http.StatusBadRequest))
		return
	}
	if err := statename.ValidateName(req.State); err != nil {
		respondWithError(w, httperr.WithCode(fmt.Errorf("invalid navigation request: %w", err), http.StatusBadRequest))
		return
	}

	h.navigator.StateChangeStart(req.State)
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) navigationSuccess(w http.ResponseWriter, _ *http.Request) {
	h.navigator.StateChangeSuccess()
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) listAlerts(w http.ResponseWriter, _ *http.Request) {
	alerts := h.alerts.Alerts()
	if alerts == nil {
		alerts = []alert.Alert{}
	}
	respondWithJSON(w, http.StatusOK, alerts)
}

func (h *handler) clearAlerts(w http.ResponseWriter, _ *http.Request) {
	h.alerts.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) closeAlert(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.alerts.Close(id) {
		respondWithError(w, httperr.New(fmt.Sprintf("alert %q not found", id), http.StatusNotFound))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return httperr.WithCode(fmt.Errorf("request body exceeds %d bytes", tooLarge.Limit), http.StatusRequestEntityTooLarge)
		}
		return httperr.WithCode(fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
	}
	return nil
}

// respondWithError writes err as a JSON error body. Server errors hide the
// underlying message from the client.
func respondWithError(w http.ResponseWriter, err error) {
	status := httperr.Code(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
	}

	logger.Warnw("responding with error", "status", status, "error", err)
	respondWithJSON(w, status, ErrorResponse{Error: message})
}

func respondWithJSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.Errorw("failed to marshal JSON response", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logger.Debugw("failed to write JSON response", "error", err)
	}
}
