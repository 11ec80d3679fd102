// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package alert

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Alert is an alert held by a Service.
type Alert struct {
	ID        string    `json:"id"`
	Severity  Severity  `json:"severity"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithMaxAlerts keeps at most n alerts, dropping the oldest first.
// Zero or negative means unbounded.
func WithMaxAlerts(n int) ServiceOption {
	return func(s *Service) {
		s.maxAlerts = n
	}
}

// WithClock sets the time source used for CreatedAt.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

var _ Sink = (*Service)(nil)

// Service keeps alerts in memory until they are closed. It is safe for
// concurrent use.
type Service struct {
	mu        sync.RWMutex
	alerts    []Alert
	maxAlerts int
	now       func() time.Time
}

// NewService creates an empty Service.
func NewService(opts ...ServiceOption) *Service {
	s := &Service{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add implements Sink.
func (s *Service) Add(severity Severity, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.alerts = append(s.alerts, Alert{
		ID:        uuid.NewString(),
		Severity:  severity,
		Message:   message,
		CreatedAt: s.now(),
	})
	if s.maxAlerts > 0 && len(s.alerts) > s.maxAlerts {
		s.alerts = append([]Alert(nil), s.alerts[len(s.alerts)-s.maxAlerts:]...)
	}
}

// Alerts returns the open alerts, oldest first.
func (s *Service) Alerts() []Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Alert(nil), s.alerts...)
}

// Close removes the alert with id and reports whether it was open.
func (s *Service) Close(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.alerts {
		if a.ID == id {
			s.alerts = append(s.alerts[:i], s.alerts[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes every alert.
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = nil
}
