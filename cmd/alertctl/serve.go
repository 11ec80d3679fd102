// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/stacklok/toolhive-alerts/alert"
	"github.com/stacklok/toolhive-alerts/collector"
	"github.com/stacklok/toolhive-alerts/config"
	"github.com/stacklok/toolhive-alerts/dispatcher"
	"github.com/stacklok/toolhive-alerts/logger"
	"github.com/stacklok/toolhive-alerts/navigation"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP collector for failed responses and navigation signals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			handler, err := a.newCollector()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, a.cfg.Listen, handler)
		},
	}

	cmd.Flags().String("listen", config.DefaultListen, "collector listen address")
	_ = a.v.BindPFlag(config.KeyListen, cmd.Flags().Lookup("listen"))
	return cmd
}

// newCollector wires the registry, dispatcher, navigation bus and alert
// store behind the collector router.
func (a *app) newCollector() (http.Handler, error) {
	reg, err := a.loadRegistry("")
	if err != nil {
		return nil, err
	}

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := dispatcher.NewMetrics(promReg)
	if err != nil {
		return nil, err
	}

	alerts := alert.NewService(alert.WithMaxAlerts(a.cfg.MaxAlerts))
	d := dispatcher.New(reg, navigation.NewStateErrorHandler(), alerts, dispatcher.WithMetrics(metrics))

	bus := navigation.NewBus()
	if err := bus.Attach(d); err != nil {
		return nil, fmt.Errorf("attaching dispatcher to navigation bus: %w", err)
	}

	return collector.NewRouter(d, bus, alerts, promReg), nil
}

func serve(ctx context.Context, addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 20 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infow("starting collector", "addr", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("collector failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Infow("shutting down collector")
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down collector: %w", err)
	}
	return nil
}
