// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/stacklok/toolhive-alerts/alert"
	"github.com/stacklok/toolhive-alerts/dispatcher"
	"github.com/stacklok/toolhive-alerts/transport"
	httpval "github.com/stacklok/toolhive-alerts/validation/http"
)

func newProbeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "probe <METHOD> <URL>",
		Short: "Send a request and print the alerts raised by its response",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			method := strings.ToUpper(args[0])
			if err := httpval.ValidateMethod(method); err != nil {
				return err
			}

			reg, err := a.loadRegistry("")
			if err != nil {
				return err
			}

			metrics, err := dispatcher.NewMetrics(prometheus.NewRegistry())
			if err != nil {
				return err
			}

			alerts := alert.NewService(alert.WithMaxAlerts(a.cfg.MaxAlerts))
			d := dispatcher.New(reg, nil, alerts, dispatcher.WithMetrics(metrics))
			client := &http.Client{
				Transport: transport.NewRoundTripper(http.DefaultTransport, d),
				Timeout:   a.cfg.Timeout,
			}

			return probe(cmd.Context(), client, method, args[1], cmd.OutOrStdout(), alerts)
		},
	}
}

func probe(ctx context.Context, client *http.Client, method, target string, out io.Writer, alerts *alert.Service) error {
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	fmt.Fprintf(out, "%s %s: %s\n", method, target, resp.Status)
	for _, al := range alerts.Alerts() {
		fmt.Fprintf(out, "%s: %s\n", al.Severity, al.Message)
	}
	return transport.CheckResponse(resp)
}
