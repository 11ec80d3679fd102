// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/stacklok/toolhive-alerts/alert"
	"github.com/stacklok/toolhive-alerts/dispatcher"
	"github.com/stacklok/toolhive-alerts/navigation"
	statename "github.com/stacklok/toolhive-alerts/validation/state"
)

type classifyOptions struct {
	state       string
	stateFailed bool
}

func newClassifyCmd(a *app) *cobra.Command {
	opts := &classifyOptions{}

	cmd := &cobra.Command{
		Use:   "classify <response.json|->",
		Short: "Show the alert a recorded failed response would raise",
		Long: `Reads a failed response as JSON, for example

  {"config": {"url": "http://dummy.de/list", "method": "GET",
              "params": {"limit": 10, "offset": 20}},
   "status": 400, "data": {"code": 100}}

and prints the dispatch outcome followed by the alert message, if any.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.state != "" {
				if err := statename.ValidateName(opts.state); err != nil {
					return err
				}
			}

			resp, err := readResponse(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			reg, err := a.loadRegistry("")
			if err != nil {
				return err
			}

			tracker := navigation.NewStateErrorHandler()
			if opts.stateFailed {
				tracker.MarkStateError(opts.state)
			}

			alerts := alert.NewService()
			d := dispatcher.New(reg, tracker, alerts)
			if opts.state != "" {
				d.OnNavigationStart(opts.state)
			}

			outcome := d.ResponseError(resp)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, outcome)
			for _, al := range alerts.Alerts() {
				fmt.Fprintf(out, "%s: %s\n", al.Severity, al.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.state, "state", "", "navigation state in progress")
	cmd.Flags().BoolVar(&opts.stateFailed, "state-failed", false, "mark the navigation state as already failed")
	return cmd
}

func readResponse(stdin io.Reader, path string) (*dispatcher.Response, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path) // #nosec G304 -- path is provided by the user
	}
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var resp dispatcher.Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &resp, nil
}
