// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Command alertctl works with response-error rule files: it validates them,
// classifies recorded failed responses and probes live endpoints.
package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/stacklok/toolhive-alerts/httperr"
)

// Exit codes.
const (
	exitError       = 1
	exitClientError = 2
	exitServerError = 3
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var coded *httperr.CodedError
	if !errors.As(err, &coded) {
		return exitError
	}
	if coded.HTTPCode() >= http.StatusInternalServerError {
		return exitServerError
	}
	return exitClientError
}
