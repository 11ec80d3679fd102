// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/toolhive-alerts/config"
)

func TestNewCollector(t *testing.T) {
	t.Parallel()

	a := &app{v: config.New()}
	a.v.Set(config.KeyRulesFile, writeFile(t, "rules.yaml", testRules))
	cfg, err := config.Load(a.v)
	require.NoError(t, err)
	a.cfg = cfg

	handler, err := a.newCollector()
	require.NoError(t, err)
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	resp, err := http.Post(srv.URL+"/v1/response-errors", "application/json",
		strings.NewReader(`{"config": {"url": "http://dummy.de/list/3", "method": "DELETE"}, "status": 500}`))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.JSONEq(t, `{"outcome":"alerted"}`, string(body))

	resp, err = http.Get(srv.URL + "/v1/alerts")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Contains(t, string(body), `"message":"error deleting"`)

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Contains(t, string(body), "go_goroutines")
}

func TestServe_StopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := serve(ctx, "127.0.0.1:0", http.NotFoundHandler())
	assert.NoError(t, err)
}

func TestNewCollector_MissingRules(t *testing.T) {
	t.Parallel()

	a := &app{v: config.New()}
	a.v.Set(config.KeyRulesFile, "/nonexistent/rules.yaml")
	cfg, err := config.Load(a.v)
	require.NoError(t, err)
	a.cfg = cfg

	_, err = a.newCollector()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading rules")
}
