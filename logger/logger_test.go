// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/stacklok/toolhive-alerts/env/mocks"
)

type mockDebugProvider struct {
	debug bool
}

func (m *mockDebugProvider) IsDebug() bool {
	return m.debug
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		envValue    string
		debug       bool
		wantOutput  string
		wantLevel   zapcore.Level
		wantEncoder string
	}{
		{"default is unstructured", "", false, "stderr", zapcore.InfoLevel, "console"},
		{"explicit unstructured with debug", "true", true, "stderr", zapcore.DebugLevel, "console"},
		{"structured", "false", false, "stdout", zapcore.InfoLevel, "json"},
		{"invalid value falls back to unstructured", "nope", false, "stderr", zapcore.InfoLevel, "console"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			mockEnv := mocks.NewMockReader(ctrl)
			mockEnv.EXPECT().Getenv(UnstructuredLogsEnv).Return(tt.envValue)

			cfg := buildConfig(mockEnv, &mockDebugProvider{debug: tt.debug})
			assert.Equal(t, []string{tt.wantOutput}, cfg.OutputPaths)
			assert.Equal(t, tt.wantLevel, cfg.Level.Level())
			assert.Equal(t, tt.wantEncoder, cfg.Encoding)
		})
	}
}

func TestStructuredHelpers(t *testing.T) { //nolint:paralleltest // Uses global logger state
	core, observed := observer.New(zapcore.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(restore)

	Debugw("rule resolved", "method", "GET")
	Infow("rules loaded", "count", 3)
	Infof("loaded %d rules", 3)
	Warnw("alert", "severity", "danger")
	Errorw("load failed", "path", "rules.yaml")

	entries := observed.All()
	require.Len(t, entries, 5)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "GET", entries[0].ContextMap()["method"])
	assert.Equal(t, "loaded 3 rules", entries[2].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[3].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[4].Level)
}

func TestInitializeWithOptions(t *testing.T) { //nolint:paralleltest // Uses global logger state
	original := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(original) })

	ctrl := gomock.NewController(t)
	mockEnv := mocks.NewMockReader(ctrl)
	mockEnv.EXPECT().Getenv(UnstructuredLogsEnv).Return("false").Times(2)

	InitializeWithOptions(mockEnv, &mockDebugProvider{debug: true})
	assert.True(t, zap.L().Core().Enabled(zapcore.DebugLevel))

	InitializeWithOptions(mockEnv, &mockDebugProvider{debug: false})
	assert.False(t, zap.L().Core().Enabled(zapcore.DebugLevel))
	assert.True(t, zap.L().Core().Enabled(zapcore.InfoLevel))
}
