// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package logger provides the process-wide zap logger used by the alert
// routing packages and the alertctl CLI.
package logger

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/stacklok/toolhive-alerts/env"
)

// UnstructuredLogsEnv selects console output when true (the default).
const UnstructuredLogsEnv = "UNSTRUCTURED_LOGS"

// Debugw logs a message at debug level using the singleton logger with additional key-value pairs.
func Debugw(msg string, keysAndValues ...any) {
	zap.S().Debugw(msg, keysAndValues...)
}

// Infof logs a message at info level using the singleton logger.
func Infof(msg string, args ...any) {
	zap.S().Infof(msg, args...)
}

// Infow logs a message at info level using the singleton logger with additional key-value pairs.
func Infow(msg string, keysAndValues ...any) {
	zap.S().Infow(msg, keysAndValues...)
}

// Warnw logs a message at warning level using the singleton logger with additional key-value pairs.
func Warnw(msg string, keysAndValues ...any) {
	zap.S().Warnw(msg, keysAndValues...)
}

// Errorw logs a message at error level using the singleton logger with additional key-value pairs.
func Errorw(msg string, keysAndValues ...any) {
	zap.S().Errorw(msg, keysAndValues...)
}

// DebugProvider is an interface for checking if debug mode is enabled.
type DebugProvider interface {
	IsDebug() bool
}

type defaultDebugProvider struct{}

func (*defaultDebugProvider) IsDebug() bool {
	return false
}

// Initialize configures the singleton logger from the process environment
// at info level.
func Initialize() {
	InitializeWithOptions(&env.OSReader{}, &defaultDebugProvider{})
}

// InitializeWithOptions configures the singleton logger with a custom
// environment reader and debug provider.
//
// With UNSTRUCTURED_LOGS unset or true, logs are written to stderr as
// colored console lines. Otherwise a JSON production logger writes to stdout.
func InitializeWithOptions(envReader env.Reader, debugProvider DebugProvider) {
	zap.ReplaceGlobals(zap.Must(buildConfig(envReader, debugProvider).Build()))
}

func buildConfig(envReader env.Reader, debugProvider DebugProvider) zap.Config {
	var config zap.Config
	if env.Bool(envReader, UnstructuredLogsEnv, true) {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.Kitchen)
		config.OutputPaths = []string{"stderr"}
		config.DisableStacktrace = true
		config.DisableCaller = true
	} else {
		config = zap.NewProductionConfig()
		config.OutputPaths = []string{"stdout"}
	}

	if debugProvider.IsDebug() {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return config
}
