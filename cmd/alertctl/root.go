// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stacklok/toolhive-alerts/condition"
	"github.com/stacklok/toolhive-alerts/config"
	"github.com/stacklok/toolhive-alerts/env"
	"github.com/stacklok/toolhive-alerts/logger"
	"github.com/stacklok/toolhive-alerts/registry"
)

type app struct {
	v   *viper.Viper
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	cmd := &cobra.Command{
		Use:           "alertctl",
		Short:         "Validate and exercise HTTP response-error alert rules",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			cfg, err := config.Load(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg
			logger.InitializeWithOptions(&env.OSReader{}, cfg)
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "config file (yaml, json or toml)")
	flags.StringP("rules", "r", config.DefaultRulesFile(), "rules file")
	flags.Bool("debug", false, "enable debug logging")
	for _, key := range []string{config.KeyConfigFile, config.KeyRulesFile, config.KeyDebug} {
		// Lookup cannot fail for flags registered above.
		_ = a.v.BindPFlag(key, flags.Lookup(key))
	}

	cmd.AddCommand(
		newValidateCmd(a),
		newClassifyCmd(a),
		newProbeCmd(a),
		newServeCmd(a),
	)
	return cmd
}

// loadRegistry builds a registry from path, falling back to the configured
// rules file.
func (a *app) loadRegistry(path string) (*registry.Registry, error) {
	if path == "" {
		path = a.cfg.RulesFile
	}

	b := registry.NewBuilder(
		registry.WithURITemplates(),
		registry.WithConditionEngine(condition.NewEngine()),
	)
	if err := registry.LoadFile(b, path); err != nil {
		return nil, fmt.Errorf("loading rules: %w", err)
	}

	reg := b.Build()
	logger.Debugw("loaded rules", "path", path, "rules", reg.Len())
	return reg, nil
}
