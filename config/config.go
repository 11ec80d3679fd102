// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by New.
const EnvPrefix = "ALERTCTL"

// Keys understood by Load.
const (
	KeyConfigFile = "config"
	KeyRulesFile  = "rules"
	KeyDebug      = "debug"
	KeyTimeout    = "timeout"
	KeyMaxAlerts  = "max_alerts"
	KeyListen     = "listen"
)

// DefaultTimeout bounds probe requests.
const DefaultTimeout = 30 * time.Second

// DefaultListen is the collector listen address.
const DefaultListen = "127.0.0.1:8080"

// DefaultMaxAlerts is the number of alerts kept by the CLI alert service.
const DefaultMaxAlerts = 100

// ErrInvalid is returned for settings that fail validation.
var ErrInvalid = errors.New("invalid configuration")

// Config holds alertctl settings.
type Config struct {
	RulesFile string        `mapstructure:"rules"`
	Debug     bool          `mapstructure:"debug"`
	Timeout   time.Duration `mapstructure:"timeout"`
	MaxAlerts int           `mapstructure:"max_alerts"`
	Listen    string        `mapstructure:"listen"`
}

// IsDebug reports whether debug logging was requested.
func (c *Config) IsDebug() bool {
	return c != nil && c.Debug
}

// DefaultRulesFile returns the rules file used when none is configured.
func DefaultRulesFile() string {
	return filepath.Join(xdg.ConfigHome, "alertctl", "rules.yaml")
}

// New returns a viper instance with defaults and environment binding set.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyRulesFile, DefaultRulesFile())
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyTimeout, DefaultTimeout)
	v.SetDefault(KeyMaxAlerts, DefaultMaxAlerts)
	v.SetDefault(KeyListen, DefaultListen)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file named by the "config" key and
// decodes the settings.
func Load(v *viper.Viper) (*Config, error) {
	if file := v.GetString(KeyConfigFile); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.RulesFile == "" {
		return fmt.Errorf("%w: rules file must not be empty", ErrInvalid)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalid, c.Timeout)
	}
	if c.Listen == "" {
		return fmt.Errorf("%w: listen address must not be empty", ErrInvalid)
	}
	if c.MaxAlerts < 0 {
		return fmt.Errorf("%w: max_alerts must not be negative, got %d", ErrInvalid, c.MaxAlerts)
	}
	return nil
}
