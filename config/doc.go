// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package config loads alertctl settings from flags, ALERTCTL_* environment
// variables and an optional config file, using spf13/viper.
//
// Precedence follows viper: explicit Set and bound flags first, then
// environment, then the config file, then defaults. The default rules file
// lives under the XDG config home, for example
// ~/.config/alertctl/rules.yaml.
package config
