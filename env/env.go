// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=env.go -destination=mocks/mock_reader.go -package=mocks Reader

import (
	"os"
	"strconv"
)

// Reader defines an interface for environment variable access
type Reader interface {
	Getenv(key string) string
}

// OSReader implements Reader using the standard os package
type OSReader struct{}

// Getenv returns the value of the environment variable named by the key
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}

// Bool reads key from r as a boolean, returning fallback when the variable
// is unset or not a valid boolean.
func Bool(r Reader, key string, fallback bool) bool {
	v, err := strconv.ParseBool(r.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
