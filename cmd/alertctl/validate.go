// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [rules-file]",
		Short: "Check a rules file against the schema and register every rule",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}

			reg, err := a.loadRegistry(path)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d rules\n", reg.Len())
			return nil
		},
	}
}
