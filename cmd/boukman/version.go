// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/boukman"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the boukman version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "boukman %s\n", boukman.Version)
			return err
		},
	}
}
