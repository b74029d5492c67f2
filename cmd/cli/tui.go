// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"crate-manager/cmd/tui"

	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse projects in a full-screen TUI",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		tui.RunTUI()
	},
}
