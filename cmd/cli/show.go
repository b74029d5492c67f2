// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"os"

	"crate-manager/internal/discovery"
	"crate-manager/internal/menu"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:               "show <project>",
	Short:             "Show the detail view for one project",
	Example:           "  cm show my-crate",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: projectCompletionFunc,
	Run: func(cmd *cobra.Command, args []string) {
		project, err := discovery.FindProjectByName(args[0])
		if err != nil {
			errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		menu.WriteDetails(os.Stdout, project)
	},
}
