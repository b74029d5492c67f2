// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"os"
	"time"

	"crate-manager/internal/discovery"
	"crate-manager/internal/menu"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered Cargo projects and exit",
	Run: func(cmd *cobra.Command, args []string) {
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Color("cyan")
		s.Suffix = " Scanning for Cargo projects..."
		s.Start()

		rootDir, err := discovery.GetProjectsRootDirectory()
		if err != nil {
			s.Stop()
			errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		projects, err := discovery.FindProjects(rootDir)
		s.Stop()
		if err != nil {
			errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if len(projects) == 0 {
			statusColor.Printf("No Cargo projects found in %s.\n", rootDir)
			return
		}

		dimColor.Printf("Projects in %s:\n\n", rootDir)
		menu.WriteListing(os.Stdout, projects)
	},
}
