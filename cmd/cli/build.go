// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"os"

	"crate-manager/internal/discovery"
	"crate-manager/internal/logger"
	"crate-manager/internal/runner"

	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:               "build <project>",
	Short:             "Run 'cargo build --release' for a project",
	Example:           "  cm build my-crate",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: projectCompletionFunc,
	Run: func(cmd *cobra.Command, args []string) {
		project, err := discovery.FindProjectByName(args[0])
		if err != nil {
			errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		stepColor.Printf("Running 'cargo build --release' for %s...\n", project.Name)
		logger.Info("Starting release build", "project", project.Name, "path", project.Path)

		// CLI mode: cargo's output is attached straight to the terminal.
		outChan, errChan := runner.StreamCommand(runner.BuildRelease(project.Path), true)
		for range outChan {
		}
		if err := <-errChan; err != nil {
			logger.Error("Release build failed", "project", project.Name, "error", err)
			errorColor.Fprintf(os.Stderr, "\nBuild failed: %v\n", err)
			os.Exit(1)
		}

		successColor.Println("\nBuild complete.")
		statusColor.Printf("You can run this project from: %s\n", identifierColor.Sprint(project.BuildOutputPath()))
	},
}
