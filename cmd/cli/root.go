// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"crate-manager/internal/config"
	"crate-manager/internal/discovery"
	"crate-manager/internal/logger"
	"crate-manager/internal/menu"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	statusColor     = color.New(color.FgCyan)
	errorColor      = color.New(color.FgRed)
	stepColor       = color.New(color.FgYellow)
	successColor    = color.New(color.FgGreen)
	identifierColor = color.New(color.FgBlue)
	dimColor        = color.New(color.Faint)
)

// listFlag exists for parity with the classic invocation `cm --list`; it
// selects the same scan-and-prompt behavior the bare command already has.
var listFlag bool

var rootCmd = &cobra.Command{
	Use:     "cm",
	Short:   "Crate Manager CLI",
	Version: "0.1.0",
	Long: `A terminal manager for local Rust projects.

Scans a root directory (~/rust by default, configurable via
~/.config/crate-manager/config.yaml) for subdirectories containing a
Cargo.toml, and presents a numbered menu to inspect each project's name,
description, path, and release build location.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// File-only logging for the interactive surfaces so log lines don't
		// tear the screen.
		interactive := cmd.Name() == "cm" || cmd.Name() == "tui"
		logger.Init(interactive)

		if err := config.EnsureConfigDir(); err != nil {
			return fmt.Errorf("failed to ensure config directory: %w", err)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		runInteractiveMenu()
	},
}

// runInteractiveMenu scans the projects root and hands the result to the
// stdin-driven menu controller. A root that cannot be read is fatal.
func runInteractiveMenu() {
	rootDir, err := discovery.GetProjectsRootDirectory()
	if err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	projects, err := discovery.FindProjects(rootDir)
	if err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	controller := menu.NewController(projects, os.Stdin, os.Stdout, interrupt)
	controller.Run()
}

func RunCLI() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&listFlag, "list", "l", false,
		"list projects and enter the interactive menu (default behavior)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(configCmd)
}
