// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"
	"strings"

	"crate-manager/internal/config"
	"crate-manager/internal/discovery"

	"github.com/spf13/cobra"
)

// configCmd is the parent command for configuration-related subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage crate-manager configuration",
}

var configSetRootCmd = &cobra.Command{
	Use:   "set-root <path>",
	Short: "Set the root directory scanned for Cargo projects",
	Long: `Sets the root directory where crate-manager looks for Cargo projects.
Use an absolute path or a path starting with '~/' (e.g., '~/code/rust').
If set, this overrides the default search paths (~/rust, ~/rust-projects).
To revert to default behavior, set the path to an empty string: cm config set-root ""`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rootPath := args[0]

		cfg, err := config.LoadConfig()
		if err != nil {
			errorColor.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
			os.Exit(1)
		}

		if rootPath != "" && !strings.HasPrefix(rootPath, "/") && !strings.HasPrefix(rootPath, "~/") {
			errorColor.Fprintln(os.Stderr, "Error: Path must be absolute or start with '~/'")
			os.Exit(1)
		}

		cfg.ProjectsRoot = rootPath

		err = config.SaveConfig(cfg)
		if err != nil {
			errorColor.Fprintf(os.Stderr, "Error saving configuration: %v\n", err)
			os.Exit(1)
		}

		if rootPath == "" {
			successColor.Println("Projects root reset to default search paths (~/rust, ~/rust-projects).")
		} else {
			successColor.Printf("Projects root set to: %s\n", rootPath)
		}
	},
}

var configGetRootCmd = &cobra.Command{
	Use:   "get-root",
	Short: "Show the currently configured projects root directory",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			errorColor.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
			os.Exit(1)
		}

		if cfg.ProjectsRoot != "" {
			fmt.Printf("Configured projects root: %s\n", identifierColor.Sprint(cfg.ProjectsRoot))
			resolvedPath, resolveErr := config.ResolvePath(cfg.ProjectsRoot)
			if resolveErr == nil {
				fmt.Printf("Resolved path:            %s\n", resolvedPath)
			} else {
				errorColor.Printf("Warning: Could not resolve configured path: %v\n", resolveErr)
			}
		} else {
			fmt.Println("Projects root not explicitly configured.")
			fmt.Printf("Default search paths: %s, %s\n", identifierColor.Sprint("~/rust"), identifierColor.Sprint("~/rust-projects"))
		}

		// Report the path discovery will actually use.
		activePath, activeErr := discovery.GetProjectsRootDirectory()
		switch {
		case activeErr == nil:
			successColor.Printf("Effective path being used: %s\n", activePath)
		case strings.Contains(activeErr.Error(), "could not find"):
			errorColor.Println("Warning: No projects root exists yet (neither configured nor default paths).")
		default:
			errorColor.Printf("Error determining effective path: %v\n", activeErr)
		}
	},
}

func init() {
	configCmd.AddCommand(configSetRootCmd)
	configCmd.AddCommand(configGetRootCmd)
}
