// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"

	"crate-manager/internal/discovery"

	"github.com/spf13/cobra"
)

// discoverProjectsForCompletion scans for projects, treating "root not
// found" as an empty result rather than an error.
func discoverProjectsForCompletion() []discovery.Project {
	rootDir, err := discovery.GetProjectsRootDirectory()
	if err != nil {
		return nil
	}

	// Scan errors are ignored for completion purposes.
	projects, _ := discovery.FindProjects(rootDir)
	return projects
}

// projectCompletionFunc provides dynamic completion for project names.
func projectCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var suggestions []string
	for _, p := range discoverProjectsForCompletion() {
		if strings.HasPrefix(p.Name, toComplete) {
			suggestions = append(suggestions, p.Name)
		}
	}
	return suggestions, cobra.ShellCompDirectiveNoFileComp
}
