// SPDX-License-Identifier: Apache-2.0

// Package ui's commands.go defines the asynchronous tea.Cmd functions and
// the messages they deliver back into the Update loop.

package ui

import (
	"strings"

	"crate-manager/internal/discovery"
	"crate-manager/internal/runner"

	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---

type projectsLoadedMsg struct {
	projects []discovery.Project
}

type buildFinishedMsg struct {
	output string
	err    error
}

type errorMsg struct {
	err error
}

// --- Commands ---

// findProjectsCmd resolves the projects root and scans it.
func findProjectsCmd() tea.Cmd {
	return func() tea.Msg {
		rootDir, err := discovery.GetProjectsRootDirectory()
		if err != nil {
			return errorMsg{err}
		}

		projects, err := discovery.FindProjects(rootDir)
		if err != nil {
			return errorMsg{err}
		}
		return projectsLoadedMsg{projects}
	}
}

// buildProjectCmd runs `cargo build --release` for a project, collecting all
// output before reporting back. Streaming into the view line by line is not
// worth the churn for a build that mostly matters at the end.
func buildProjectCmd(project discovery.Project) tea.Cmd {
	return func() tea.Msg {
		outChan, errChan := runner.StreamCommand(runner.BuildRelease(project.Path), false)

		var output strings.Builder
		for chunk := range outChan {
			output.WriteString(chunk.Line)
		}
		err := <-errChan

		return buildFinishedMsg{output: output.String(), err: err}
	}
}
