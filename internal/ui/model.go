// SPDX-License-Identifier: Apache-2.0

// Package ui implements the Bubble Tea browser for discovered Cargo
// projects: a cursor-driven list with a per-project detail view and a
// release-build action.
package ui

import (
	"fmt"
	"strings"

	"crate-manager/internal/discovery"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// state represents the different views of the TUI.
type state int

const (
	stateLoadingProjects state = iota
	stateProjectList
	stateProjectDetails
	stateBuilding
	stateBuildOutput
	stateError
)

type Model struct {
	projects     []discovery.Project
	cursor       int
	currentState state
	buildOutput  string
	err          error
	keys         KeyMap
	spinner      spinner.Model
	width        int
	height       int
}

func InitialModel() Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = statusStyle

	return Model{
		currentState: stateLoadingProjects,
		keys:         DefaultKeyMap,
		spinner:      sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, findProjectsCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.currentState == stateLoadingProjects || m.currentState == stateBuilding {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case projectsLoadedMsg:
		m.projects = msg.projects
		m.currentState = stateProjectList
		if len(m.projects) == 0 {
			m.err = fmt.Errorf("no Cargo projects found")
			m.currentState = stateError
		}

	case buildFinishedMsg:
		m.buildOutput = msg.output
		if msg.err != nil {
			m.err = msg.err
			m.currentState = stateError
			if msg.output != "" {
				m.err = fmt.Errorf("%w\n\n%s", msg.err, msg.output)
			}
		} else {
			m.currentState = stateBuildOutput
		}

	case errorMsg:
		m.err = msg.err
		m.currentState = stateError
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	switch m.currentState {
	case stateProjectList:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.projects)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Home):
			m.cursor = 0
		case key.Matches(msg, m.keys.End):
			if len(m.projects) > 0 {
				m.cursor = len(m.projects) - 1
			}
		case key.Matches(msg, m.keys.Enter):
			if len(m.projects) > 0 {
				m.currentState = stateProjectDetails
			}
		case key.Matches(msg, m.keys.Build):
			if len(m.projects) > 0 {
				m.currentState = stateBuilding
				return m, tea.Batch(m.spinner.Tick, buildProjectCmd(m.projects[m.cursor]))
			}
		}

	case stateProjectDetails:
		switch {
		case key.Matches(msg, m.keys.Back):
			m.currentState = stateProjectList
		case key.Matches(msg, m.keys.Build):
			m.currentState = stateBuilding
			return m, tea.Batch(m.spinner.Tick, buildProjectCmd(m.projects[m.cursor]))
		}

	case stateBuildOutput, stateError:
		if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Enter) {
			m.currentState = stateProjectList
			m.buildOutput = ""
			m.err = nil
			if len(m.projects) == 0 {
				// Nothing to go back to; the scan itself failed.
				return m, tea.Quit
			}
		}

	case stateBuilding:
		// Builds are not cancellable mid-flight; only quit is honored above.
	}

	return m, nil
}

func (m Model) View() string {
	s := strings.Builder{}

	switch m.currentState {
	case stateLoadingProjects:
		s.WriteString(m.spinner.View())
		s.WriteString(" Scanning for Cargo projects...\n")

	case stateProjectList:
		s.WriteString(titleStyle.Render("Cargo Projects"))
		s.WriteString("\n\n")
		for i, project := range m.projects {
			cursor := " "
			if m.cursor == i {
				cursor = cursorStyle.Render(">")
			}
			s.WriteString(fmt.Sprintf("%s %s %s\n", cursor, project.Name,
				dimStyle.Render("- "+project.DisplayDescription())))
		}
		s.WriteString("\n")
		s.WriteString(m.footer(m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.Build, m.keys.Quit))

	case stateProjectDetails:
		p := m.projects[m.cursor]
		s.WriteString(titleStyle.Render("Project Details"))
		s.WriteString("\n\n")
		s.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Project Name:"), p.Name))
		s.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Description:"), p.DisplayDescription()))
		s.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Path:"), p.Path))
		s.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("You can run this project from:"), p.BuildOutputPath()))
		s.WriteString("\n")
		s.WriteString(m.footer(m.keys.Back, m.keys.Build, m.keys.Quit))

	case stateBuilding:
		p := m.projects[m.cursor]
		s.WriteString(m.spinner.View())
		s.WriteString(fmt.Sprintf(" Running 'cargo build --release' for %s...\n", p.Name))

	case stateBuildOutput:
		p := m.projects[m.cursor]
		s.WriteString(successStyle.Render(fmt.Sprintf("Build succeeded for %s", p.Name)))
		s.WriteString("\n\n")
		s.WriteString(m.buildOutput)
		s.WriteString(fmt.Sprintf("\nYou can run this project from: %s\n\n", p.BuildOutputPath()))
		s.WriteString(m.footer(m.keys.Back, m.keys.Quit))

	case stateError:
		s.WriteString(errorStyle.Render("Error"))
		s.WriteString("\n\n")
		s.WriteString(fmt.Sprintf("%v\n\n", m.err))
		s.WriteString(m.footer(m.keys.Back, m.keys.Quit))
	}

	return s.String()
}

// footer renders the help line for the given bindings.
func (m Model) footer(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, fmt.Sprintf("%s %s",
			footerKeyStyle.Render(b.Help().Key),
			footerStyle.Render(b.Help().Desc)))
	}
	return strings.Join(parts, footerSeparatorStyle.Render(" | ")) + "\n"
}
