// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"testing"

	"crate-manager/internal/discovery"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loadedModel() Model {
	m := InitialModel()
	updated, _ := m.Update(projectsLoadedMsg{projects: []discovery.Project{
		{Name: "alpha", Path: "/r/alpha"},
		{Name: "beta", Path: "/r/beta"},
	}})
	return updated.(Model)
}

func TestUpdate_ProjectsLoaded(t *testing.T) {
	m := loadedModel()
	assert.Equal(t, stateProjectList, m.currentState)
	require.Len(t, m.projects, 2)
}

func TestUpdate_EmptyScanBecomesError(t *testing.T) {
	m := InitialModel()
	updated, _ := m.Update(projectsLoadedMsg{})
	assert.Equal(t, stateError, updated.(Model).currentState)
}

func TestUpdate_CursorMovement(t *testing.T) {
	m := loadedModel()

	updated, _ := m.Update(keyMsg("j"))
	m = updated.(Model)
	assert.Equal(t, 1, m.cursor)

	// Cursor stops at the bottom of the list.
	updated, _ = m.Update(keyMsg("j"))
	m = updated.(Model)
	assert.Equal(t, 1, m.cursor)

	updated, _ = m.Update(keyMsg("k"))
	m = updated.(Model)
	assert.Equal(t, 0, m.cursor)

	updated, _ = m.Update(keyMsg("k"))
	m = updated.(Model)
	assert.Equal(t, 0, m.cursor)
}

func TestUpdate_EnterShowsDetailsAndEscReturns(t *testing.T) {
	m := loadedModel()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	assert.Equal(t, stateProjectDetails, m.currentState)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	assert.Equal(t, stateProjectList, m.currentState)
}

func TestUpdate_QuitFromList(t *testing.T) {
	m := loadedModel()
	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView_ListRendersProjects(t *testing.T) {
	m := loadedModel()
	view := m.View()
	assert.Contains(t, view, "alpha")
	assert.Contains(t, view, "beta")
	assert.Contains(t, view, "No description")
}
