// SPDX-License-Identifier: Apache-2.0

package menu

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"
	"testing"
	"time"

	"crate-manager/internal/discovery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProjects() []discovery.Project {
	return []discovery.Project{
		{Name: "project_one", Description: "My first Rust project", Path: "/home/user/rust/project_one"},
		{Name: "project_two", Description: "Another Rust project", Path: "/home/user/rust/project_two"},
		{Name: "project_three", Path: "/home/user/rust/project_three"},
	}
}

func TestClassifySelection(t *testing.T) {
	tests := []struct {
		input string
		count int
		want  Selection
	}{
		{"q", 3, Selection{Kind: SelectionQuit}},
		{"Q", 3, Selection{Kind: SelectionQuit}},
		{"  q  ", 3, Selection{Kind: SelectionQuit}},
		{"1", 3, Selection{Kind: SelectionIndex, Index: 1}},
		{" 2 ", 3, Selection{Kind: SelectionIndex, Index: 2}},
		{"3", 3, Selection{Kind: SelectionIndex, Index: 3}}, // boundary: equal to listing length
		{"4", 3, Selection{Kind: SelectionInvalid}},         // length+1 is out of range
		{"0", 3, Selection{Kind: SelectionInvalid}},
		{"-1", 3, Selection{Kind: SelectionInvalid}},
		{"abc", 3, Selection{Kind: SelectionInvalid}},
		{"", 3, Selection{Kind: SelectionInvalid}},
		{"1", 0, Selection{Kind: SelectionInvalid}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q/%d", tt.input, tt.count), func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifySelection(tt.input, tt.count))
		})
	}
}

func TestWriteListing(t *testing.T) {
	var out bytes.Buffer
	WriteListing(&out, testProjects())

	want := "1. project_one - My first Rust project\n" +
		"2. project_two - Another Rust project\n" +
		"3. project_three - No description\n"
	assert.Equal(t, want, out.String())
}

func TestWriteDetails(t *testing.T) {
	var out bytes.Buffer
	WriteDetails(&out, testProjects()[2])

	got := out.String()
	assert.Contains(t, got, "Project Name: project_three\n")
	assert.Contains(t, got, "Description: No description\n")
	assert.Contains(t, got, "Path: /home/user/rust/project_three\n")
	assert.Contains(t, got, "You can run this project from: /home/user/rust/project_three/target/release\n")
}

func TestControllerRun_SelectThenQuit(t *testing.T) {
	in := strings.NewReader("1\nq\n")
	var out bytes.Buffer

	NewController(testProjects(), in, &out, nil).Run()

	got := out.String()
	assert.Contains(t, got, "1. project_one - My first Rust project")
	assert.Contains(t, got, "Enter the number of the project to view details, or 'q' to quit:")
	assert.Contains(t, got, "Project Name: project_one")
	assert.Contains(t, got, "You can run this project from: /home/user/rust/project_one/target/release")
	assert.Contains(t, got, "Exiting.")
}

func TestControllerRun_InvalidInputsReprompt(t *testing.T) {
	in := strings.NewReader("0\nabc\n4\n\n2\nq\n")
	var out bytes.Buffer

	NewController(testProjects(), in, &out, nil).Run()

	got := out.String()
	// Invalid entries produce a short error and a fresh prompt, never a crash
	// and never a reprinted listing.
	assert.Contains(t, got, "Invalid selection. Please enter a valid project number.")
	assert.Contains(t, got, "Please enter a valid number or 'q' to quit.")
	assert.Equal(t, 1, strings.Count(got, "1. project_one"), "listing must be rendered exactly once")
	assert.Equal(t, 6, strings.Count(got, "> "))
	assert.Contains(t, got, "Project Name: project_two")
}

func TestControllerRun_EndOfInputQuits(t *testing.T) {
	var out bytes.Buffer

	done := make(chan struct{})
	go func() {
		NewController(testProjects(), strings.NewReader(""), &out, nil).Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("controller did not stop at end of input")
	}
}

func TestControllerRun_InterruptStopsBlockedRead(t *testing.T) {
	// io.Pipe never delivers a line, so the controller stays blocked on the
	// read until the interrupt arrives.
	pr, pw := io.Pipe()
	defer pw.Close()
	var out bytes.Buffer

	interrupt := make(chan os.Signal, 1)
	done := make(chan struct{})
	go func() {
		NewController(testProjects(), pr, &out, interrupt).Run()
		close(done)
	}()

	interrupt <- syscall.SIGINT

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("controller did not stop on interrupt")
	}
}

func TestControllerRun_EmptyListing(t *testing.T) {
	var out bytes.Buffer
	NewController(nil, strings.NewReader("1\n"), &out, nil).Run()

	require.Equal(t, "No Cargo projects found.\n", out.String())
}
