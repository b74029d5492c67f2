// SPDX-License-Identifier: Apache-2.0

// Package menu implements the interactive numbered project selector driven
// over a line-based reader/writer pair (stdin/stdout in production).
package menu

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"crate-manager/internal/discovery"
	"crate-manager/internal/logger"
)

// SelectionKind classifies one line of user input.
type SelectionKind int

const (
	SelectionQuit    SelectionKind = iota // the quit token ("q", any case)
	SelectionIndex                        // a valid 1-based project number
	SelectionInvalid                      // anything else: empty, non-numeric, out of range
)

// Selection is the result of classifying one line of input.
type Selection struct {
	Kind  SelectionKind
	Index int // 1-based, set only for SelectionIndex
}

// ClassifySelection trims the input line and resolves it against a listing
// of projectCount entries.
func ClassifySelection(input string, projectCount int) Selection {
	trimmed := strings.TrimSpace(input)

	if strings.EqualFold(trimmed, "q") {
		return Selection{Kind: SelectionQuit}
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 1 || n > projectCount {
		return Selection{Kind: SelectionInvalid}
	}

	return Selection{Kind: SelectionIndex, Index: n}
}

// WriteListing renders the numbered project listing, one line per project.
func WriteListing(w io.Writer, projects []discovery.Project) {
	for i, p := range projects {
		fmt.Fprintf(w, "%d. %s - %s\n", i+1, p.Name, p.DisplayDescription())
	}
}

// WriteDetails renders the detail view for a single project.
func WriteDetails(w io.Writer, p discovery.Project) {
	fmt.Fprintf(w, "Project Name: %s\n", p.Name)
	fmt.Fprintf(w, "Description: %s\n", p.DisplayDescription())
	fmt.Fprintf(w, "Path: %s\n", p.Path)
	fmt.Fprintf(w, "You can run this project from: %s\n", p.BuildOutputPath())
}

// Controller drives the listing/prompt/detail loop until the user quits,
// input ends, or an interrupt arrives.
type Controller struct {
	projects  []discovery.Project
	in        io.Reader
	out       io.Writer
	interrupt <-chan os.Signal
}

// NewController builds a Controller. The interrupt channel may be nil when
// no signal handling is wanted (tests).
func NewController(projects []discovery.Project, in io.Reader, out io.Writer, interrupt <-chan os.Signal) *Controller {
	return &Controller{
		projects:  projects,
		in:        in,
		out:       out,
		interrupt: interrupt,
	}
}

// Run renders the listing and then blocks on one line of input per
// iteration. Reading happens on a separate goroutine feeding a channel, so
// an interrupt delivered mid-read still terminates the loop promptly.
func (c *Controller) Run() {
	if len(c.projects) == 0 {
		fmt.Fprintln(c.out, "No Cargo projects found.")
		return
	}

	WriteListing(c.out, c.projects)
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Enter the number of the project to view details, or 'q' to quit:")

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		if err := scanner.Err(); err != nil {
			logger.Warn("Error reading selection input", "error", err)
		}
		close(lines)
	}()

	for {
		fmt.Fprint(c.out, "> ")

		select {
		case <-c.interrupt:
			// Bare newline so the shell prompt lands on its own line.
			fmt.Fprintln(c.out)
			logger.Info("Interrupt received, leaving interactive menu")
			return
		case line, ok := <-lines:
			if !ok {
				// End of input behaves like quit.
				fmt.Fprintln(c.out)
				return
			}

			sel := ClassifySelection(line, len(c.projects))
			switch sel.Kind {
			case SelectionQuit:
				fmt.Fprintln(c.out, "Exiting.")
				return
			case SelectionIndex:
				WriteDetails(c.out, c.projects[sel.Index-1])
			default:
				if _, err := strconv.Atoi(strings.TrimSpace(line)); err == nil {
					fmt.Fprintln(c.out, "Invalid selection. Please enter a valid project number.")
				} else {
					fmt.Fprintln(c.out, "Please enter a valid number or 'q' to quit.")
				}
			}
		}
	}
}
