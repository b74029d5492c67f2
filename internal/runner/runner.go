// SPDX-License-Identifier: Apache-2.0

// Package runner executes cargo commands inside a project directory and
// streams their output to the caller.
package runner

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
)

// OutputLine represents a chunk of command output along with its origin
// stream.
type OutputLine struct {
	Line    string
	IsError bool // true when the chunk came from stderr
}

// CommandStep describes one cargo invocation within a project directory.
type CommandStep struct {
	Name        string   // Human-readable description, used in errors
	Args        []string // Arguments passed to the cargo binary
	ProjectPath string   // Working directory for the command
}

// BuildRelease returns the step that produces release artifacts for a
// project, i.e. `cargo build --release`.
func BuildRelease(projectPath string) CommandStep {
	return CommandStep{
		Name:        "cargo build --release",
		Args:        []string{"build", "--release"},
		ProjectPath: projectPath,
	}
}

// StreamCommand executes a step and reports its output.
// If cliMode is true, output goes directly to os.Stdout/Stderr.
// If cliMode is false, output chunks are sent over the returned channel.
// Both channels are closed once the command finishes; a failure is delivered
// on the error channel before it closes.
func StreamCommand(step CommandStep, cliMode bool) (<-chan OutputLine, <-chan error) {
	// Buffer slightly so rapid output doesn't block the command in TUI mode.
	outChan := make(chan OutputLine, 10)
	errChan := make(chan error, 1)

	cmd := exec.Command("cargo", step.Args...)
	cmd.Dir = step.ProjectPath

	go func() {
		defer close(outChan)
		defer close(errChan)
		runCommand(cmd, step.Name, cliMode, outChan, errChan)
	}()

	return outChan, errChan
}

// runCommand executes a prepared command, wiring its output according to
// cliMode, and reports a single error on errChan if it fails.
func runCommand(cmd *exec.Cmd, cmdDesc string, cliMode bool, outChan chan<- OutputLine, errChan chan<- error) {
	var cmdErr error
	if cliMode {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr

		if err := cmd.Start(); err != nil {
			errChan <- fmt.Errorf("failed to start %s: %w", cmdDesc, err)
			return
		}
		cmdErr = cmd.Wait()
	} else {
		stdoutPipe, err := cmd.StdoutPipe()
		if err != nil {
			errChan <- fmt.Errorf("failed to get stdout pipe for %s: %w", cmdDesc, err)
			return
		}
		stderrPipe, err := cmd.StderrPipe()
		if err != nil {
			errChan <- fmt.Errorf("failed to get stderr pipe for %s: %w", cmdDesc, err)
			return
		}

		if err := cmd.Start(); err != nil {
			errChan <- fmt.Errorf("failed to start %s: %w", cmdDesc, err)
			return
		}

		outputDone := make(chan struct{}, 2) // Wait for both streamPipe goroutines
		go streamPipe(stdoutPipe, outChan, outputDone, false)
		go streamPipe(stderrPipe, outChan, outputDone, true)

		cmdErr = cmd.Wait()

		// Wait for pipe readers to finish *after* command Wait returns
		<-outputDone
		<-outputDone
	}

	if cmdErr != nil {
		exitCode := -1
		if exitError, ok := cmdErr.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				exitCode = status.ExitStatus()
			}
		}
		if exitCode != -1 {
			errChan <- fmt.Errorf("%s exited with status %d: %w", cmdDesc, exitCode, cmdErr)
		} else {
			errChan <- fmt.Errorf("%s failed: %w", cmdDesc, cmdErr)
		}
	}
}

// streamPipe forwards raw chunks from a command pipe onto outChan until EOF.
func streamPipe(pipe io.Reader, outChan chan<- OutputLine, doneChan chan<- struct{}, isError bool) {
	defer func() { doneChan <- struct{}{} }()
	buf := make([]byte, 1024)
	for {
		n, err := pipe.Read(buf)
		if n > 0 {
			outChan <- OutputLine{Line: string(buf[:n]), IsError: isError}
		}
		if err != nil {
			if err != io.EOF {
				fmt.Fprintf(os.Stderr, "Pipe read error (%v): %v\n", isError, err)
			}
			break
		}
	}
}
