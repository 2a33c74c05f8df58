// Package runner executes the maintenance command once the host is
// declared idle.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"onidle/internal/logging"
)

// Result describes the outcome of a launched maintenance command.
type Result struct {
	// ExitCode is the command's exit status; zero on success.
	ExitCode int
}

// ActionRunner runs the configured command as a child process with
// inherited standard streams, so the maintenance task's own output
// stays visible to the operator.
type ActionRunner struct {
	logger *logging.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewActionRunner creates a runner wired to this process's standard
// streams.
func NewActionRunner(logger *logging.Logger) *ActionRunner {
	return &ActionRunner{
		logger: logger,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// Run launches cmdline and waits for it to finish. A command that
// starts but exits non-zero is reported in the result, not as an
// error; only a failure to launch is an error.
func (r *ActionRunner) Run(ctx context.Context, cmdline []string) (Result, error) {
	if len(cmdline) == 0 {
		return Result{}, errors.New("empty command line")
	}

	cmd := exec.CommandContext(ctx, cmdline[0], cmdline[1:]...)
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	r.logger.Info("action.started", "Launching maintenance command", map[string]interface{}{
		"command": cmdline,
	})

	if err := cmd.Start(); err != nil {
		r.logger.Error("action.launch.failed", "Failed to launch maintenance command", map[string]interface{}{
			"command": cmdline,
			"error":   err.Error(),
		})
		return Result{}, fmt.Errorf("failed to start %s: %w", cmdline[0], err)
	}

	err := cmd.Wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		r.logger.Warn("action.exit.nonzero", "Maintenance command exited non-zero", map[string]interface{}{
			"command":   cmdline,
			"exit_code": code,
		})
		return Result{ExitCode: code}, nil
	}
	if err != nil {
		// Wait failures other than a non-zero exit, e.g. I/O trouble
		// on the inherited streams.
		return Result{}, fmt.Errorf("waiting for %s: %w", cmdline[0], err)
	}

	r.logger.Info("action.done", "Maintenance command finished", map[string]interface{}{
		"exit_code": 0,
	})
	return Result{ExitCode: 0}, nil
}
