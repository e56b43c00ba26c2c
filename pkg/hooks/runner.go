// Package hooks executes the configured start and exit shell commands.
package hooks

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/brb-sh/brb/pkg/logger"
)

// Phase names a hook lifecycle phase.
type Phase string

const (
	PhaseStart Phase = "start"
	PhaseExit  Phase = "exit"
)

// Runner executes hook commands strictly in list order. A command that
// fails or times out is logged and the phase continues; the rest of the
// application never sees a hook error.
type Runner struct {
	timeout time.Duration
}

// NewRunner creates a runner with a per-command timeout.
func NewRunner(timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Runner{timeout: timeout}
}

// RunPhase runs every command of a phase sequentially and returns once
// all have finished. It returns the number of commands that failed,
// which callers only use for logging and tests.
func (r *Runner) RunPhase(ctx context.Context, phase Phase, commands []string) int {
	failed := 0
	for _, command := range commands {
		if err := r.runOne(ctx, command); err != nil {
			logger.Warn("%s hook %q failed: %v", phase, command, err)
			failed++
			continue
		}
		logger.Debug("%s hook %q completed", phase, command)
	}
	return failed
}

func (r *Runner) runOne(ctx context.Context, command string) error {
	command = strings.TrimSpace(command)
	if command == "" {
		return nil
	}

	cmdCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	// sh -c keeps pipes and quoting working. All streams are detached:
	// any output would corrupt the terminal UI.
	cmd := exec.CommandContext(cmdCtx, "sh", "-c", command)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	err := cmd.Run()
	if cmdCtx.Err() == context.DeadlineExceeded {
		return context.DeadlineExceeded
	}
	return err
}
