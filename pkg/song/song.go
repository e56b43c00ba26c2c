// Package song shells out to an external player CLI to fetch the
// currently playing track for the status line.
package song

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Poller fetches the current song by running an external command.
type Poller struct {
	command string
	timeout time.Duration
}

// NewPoller creates a poller around the given shell command.
func NewPoller(command string, timeout time.Duration) *Poller {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Poller{command: strings.TrimSpace(command), timeout: timeout}
}

// Poll runs the command and returns its trimmed stdout. Failures come
// back as errors; callers render them inline instead of crashing.
func (p *Poller) Poll(ctx context.Context) (string, error) {
	if p.command == "" {
		return "", fmt.Errorf("no song command configured")
	}

	cmdCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var stdout bytes.Buffer
	cmd := exec.CommandContext(cmdCtx, "sh", "-c", p.command)
	cmd.Stdout = &stdout
	cmd.Stderr = nil
	// Stdout is a pipe, so without a wait delay Run would block past the
	// kill until every process holding the write end exits.
	cmd.WaitDelay = 100 * time.Millisecond

	if err := cmd.Run(); err != nil {
		if cmdCtx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("song command timed out after %v", p.timeout)
		}
		return "", fmt.Errorf("song command failed: %w", err)
	}

	return strings.TrimSpace(stdout.String()), nil
}
