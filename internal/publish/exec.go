package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/relaykit/cli/internal/output"
)

// CommandRunner executes an external command. Stages depend on this
// interface so tests can record invocations without shelling out.
type CommandRunner interface {
	Run(ctx context.Context, program string, args ...string) error
}

// ExecRunner runs commands via os/exec, capturing output for error
// reporting. The zero value runs commands in the current directory with
// the inherited environment.
type ExecRunner struct {
	// Dir is the working directory for all commands. Empty means the
	// current directory.
	Dir string

	// Env holds extra environment variables appended to the inherited
	// environment.
	Env map[string]string

	// DryRun logs each command instead of executing it. Used by
	// `relay run --dry-run` to preview the publish plan.
	DryRun bool
}

// Run executes program with args and returns an error carrying the exit
// code and a stderr excerpt on failure.
func (r *ExecRunner) Run(ctx context.Context, program string, args ...string) error {
	display := program + " " + strings.Join(args, " ")

	if r.DryRun {
		output.Info("dry-run", "command", display)
		return nil
	}
	output.Debug("exec", "command", display, "dir", r.Dir)

	cmd := exec.CommandContext(ctx, program, args...)
	if r.Dir != "" {
		cmd.Dir = r.Dir
	}
	if len(r.Env) > 0 {
		cmd.Env = os.Environ()
		for k, v := range r.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%s exited %d: %s", program, exitErr.ExitCode(), stderrTail(&stderr))
		}
		return fmt.Errorf("running %s: %w", program, err)
	}

	return nil
}

// stderrTail returns the last few lines of stderr for compact error
// messages.
func stderrTail(buf *bytes.Buffer) string {
	const maxLines = 4

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return strings.Join(lines, " / ")
}
