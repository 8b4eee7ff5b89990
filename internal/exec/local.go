// Package exec exposes various task runners that can execute arbitrary commands. This is mostly a thin wrapper around
// `os/exec` plus a mocked implementation. We could extend this in the future to support remote task runners (ssh
// comes to mind).
package exec

import (
	"context"
	"os/exec"

	"github.com/TKChattoraj/bitcoin-first/internal/errors"
)

// Local is a local executioner. It wraps `os/exec`
type Local struct{}

// NewCommand returns a new command that can then be executed. The caller is expected to attach to the command's
// standard streams through the pipe accessors before calling `Start`.
func (l Local) NewCommand(ctx context.Context, cfg CommandConfig) (Command, error) {
	//nolint:gosec // Spawning a user-configurable sub-process is expected here.
	cmd := exec.CommandContext(ctx, cfg.Name, cfg.Args...)

	for _, override := range cfg.Env {
		cmd.Env = append(cmd.Environ(), override)
	}

	return cmd, nil
}

// GetExitStatusFromError extracts the exit code from an error
func (l Local) GetExitStatusFromError(err error) (int, error) {
	var exitError *exec.ExitError
	if errors.As(err, &exitError) {
		return exitError.ExitCode(), nil
	}

	return 0, errors.NewInternalError("Expected error to be of type exec.ExitError, received %T", err)
}
