package cli

import (
	"bytes"
	"context"
	"io"
	"syscall"

	"github.com/google/uuid"
	"github.com/mattn/go-shellwords"
	"golang.org/x/sync/errgroup"

	"github.com/TKChattoraj/bitcoin-first/internal/errors"
	"github.com/TKChattoraj/bitcoin-first/internal/exec"
)

// RunCommand executes a single command line and blocks until the child process exited. The command line is split
// into an executable and its arguments using shell-style word-splitting rules. If `stdin` is non-nil, its contents
// are delivered verbatim to the child's standard input, which is closed afterwards.
//
// Both output streams are captured in full; the returned ProcessResult is only handed out once the child is gone.
// A nil error with a non-zero ExitCode means the process ran but failed; a non-nil error means we never got that
// far (bad command line, or the OS refused to start the process).
func (s Service) RunCommand(ctx context.Context, commandLine string, stdin *string) (exec.ProcessResult, error) {
	args, err := shellwords.Parse(commandLine)
	if err != nil {
		return exec.ProcessResult{}, errors.NewInputError("unable to parse %q into shell arguments: %s", commandLine, err)
	}

	if len(args) == 0 {
		return exec.ProcessResult{}, errors.NewInputError("no command was provided")
	}

	cmd, err := s.TaskRunner.NewCommand(ctx, exec.CommandConfig{Name: args[0], Args: args[1:]})
	if err != nil {
		return exec.ProcessResult{}, errors.NewSystemError("unable to construct sub-process: %s", err)
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return exec.ProcessResult{}, errors.NewSystemError("unable to attach to stdout of sub-process: %s", err)
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return exec.ProcessResult{}, errors.NewSystemError("unable to attach to stderr of sub-process: %s", err)
	}

	var stdinPipe io.WriteCloser
	if stdin != nil {
		stdinPipe, err = cmd.StdinPipe()
		if err != nil {
			return exec.ProcessResult{}, errors.NewSystemError("unable to attach to stdin of sub-process: %s", err)
		}
	}

	invocationID := uuid.NewString()

	s.Log.Debugf("%s: executing %q", invocationID, commandLine)
	if err := cmd.Start(); err != nil {
		return exec.ProcessResult{}, errors.NewSpawnError("unable to start process(%s): %s", commandLine, err)
	}
	defer s.Log.Debugf("%s: finished executing %q", invocationID, commandLine)

	var stdoutBuf, stderrBuf bytes.Buffer

	// The child's output needs to be drained while its input is still being written. Writing the full payload
	// up-front and reading afterwards can deadlock once payload and output together exceed the OS pipe buffers.
	g := new(errgroup.Group)
	g.Go(func() error {
		_, err := io.Copy(&stdoutBuf, stdout)
		return err
	})
	g.Go(func() error {
		_, err := io.Copy(&stderrBuf, stderr)
		return err
	})
	if stdin != nil {
		g.Go(func() error {
			// Closing the pipe signals end-of-input to the child, regardless of whether the write succeeded.
			defer stdinPipe.Close()

			if _, err := io.WriteString(stdinPipe, *stdin); err != nil && !errors.Is(err, syscall.EPIPE) {
				// A child is free to exit without consuming its input.
				return err
			}

			return nil
		})
	}

	pipeErr := g.Wait()
	waitErr := cmd.Wait()

	if pipeErr != nil {
		return exec.ProcessResult{}, errors.NewSystemError("unable to communicate with sub-process: %s", pipeErr)
	}

	result := exec.ProcessResult{Stdout: stdoutBuf.String(), Stderr: stderrBuf.String()}

	if waitErr != nil {
		exitCode, err := s.TaskRunner.GetExitStatusFromError(waitErr)
		if err != nil {
			return exec.ProcessResult{}, errors.NewSystemError("error during process execution: %s", waitErr)
		}

		result.ExitCode = exitCode
	}

	return result, nil
}
