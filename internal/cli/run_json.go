package cli

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/TKChattoraj/bitcoin-first/internal/errors"
)

// RunCommandParseJSON executes a single command line and interprets the child's standard output as a JSON document.
// An empty command line and an empty standard output are both valid "no document" successes (nil result, nil
// error), not failures.
//
// Failures come in exactly three kinds: errors.SpawnError when the OS could not start the process,
// errors.CommandError when the process exited non-zero, and errors.ParseError when its output was not valid JSON.
func (s Service) RunCommandParseJSON(ctx context.Context, commandLine string, stdin *string) (any, error) {
	if commandLine == "" {
		return nil, nil
	}

	result, err := s.RunCommand(ctx, commandLine, stdin)
	if err != nil {
		return nil, err
	}

	if result.ExitCode != 0 {
		// Whatever the child printed to stderr is a better diagnostic than its bare exit code.
		if result.Stderr != "" {
			stderr := strings.TrimSuffix(result.Stderr, "\n")
			return nil, errors.NewCommandError(result.ExitCode, stderr, "RunCommandParseJSON error: %s", stderr)
		}

		return nil, errors.NewCommandError(
			result.ExitCode, "", "process(%s) returned %d: %s", commandLine, result.ExitCode, result.Stderr,
		)
	}

	stdout := strings.TrimSuffix(result.Stdout, "\n")
	if stdout == "" {
		return nil, nil
	}

	var document any
	if err := json.Unmarshal([]byte(stdout), &document); err != nil {
		return nil, errors.NewParseError(stdout, "unable to parse JSON: %s", err)
	}

	return document, nil
}
