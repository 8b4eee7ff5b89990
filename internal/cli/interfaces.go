package cli

import (
	"context"

	"github.com/TKChattoraj/bitcoin-first/internal/exec"
	"github.com/TKChattoraj/bitcoin-first/internal/fs"
)

// FileSystem is an abstraction over file-systems. This is implemented by the default `os` package and can also be
// used for mocking.
type FileSystem interface {
	Open(name string) (fs.File, error)
	ReadFile(name string) ([]byte, error)
}

// TaskRunner is an abstraction over various task-runners / execution environments.
// They are expected to return the `exec.Command` interface in turn, which is mapped to the Command type from
// `os/exec`
type TaskRunner interface {
	NewCommand(ctx context.Context, cfg exec.CommandConfig) (exec.Command, error)
	GetExitStatusFromError(error) (int, error)
}
