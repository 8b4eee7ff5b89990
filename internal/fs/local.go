// Package fs is a thin wrapper around potential file-systems. By default, it is an abstraction over the `os` package
// from the standard library.
package fs

import (
	"io"
	"os"

	"github.com/TKChattoraj/bitcoin-first/internal/errors"
)

// Local is a local file-system. It wraps the default `os` package
type Local struct{}

// Open opens a file for further processing
func (l Local) Open(name string) (File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.NewSystemError("unable to open file: %s", err)
	}

	return f, nil
}

// ReadFile returns the full contents of the named file.
func (l Local) ReadFile(name string) ([]byte, error) {
	f, err := l.Open(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.NewSystemError("unable to read from file: %s", err)
	}

	return data, nil
}
