package mocks

import (
	"github.com/TKChattoraj/bitcoin-first/internal/errors"
	"github.com/TKChattoraj/bitcoin-first/internal/fs"
)

// FileSystem is a mocked implementation of 'cli.FileSystem'.
type FileSystem struct {
	MockOpen     func(name string) (fs.File, error)
	MockReadFile func(name string) ([]byte, error)
}

// Open either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) Open(name string) (fs.File, error) {
	if f.MockOpen != nil {
		return f.MockOpen(name)
	}

	return nil, errors.NewConfigurationError("MockOpen was not configured")
}

// ReadFile either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) ReadFile(name string) ([]byte, error) {
	if f.MockReadFile != nil {
		return f.MockReadFile(name)
	}

	return nil, errors.NewConfigurationError("MockReadFile was not configured")
}
