package mocks

import (
	"io"

	"github.com/TKChattoraj/bitcoin-first/internal/errors"
)

// Command is a mocked implementation of 'exec.Command'.
type Command struct {
	MockStart      func() error
	MockWait       func() error
	MockStdinPipe  func() (io.WriteCloser, error)
	MockStdoutPipe func() (io.ReadCloser, error)
	MockStderrPipe func() (io.ReadCloser, error)
}

// Start either calls the configured mock of itself or returns an error if that doesn't exist.
func (c *Command) Start() error {
	if c.MockStart != nil {
		return c.MockStart()
	}

	return errors.NewConfigurationError("MockStart was not configured")
}

// Wait either calls the configured mock of itself or returns an error if that doesn't exist.
func (c *Command) Wait() error {
	if c.MockWait != nil {
		return c.MockWait()
	}

	return errors.NewConfigurationError("MockWait was not configured")
}

// StdinPipe either calls the configured mock of itself or returns an error if that doesn't exist.
func (c *Command) StdinPipe() (io.WriteCloser, error) {
	if c.MockStdinPipe != nil {
		return c.MockStdinPipe()
	}

	return nil, errors.NewConfigurationError("MockStdinPipe was not configured")
}

// StdoutPipe either calls the configured mock of itself or returns an error if that doesn't exist.
func (c *Command) StdoutPipe() (io.ReadCloser, error) {
	if c.MockStdoutPipe != nil {
		return c.MockStdoutPipe()
	}

	return nil, errors.NewConfigurationError("MockStdoutPipe was not configured")
}

// StderrPipe either calls the configured mock of itself or returns an error if that doesn't exist.
func (c *Command) StderrPipe() (io.ReadCloser, error) {
	if c.MockStderrPipe != nil {
		return c.MockStderrPipe()
	}

	return nil, errors.NewConfigurationError("MockStderrPipe was not configured")
}
