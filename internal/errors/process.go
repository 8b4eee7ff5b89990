package errors

import "golang.org/x/xerrors"

// SpawnError is returned when the operating system could not create a sub-process at all. The wrapped error carries
// the OS's own diagnostic text.
type SpawnError struct {
	E error
}

// NewSpawnError returns a new SpawnError
func NewSpawnError(msg string, a ...any) SpawnError {
	return SpawnError{E: xerrors.Errorf(msg, a...)}
}

// AsSpawnError checks whether the error is a spawn error
func AsSpawnError(err error) (SpawnError, bool) {
	var e SpawnError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e SpawnError) Error() string {
	return e.E.Error()
}

// Description returns a detailed explanation of this error
func (e SpawnError) Description() string {
	return "The operating system was unable to start the requested process."
}

// Resolution returns a possible resolution of this error
func (e SpawnError) Resolution() string {
	return "Please make sure that the executable exists, is marked as executable, and can be found in your PATH."
}

// Type returns a unique title for this error
func (e SpawnError) Type() string {
	return "Spawn Error"
}

// CommandError is returned when a sub-process started, but exited with a non-zero status code. It stores the exit
// code and whatever the process printed to its standard error.
type CommandError struct {
	E      error
	Code   int
	Stderr string
}

// NewCommandError returns a new CommandError
func NewCommandError(code int, stderr string, msg string, a ...any) CommandError {
	return CommandError{E: xerrors.Errorf(msg, a...), Code: code, Stderr: stderr}
}

// AsCommandError checks whether the error is a command error
func AsCommandError(err error) (CommandError, bool) {
	var e CommandError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e CommandError) Error() string {
	return e.E.Error()
}

// Description returns a detailed explanation of this error
func (e CommandError) Description() string {
	return "The process started, but exited with a non-zero status code."
}

// Resolution returns a possible resolution of this error
func (e CommandError) Resolution() string {
	return "Run the command on its own to inspect its output. Its standard error, if any, is included in the message above."
}

// Type returns a unique title for this error
func (e CommandError) Type() string {
	return "Command Error"
}

// ParseError is returned when a sub-process exited successfully, but its output was not a valid JSON document. It
// stores the raw output that failed to parse.
type ParseError struct {
	E      error
	Output string
}

// NewParseError returns a new ParseError
func NewParseError(output string, msg string, a ...any) ParseError {
	return ParseError{E: xerrors.Errorf(msg, a...), Output: output}
}

// AsParseError checks whether the error is a parse error
func AsParseError(err error) (ParseError, bool) {
	var e ParseError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e ParseError) Error() string {
	return e.E.Error()
}

// Description returns a detailed explanation of this error
func (e ParseError) Description() string {
	return "The process exited successfully, but its output could not be parsed as JSON."
}

// Resolution returns a possible resolution of this error
func (e ParseError) Resolution() string {
	return "Please make sure that the command prints a single JSON document to its standard output."
}

// Type returns a unique title for this error
func (e ParseError) Type() string {
	return "Parse Error"
}
