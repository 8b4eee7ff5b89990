// Package errors is our internal errors package. It should be used in place of the standard "errors" package,
// "golang.org/x/xerrors", or "fmt.Errorf".
// This package ensures that all errors have a correct category & collect stack-traces.
package errors

import "golang.org/x/xerrors"

// ConfigurationError represent a configuration error. When used, it should ideally also point towards the configuration
// value that caused this error to occur.
type ConfigurationError struct {
	E error
}

// NewConfigurationError returns a new ConfigurationError
func NewConfigurationError(msg string, a ...any) ConfigurationError {
	return ConfigurationError{E: xerrors.Errorf(msg, a...)}
}

// AsConfigurationError checks whether the error is a configuration error
func AsConfigurationError(err error) (ConfigurationError, bool) {
	var e ConfigurationError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e ConfigurationError) Error() string {
	return e.E.Error()
}

// InputError is an error caused by user input
type InputError struct {
	E error
}

// NewInputError returns a new InputError
func NewInputError(msg string, a ...any) InputError {
	return InputError{E: xerrors.Errorf(msg, a...)}
}

// AsInputError checks whether the error is an input error
func AsInputError(err error) (InputError, bool) {
	var e InputError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e InputError) Error() string {
	return e.E.Error()
}

// InternalError is an internal error. This error type should only be used if an end-user cannot act upon it and would
// need to reach out to us for support.
type InternalError struct {
	E error
}

// NewInternalError returns a new InternalError
func NewInternalError(msg string, a ...any) InternalError {
	return InternalError{E: xerrors.Errorf(msg, a...)}
}

// AsInternalError checks whether the error is an internal error
func AsInternalError(err error) (InternalError, bool) {
	var e InternalError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e InternalError) Error() string {
	return e.E.Error()
}

// SystemError is returned when we encountered a system error. This is most likely either an error during a file read
// or an unexpected failure while interacting with a sub-process.
type SystemError struct {
	E error
}

// NewSystemError returns a new SystemError
func NewSystemError(msg string, a ...any) SystemError {
	return SystemError{E: xerrors.Errorf(msg, a...)}
}

// AsSystemError checks whether the error is a system error
func AsSystemError(err error) (SystemError, bool) {
	var e SystemError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e SystemError) Error() string {
	return e.E.Error()
}
