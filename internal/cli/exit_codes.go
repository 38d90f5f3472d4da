package cli

import (
	"errors"
	"fmt"
)

// Exit codes for the pomodoro CLI
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure
	ExitFailure = 1

	// ExitInvalidArguments indicates invalid arguments or configuration
	ExitInvalidArguments = 2
)

// exitError carries an exit code alongside the error that caused it.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit code %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// NewExitError wraps err with the given exit code.
func NewExitError(code int, err error) error {
	return &exitError{code: code, err: err}
}

// ExitCode returns the exit code for err. Errors without an explicit code
// map to ExitFailure.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var e *exitError
	if errors.As(err, &e) {
		return e.code
	}
	return ExitFailure
}
