// Package errors defines the coded error type shown to vitals users.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Codes group failures by the stage of the pipeline that produced them.
const (
	ErrConfig   = "CONFIG"   // loading, validating or writing the config file
	ErrLayout   = "LAYOUT"   // resolving a viewport into panel regions
	ErrCollect  = "COLLECT"  // sampling /proc
	ErrPaint    = "PAINT"    // drawing a panel onto the canvas
	ErrTerminal = "TERMINAL" // the terminal itself is unusable
)

// Error is a failure with enough context for the user to act on it. It
// prints as a block:
//
//	✗ Failed to read CPU usage
//
//	  open stat: no such file or directory
//
//	  vitals reads /proc and needs a Linux host with procfs mounted.
//
// The cause and suggestion lines are omitted when empty.
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New returns an Error with no underlying cause.
func New(code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion}
}

// WrapWithCode attaches a code, message and suggestion to err. The result
// unwraps to err, so sentinel checks with errors.Is keep working.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion, Cause: err}
}

func (e *Error) Error() string {
	sections := []string{"✗ " + e.Message}
	if e.Cause != nil {
		sections = append(sections, "  "+e.Cause.Error())
	}
	if e.Suggestion != "" {
		sections = append(sections, "  "+e.Suggestion)
	}
	return strings.Join(sections, "\n\n") + "\n"
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode reports whether the first *Error in err's chain carries code.
func IsCode(err error, code string) bool {
	var coded *Error
	return errors.As(err, &coded) && coded.Code == code
}

// ExitError ends the process with Code and prints nothing. Commands return
// it when the user has already seen why, e.g. after aborting a prompt.
type ExitError struct {
	Code int
}

// NewExitError returns an ExitError for code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// GetExitCode returns the code of the first ExitError in err's chain.
func GetExitCode(err error) (int, bool) {
	var exit *ExitError
	if errors.As(err, &exit) {
		return exit.Code, true
	}
	return 0, false
}
