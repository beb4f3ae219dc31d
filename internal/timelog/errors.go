package timelog

import (
	"errors"
	"fmt"
)

// ErrSessionInProgress is returned by Begin when a current session already exists.
var ErrSessionInProgress = errors.New("there is already a current session")

// ErrNoCurrentSession is returned by End and Cancel when nothing is in progress.
var ErrNoCurrentSession = errors.New("there is no current session")

// ErrMultilineMessage rejects completion messages spanning several lines.
var ErrMultilineMessage = errors.New("a message for a completed session must be one line")

// ErrInvalidLog marks a decoded log whose sessions break the model's shape.
var ErrInvalidLog = errors.New("invalid log")

// Fixup parse failures. Each one is reported wrapped in a *ParseError.
var (
	ErrMalformedLine      = errors.New("line does not match the log entry format")
	ErrCurrentWithMessage = errors.New("the current session must not have a message")
	ErrMultipleCurrent    = errors.New("only one current session allowed")
	ErrMissingMessage     = errors.New("a completed session must have a message")
	ErrInvalidTimestamp   = errors.New("invalid timestamp")
)

// ParseError points at the fixup line that could not be accepted.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
