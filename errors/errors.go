package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies a failure for the request boundary: handlers branch on the
// kind to decide between a specific flash message, a generic one, or a
// redirect.
type Kind int

const (
	Unknown Kind = iota
	Validation
	Lookup
	Persistence
	NotFound
)

// GenericRetryMessage is shown for failures the visitor cannot correct.
const GenericRetryMessage = "Something went wrong. Please try again."

type Error struct {
	Kind Kind
	// Msg is the user-facing flash text; empty means the generic message.
	Msg string
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Wrap(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format+": %w", append(args, err)...)}
}

func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// UserMessage returns the flash text to show for err. Only validation
// failures carry specific wording; everything else collapses to the generic
// retry message so internal detail stays in the logs.
func UserMessage(err error) string {
	var e *Error
	if stderrors.As(err, &e) && e.Msg != "" {
		return e.Msg
	}
	return GenericRetryMessage
}
