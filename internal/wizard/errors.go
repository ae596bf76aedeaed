package wizard

import "errors"

// Kind classifies a wizard failure.
type Kind string

// Failure kinds.
const (
	KindInput         Kind = "input"
	KindResolution    Kind = "resolution"
	KindCompatibility Kind = "compatibility"
	KindExecution     Kind = "execution"
	KindAborted       Kind = "aborted"
)

// Error is returned by Run for every fatal path. Msg is the line already
// shown to the user.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of the first *Error in err's chain, or "" when
// err did not come from the wizard and so has not been printed yet.
func KindOf(err error) Kind {
	var werr *Error
	if errors.As(err, &werr) {
		return werr.Kind
	}
	return ""
}

// ExitCode maps a Run result to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
