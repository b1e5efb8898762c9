package workflow

import "github.com/cockroachdb/errors"

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrTerminalState     = errors.New("record is in a terminal state")
	ErrInconsistentState = errors.New("inconsistent status and level")
	ErrNotPermitted      = errors.New("action not permitted")
)

// IsRejectedTransition groups the errors raised when the action itself does
// not fit the record, as opposed to the actor.
func IsRejectedTransition(err error) bool {
	return errors.IsAny(err, ErrInvalidTransition, ErrTerminalState, ErrInconsistentState)
}
