package moderation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidAction     = errors.New("invalid action")
	ErrRequestNotFound   = errors.New("verification request not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidTransition = errors.New("verification request is not pending")
)

// PartialCompletionError reports a multi-step action that stopped after
// some steps were already written. Nothing is rolled back; the operator
// reconciles by hand.
type PartialCompletionError struct {
	Completed []string
	Failed    string
	Err       error
}

func (e *PartialCompletionError) Error() string {
	return fmt.Sprintf("partially completed (done: %s; failed: %s): %v",
		strings.Join(e.Completed, ", "), e.Failed, e.Err)
}

func (e *PartialCompletionError) Unwrap() error { return e.Err }

// IsPartial reports whether err leaves persisted state half applied.
func IsPartial(err error) bool {
	var pe *PartialCompletionError
	return errors.As(err, &pe)
}
