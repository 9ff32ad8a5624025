package refill

import "github.com/pkg/errors"

// PreconditionError reports a violated precondition on a public operation —
// a caller bug, never a recoverable runtime condition. A kernel embedding
// this engine would typically treat any PreconditionError as fatal at its
// own call boundary.
type PreconditionError struct {
	Op  string
	msg string
}

func (e *PreconditionError) Error() string {
	return e.Op + ": " + e.msg
}

func precondition(op, msg string) error {
	return &PreconditionError{Op: op, msg: msg}
}

func preconditionf(op, format string, args ...any) error {
	return &PreconditionError{Op: op, msg: errors.Errorf(format, args...).Error()}
}
