package twothree

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidArgument is returned by Put for a nil value. The tree is
	// left untouched.
	ErrInvalidArgument = errors.New("twothree: invalid argument")
	// ErrUnimplemented is returned by Delete.
	ErrUnimplemented = errors.New("twothree: unimplemented")
	// ErrInternalConsistency marks a broken structural invariant. A tree that
	// reported it refuses further mutation.
	ErrInternalConsistency = errors.New("twothree: internal consistency fault")
)

// violation builds an assertion failure that matches ErrInternalConsistency.
func violation(format string, args ...interface{}) error {
	return errors.Mark(errors.AssertionFailedf(format, args...), ErrInternalConsistency)
}
