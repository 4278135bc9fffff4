package naming

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes the type of failure encountered while solving,
// parsing or persisting naming data.
type ErrorKind string

const (
	// KindUsage marks contract violations at the call site: a required
	// value was not supplied, or an explicit default names a missing
	// option. The caller is expected to fix the call, not retry.
	KindUsage ErrorKind = "usage"

	// KindLookup marks dereferences of names that do not exist: an
	// unknown option key, a token referenced by a rule but never
	// registered, or solve/parse without an active rule.
	KindLookup ErrorKind = "lookup"

	// KindParse marks name strings that cannot be inverted: wrong field
	// arity, or a numeric field with no recoverable digits.
	KindParse ErrorKind = "parse"

	// KindIO marks filesystem failures while saving or loading session
	// files.
	KindIO ErrorKind = "io"

	// KindConfig marks malformed session files: unknown class tags,
	// unexpected attributes, or unrecognized naming.conf settings.
	KindConfig ErrorKind = "config"
)

// Error is the error type returned by all naming operations. Entity
// names the token or rule involved when one is known.
type Error struct {
	Kind   ErrorKind
	Entity string
	Msg    string
	Err    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	prefix := fmt.Sprintf("[%s]", e.Kind)
	if e.Entity != "" {
		prefix = fmt.Sprintf("[%s] %s:", e.Kind, e.Entity)
	}
	if e.Err != nil {
		if e.Msg != "" {
			return fmt.Sprintf("%s %s: %v", prefix, e.Msg, e.Err)
		}
		return fmt.Sprintf("%s %v", prefix, e.Err)
	}
	return fmt.Sprintf("%s %s", prefix, e.Msg)
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err is (or wraps) a naming error of the given
// kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func newError(kind ErrorKind, entity, format string, args ...any) *Error {
	return &Error{Kind: kind, Entity: entity, Msg: fmt.Sprintf(format, args...)}
}

func wrapError(kind ErrorKind, entity string, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Entity: entity, Msg: fmt.Sprintf(format, args...), Err: err}
}
