package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can branch without string matching.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalidFormat
	KindToolUnavailable
	KindExecutionFailure
	KindSerialization
	KindConstraintViolation
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidFormat:
		return "invalid_format"
	case KindToolUnavailable:
		return "tool_unavailable"
	case KindExecutionFailure:
		return "execution_failure"
	case KindSerialization:
		return "serialization_error"
	case KindConstraintViolation:
		return "constraint_violation"
	default:
		return "unknown"
	}
}

// Error is the single error type returned across package boundaries.
// Op names the failing operation, Detail carries captured diagnostics such as
// the stderr of an external process.
type Error struct {
	Kind     Kind
	Op       string
	Message  string
	Detail   string
	ExitCode int
	Err      error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so the package-level sentinels
// work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Op == "" && t.Message == ""
}

// Sentinels for errors.Is.
var (
	ErrNotFound            = &Error{Kind: KindNotFound}
	ErrInvalidFormat       = &Error{Kind: KindInvalidFormat}
	ErrToolUnavailable     = &Error{Kind: KindToolUnavailable}
	ErrExecutionFailure    = &Error{Kind: KindExecutionFailure}
	ErrSerialization       = &Error{Kind: KindSerialization}
	ErrConstraintViolation = &Error{Kind: KindConstraintViolation}
)

func NotFound(op, format string, args ...any) error {
	return &Error{Kind: KindNotFound, Op: op, Message: fmt.Sprintf(format, args...)}
}

func InvalidFormat(op, format string, args ...any) error {
	return &Error{Kind: KindInvalidFormat, Op: op, Message: fmt.Sprintf(format, args...)}
}

func ConstraintViolation(op, format string, args ...any) error {
	return &Error{Kind: KindConstraintViolation, Op: op, Message: fmt.Sprintf(format, args...)}
}

// ToolUnavailable reports an execution target that could not be located or started.
func ToolUnavailable(op string, err error, format string, args ...any) error {
	return &Error{Kind: KindToolUnavailable, Op: op, Message: fmt.Sprintf(format, args...), Err: err}
}

// ExecutionFailure reports a target that ran and failed. stderr is kept verbatim in Detail.
func ExecutionFailure(op string, exitCode int, stderr string, err error) error {
	return &Error{Kind: KindExecutionFailure, Op: op, Message: "execution failed", Detail: stderr, ExitCode: exitCode, Err: err}
}

func Serialization(op string, err error) error {
	return &Error{Kind: KindSerialization, Op: op, Message: "serialization failed", Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func IsNotFound(err error) bool        { return errors.Is(err, ErrNotFound) }
func IsToolUnavailable(err error) bool { return errors.Is(err, ErrToolUnavailable) }
