package midi

import "fmt"

// ErrorKind classifies the single error type the decoder and accessors
// raise, per the core's error policy: one error type, a variant tag, and a
// human-readable detail.
type ErrorKind int

const (
	// ErrInvalidHeader reports a malformed or unsupported MThd chunk.
	ErrInvalidHeader ErrorKind = iota
	// ErrUnexpectedEof reports a bounds check overshooting buffer_end.
	ErrUnexpectedEof
	// ErrCorrupted reports a running-status byte with no prior status, or a
	// status byte whose event length cannot be determined.
	ErrCorrupted
	// ErrOutOfRange reports an accessor called on semantically invalid bytes.
	ErrOutOfRange
	// ErrIO reports an underlying file read/write failure.
	ErrIO
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidHeader:
		return "invalid header"
	case ErrUnexpectedEof:
		return "unexpected eof"
	case ErrCorrupted:
		return "corrupted"
	case ErrOutOfRange:
		return "out of range"
	case ErrIO:
		return "io"
	default:
		return "unknown"
	}
}

// Error is the single error type raised by this package.
type Error struct {
	Kind ErrorKind
	Msg  string

	// Overshoot and Length are populated for ErrUnexpectedEof: the number
	// of bytes the cursor would run past buffer_end, and the length that
	// triggered the check.
	Overshoot int
	Length    int
}

func (e *Error) Error() string {
	if e.Kind == ErrUnexpectedEof {
		return fmt.Sprintf(
			"minimidi: %s - %s (overshoot=%d bytes, length=%d)",
			e.Kind, e.Msg, e.Overshoot, e.Length,
		)
	}
	return fmt.Sprintf("minimidi: %s - %s", e.Kind, e.Msg)
}

// Is supports errors.Is(err, ErrInvalidHeaderKind) style comparisons
// against the per-kind sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newInvalidHeaderError(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrInvalidHeader, Msg: fmt.Sprintf(format, args...)}
}

func newCorruptedError(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrCorrupted, Msg: fmt.Sprintf(format, args...)}
}

func newOutOfRangeError(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrOutOfRange, Msg: fmt.Sprintf(format, args...)}
}

func newUnexpectedEofError(msg string, overshoot, length int) *Error {
	return &Error{Kind: ErrUnexpectedEof, Msg: msg, Overshoot: overshoot, Length: length}
}

// Sentinel values for errors.Is comparisons against a specific kind,
// matching the teacher's habit of exposing ErrFmtNotSupported /
// ErrUnexpectedData as package-level sentinels.
var (
	ErrInvalidHeaderKind = &Error{Kind: ErrInvalidHeader}
	ErrUnexpectedEofKind = &Error{Kind: ErrUnexpectedEof}
	ErrCorruptedKind     = &Error{Kind: ErrCorrupted}
	ErrOutOfRangeKind    = &Error{Kind: ErrOutOfRange}
	ErrIOKind            = &Error{Kind: ErrIO}
)
