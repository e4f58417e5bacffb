package nativelist

import (
	"errors"
	"strconv"
	"strings"
)

// Kind categorizes a failure raised by a list or buffer.
type Kind string

const (
	KindOutOfBounds    Kind = "out_of_bounds"
	KindTypeMismatch   Kind = "type_mismatch"
	KindAllocation     Kind = "allocation"
	KindUnsupported    Kind = "unsupported"
	KindNotInitialized Kind = "not_initialized"
)

// Error is the value carried by every panic raised by this package.
// Recover it and match with errors.Is against the Err* sentinels.
type Error struct {
	Cause  error
	Op     string
	Kind   Kind
	Type   string
	Detail string
}

// Sentinels for errors.Is. Only Kind takes part in the comparison.
var (
	ErrIndexOutOfRange = &Error{Kind: KindOutOfBounds}
	ErrTypeMismatch    = &Error{Kind: KindTypeMismatch}
	ErrAllocation      = &Error{Kind: KindAllocation}
	ErrUnsupportedType = &Error{Kind: KindUnsupported}
	ErrNotInitialized  = &Error{Kind: KindNotInitialized}
)

var errArenaReleased = errors.New("arena: use after Release()")

func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString("nativelist: ")
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(string(e.Kind))

	if e.Type != "" {
		b.WriteString(" (type ")
		b.WriteString(e.Type)
		b.WriteByte(')')
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

func indexOutOfRange(op string, index, limit int) *Error {
	return &Error{
		Op:     op,
		Kind:   KindOutOfBounds,
		Detail: "index " + strconv.Itoa(index) + " outside [0, " + strconv.Itoa(limit) + ")",
	}
}

func typeMismatch(op string, want, got string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindTypeMismatch,
		Type:   got,
		Detail: "list holds " + want,
	}
}
