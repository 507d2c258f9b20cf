package diag

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// Error kinds. Every *Error wraps exactly one of them.
var (
	ErrMalformed        = errors.New("malformed declaration")
	ErrDuplicateIdent   = errors.New("duplicate identifier")
	ErrDuplicateKeyword = errors.New("duplicate keyword")
	ErrOrder            = errors.New("ordering violation")
	ErrOverflow         = errors.New("namespace overflow")
)

// Error is a single fatal problem with the declaration input.
// Line is 0 when the problem is not tied to one line.
type Error struct {
	Kind  error
	Line  int
	Ident string
	Msg   string
}

func (e *Error) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("icode: %s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("icode: line %d: %s: %s", e.Line, e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Kind }

// Errorf returns a new *Error of the given kind.
func Errorf(kind error, line int, ident, format string, args ...any) *Error {
	return &Error{Kind: kind, Line: line, Ident: ident, Msg: fmt.Sprintf(format, args...)}
}

// List is a slice of *Error that implements the error interface.
// This allows returning every problem found in the input at once.
type List []*Error

func (l List) Error() string {
	switch len(l) {
	case 0:
		return ""
	case 1:
		return l[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", l[0].Error(), len(l)-1)
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (l List) Unwrap() []error {
	errs := make([]error, len(l))
	for i, e := range l {
		errs[i] = e
	}
	return errs
}

// Err returns l as an error, or nil if l is empty.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// Sort orders l by line. Errors without a line go last.
func (l List) Sort() {
	slices.SortStableFunc(l, func(a, b *Error) int {
		if (a.Line == 0) != (b.Line == 0) {
			if a.Line == 0 {
				return 1
			}
			return -1
		}
		return cmp.Compare(a.Line, b.Line)
	})
}
