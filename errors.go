package icode

import "github.com/KimNorgaard/go-icode/internal/diag"

// Error kinds reported by Compile. Use errors.Is to test for them.
var (
	ErrMalformed        = diag.ErrMalformed
	ErrDuplicateIdent   = diag.ErrDuplicateIdent
	ErrDuplicateKeyword = diag.ErrDuplicateKeyword
	ErrOrder            = diag.ErrOrder
	ErrOverflow         = diag.ErrOverflow
)

// An Error describes one problem with a declaration, with the input line
// and the symbolic identifier involved.
type Error = diag.Error

// ErrorList holds every Error found in one input. Compile returns an
// ErrorList when the declarations are invalid; its message reports the
// first error.
type ErrorList = diag.List
