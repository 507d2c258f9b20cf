package parser

import (
	"strings"
	"testing"

	"github.com/KimNorgaard/go-icode/internal/diag"
	"github.com/KimNorgaard/go-icode/internal/lexer"
	"github.com/KimNorgaard/go-icode/internal/table"
	"github.com/KimNorgaard/go-icode/internal/token"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, input string) ([]table.Declaration, diag.List) {
	t.Helper()
	p := New(lexer.New(strings.NewReader(input), nil), token.DefaultExtendedPrefix)
	decls, err := p.Parse()
	require.NoError(t, err)
	return decls, p.Errors()
}

func TestParse(t *testing.T) {
	input := `rem commands
PRINT	I_PRINT	iprint
FOR	I_FOR	ifor
_none	I_EOL	esyntax
HEX$	I_HEX	shex
ABS	I_ABS	nabs
CHAIN	X_CHAIN	ichain
`
	decls, errs := parse(t, input)
	require.Empty(t, errs)

	expected := []table.Declaration{
		{Keyword: "PRINT", Ident: "I_PRINT", Handler: "iprint", Category: token.Command, Namespace: token.Primary, Line: 2},
		{Keyword: "FOR", Ident: "I_FOR", Handler: "ifor", Category: token.Command, Namespace: token.Primary, Line: 3},
		{Keyword: "", Ident: "I_EOL", Handler: "esyntax", Category: token.Syntax, Namespace: token.Primary, Line: 4},
		{Keyword: "HEX$", Ident: "I_HEX", Handler: "shex", Category: token.StrFunc, Namespace: token.Primary, Line: 5},
		{Keyword: "ABS", Ident: "I_ABS", Handler: "nabs", Category: token.NumFunc, Namespace: token.Primary, Line: 6},
		{Keyword: "CHAIN", Ident: "X_CHAIN", Handler: "ichain", Category: token.Command, Namespace: token.Extended, Line: 7},
	}
	require.Equal(t, expected, decls)
	require.True(t, decls[2].Synthetic())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Too few fields",
			input:    "PRINT I_PRINT",
			expected: `icode: line 1: malformed declaration: expected 3 fields, got 2: "PRINT I_PRINT"`,
		},
		{
			name:     "Too many fields",
			input:    "\nPRINT I_PRINT iprint extra",
			expected: `icode: line 2: malformed declaration: expected 3 fields, got 4: "PRINT I_PRINT iprint extra"`,
		},
		{
			name:     "Bad identifier",
			input:    "PRINT I-PRINT iprint",
			expected: `icode: line 1: malformed declaration: column 7: invalid identifier "I-PRINT"`,
		},
		{
			name:     "Bad handler",
			input:    "PRINT I_PRINT 9print",
			expected: `icode: line 1: malformed declaration: column 15: invalid handler "9print"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decls, errs := parse(t, tt.input)
			require.Empty(t, decls)
			require.Len(t, errs, 1)
			require.EqualError(t, errs[0], tt.expected)
			require.ErrorIs(t, errs[0], diag.ErrMalformed)
		})
	}
}

func TestParseCollectsAllErrors(t *testing.T) {
	decls, errs := parse(t, "A\nPRINT I_PRINT iprint\nB C\n")
	require.Len(t, decls, 1)
	require.Len(t, errs, 2)
	require.Equal(t, 1, errs[0].Line)
	require.Equal(t, 3, errs[1].Line)
}
