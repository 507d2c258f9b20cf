/*
Package icode compiles the intermediate-code declaration table of a BASIC
interpreter into the lookup tables of its dispatch core.

The input is a flat list of token declarations, one per line, each made of
three whitespace-separated fields:

	PRINT	I_PRINT		iprint
	_none	I_EOL		esyntax
	HEX$	I_HEX		shex
	ABS	I_ABS		nabs
	CHAIN	X_CHAIN		ichain

The first field is the keyword text, or _none for a token that cannot be
spelled. The second is the symbolic identifier, which becomes a member of
the token enumeration. The third names the handler and decides the token's
category: esyntax marks a syntax-only token with no handler, a leading s a
string function, a leading n a numeric function, and anything else an
immediate command. Identifiers starting with X_ belong to the extended
namespace, numbered from 256 so they never collide with primary tokens.
Blank lines and lines starting with # or rem are skipped.

Line order is significant: it becomes identifier order. Compile assigns
identifiers and checks that commands form a prefix starting at 0, that
syntax-only tokens directly follow them, and that every category occupies
one contiguous range. The interpreter can then classify a token with two
comparisons:

	if tok >= STRFUN_FIRST && tok < STRFUN_LAST {
		return strfuntbl[tok - STRFUN_FIRST]();
	}

Any violation, or a duplicate identifier or keyword, fails the whole
compilation with an ErrorList naming the offending lines. Nothing is
generated from an invalid table.

Generate writes the tables as C headers (the format the interpreter
includes), as a Go source file, or as a YAML manifest that the
documentation and message compilers use to look up identifiers by name:

	artifacts, err := icode.Build(src, icode.Targets(icode.TargetC, icode.TargetManifest))
	if err != nil {
		// report err and write nothing
	}
	for _, a := range artifacts {
		// write a.Data to a.Name
	}

Output is deterministic: the same input and options always produce
byte-identical artifacts.
*/
package icode
