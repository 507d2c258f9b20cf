package token

import "strings"

// Category is the handler category of a token declaration.
type Category int

// Categories in their canonical order. NumCategories is not a category.
const (
	Command Category = iota // immediate command, dispatched through funtbl
	Syntax                  // grammar marker, no dispatch entry
	StrFunc                 // string-returning function
	NumFunc                 // numeric-returning function

	NumCategories = int(iota)
)

var categoryNames = [NumCategories]string{
	Command: "command",
	Syntax:  "syntax",
	StrFunc: "string function",
	NumFunc: "numeric function",
}

func (c Category) String() string {
	if c < 0 || int(c) >= NumCategories {
		return "unknown"
	}
	return categoryNames[c]
}

// Dispatched reports whether entries of the category get a slot in a
// dispatch table.
func (c Category) Dispatched() bool {
	return c != Syntax
}

// Categories returns all categories in canonical order.
func Categories() []Category {
	return []Category{Command, Syntax, StrFunc, NumFunc}
}

// Namespace is the identifier space a token lives in.
type Namespace int

const (
	Primary Namespace = iota
	Extended
)

func (n Namespace) String() string {
	if n == Extended {
		return "extended"
	}
	return "primary"
}

const (
	// NoKeyword is the keyword placeholder of a synthetic token.
	NoKeyword = "_none"

	// SyntaxHandler is the handler reference of syntax-only tokens.
	SyntaxHandler = "esyntax"

	// DefaultExtendedPrefix flags identifiers of the extended namespace.
	DefaultExtendedPrefix = "X_"

	strFuncMarker = 's'
	numFuncMarker = 'n'
)

// Reserved handler names.
var handlers = map[string]Category{
	SyntaxHandler: Syntax,
}

// LookupHandler derives the category of a handler reference.
// Reserved names are checked first, then the leading marker character.
// Anything else is an immediate command.
func LookupHandler(handler string) Category {
	if cat, ok := handlers[handler]; ok {
		return cat
	}
	if handler == "" {
		return Command
	}
	switch handler[0] {
	case strFuncMarker:
		return StrFunc
	case numFuncMarker:
		return NumFunc
	}
	return Command
}

// LookupNamespace returns the namespace of ident under the given extended
// prefix. An empty prefix puts everything in the primary namespace.
func LookupNamespace(ident, extPrefix string) Namespace {
	if extPrefix != "" && strings.HasPrefix(ident, extPrefix) {
		return Extended
	}
	return Primary
}

// IsIdentifier reports whether s can be emitted as a C or Go identifier.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
