package emitter

import (
	"fmt"
	"go/format"
	gotoken "go/token"
	"math"
	"strconv"

	"github.com/KimNorgaard/go-icode/internal/table"
	"github.com/KimNorgaard/go-icode/internal/token"
)

// GoFile is the name of the generated Go artifact.
const GoFile = "icode_tables.go"

// DefaultPackage is the package clause used when Config.Package is empty.
const DefaultPackage = "basic"

// Go generates a single gofmt-formatted Go source file with the token
// constants, range constants, keyword tables and dispatch tables. The
// dispatch tables refer to handler functions by name; they must be
// declared in the same package.
func Go(t *table.Table, cfg Config) (Artifact, error) {
	pkg := cfg.Package
	if pkg == "" {
		pkg = DefaultPackage
	}
	if !token.IsIdentifier(pkg) {
		return Artifact{}, fmt.Errorf("icode: invalid package name %q", pkg)
	}

	tokenType, err := goTokenType(t)
	if err != nil {
		return Artifact{}, err
	}
	if err := checkGoNames(t); err != nil {
		return Artifact{}, err
	}

	e := newEmitter(t, cfg)
	e.printf("// %s\n\npackage %s\n\n", header, pkg)
	e.printf("// Token is an intermediate code.\ntype Token %s\n\n", tokenType)
	e.printf("// Handler signatures of the dispatch tables.\n")
	e.printf("type (\n\tCommandFunc func()\n\tStringFunc func() string\n\tNumericFunc func() float64\n)\n\n")

	e.printf("const (\n")
	for _, en := range t.Entries() {
		e.printf("\t%s Token = %d\n", en.Ident, en.ID)
	}
	e.printf(")\n\n")

	e.printf("// Half-open identifier ranges of the token categories.\nconst (\n")
	for _, r := range goRanges(t) {
		e.printf("\t%sFirst Token = %d\n", r.prefix, r.First)
		e.printf("\t%sLast Token = %d\n", r.prefix, r.Last)
	}
	e.printf(")\n\n")

	e.goStrings("kwtbl", t.Keywords())
	e.goStrings("kwtblExt", t.ExtendedKeywords())
	e.goArray("funtbl", "CommandFunc", t.Handlers(token.Command))
	e.goArray("strfuntbl", "StringFunc", t.Handlers(token.StrFunc))
	e.goArray("numfuntbl", "NumericFunc", t.Handlers(token.NumFunc))
	e.goArray("funtblExt", "CommandFunc", t.ExtendedHandlers())

	src, err := format.Source(e.buf.Bytes())
	if err != nil {
		return Artifact{}, fmt.Errorf("icode: formatting generated Go source: %w", err)
	}
	e.buf.Reset()
	return Artifact{Name: GoFile, Data: src}, nil
}

type goRange struct {
	prefix string
	table.Range
}

func goRanges(t *table.Table) []goRange {
	return []goRange{
		{"Cmd", t.Range(token.Command)},
		{"Syntax", t.Range(token.Syntax)},
		{"StrFun", t.Range(token.StrFunc)},
		{"NumFun", t.Range(token.NumFunc)},
		{"Ext", t.ExtendedRange()},
	}
}

// goTokenType returns the smallest unsigned type that holds every
// constant of the generated file.
func goTokenType(t *table.Table) (string, error) {
	largest := 0
	for _, r := range goRanges(t) {
		largest = max(largest, r.First, r.Last)
	}
	switch {
	case largest <= math.MaxUint16:
		return "uint16", nil
	case uint64(largest) <= math.MaxUint32:
		return "uint32", nil
	}
	return "", fmt.Errorf("icode: token value %d does not fit in 32 bits", largest)
}

// goPredeclared are the names the generated file declares itself or
// refers to from the universe scope.
var goPredeclared = map[string]bool{
	"Token":       true,
	"CommandFunc": true,
	"StringFunc":  true,
	"NumericFunc": true,
	"kwtbl":       true,
	"kwtblExt":    true,
	"funtbl":      true,
	"strfuntbl":   true,
	"numfuntbl":   true,
	"funtblExt":   true,
	"string":      true,
	"float64":     true,
	"uint16":      true,
	"uint32":      true,
	"init":        true,
}

// checkGoNames rejects identifiers and handlers that would not compile as
// package-level names next to each other and the generated declarations.
func checkGoNames(t *table.Table) error {
	generated := make(map[string]bool, len(goPredeclared)+10)
	for name := range goPredeclared {
		generated[name] = true
	}
	for _, r := range goRanges(t) {
		generated[r.prefix+"First"] = true
		generated[r.prefix+"Last"] = true
	}

	// Handlers referenced by a dispatch table, with the line declaring them.
	dispatched := make(map[string]int)
	for _, en := range t.Entries() {
		if en.Category.Dispatched() || en.Namespace == token.Extended {
			if _, ok := dispatched[en.Handler]; !ok {
				dispatched[en.Handler] = en.Line
			}
		}
	}

	for _, en := range t.Entries() {
		for _, name := range []string{en.Ident, en.Handler} {
			if gotoken.IsKeyword(name) {
				return fmt.Errorf("icode: line %d: %q is a Go keyword", en.Line, name)
			}
			if generated[name] {
				return fmt.Errorf("icode: line %d: %q collides with a generated Go name", en.Line, name)
			}
		}
		if en.Handler == "_" {
			return fmt.Errorf("icode: line %d: handler %q cannot be referenced", en.Line, en.Handler)
		}
		if line, ok := dispatched[en.Ident]; ok {
			return fmt.Errorf("icode: line %d: identifier %s is also the handler declared at line %d", en.Line, en.Ident, line)
		}
	}
	return nil
}

// goStrings writes a keyword table. The empty string marks a synthetic
// token.
func (e *Emitter) goStrings(name string, kws []string) {
	items := make([]string, len(kws))
	for i, kw := range kws {
		items[i] = strconv.Quote(kw)
	}
	e.goArray(name, "string", items)
}

func (e *Emitter) goArray(name, elemType string, items []string) {
	e.printf("var %s = [...]%s{\n", name, elemType)
	e.rows("\t", items)
	e.printf("}\n\n")
}
