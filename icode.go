package icode

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/KimNorgaard/go-icode/internal/diag"
	"github.com/KimNorgaard/go-icode/internal/emitter"
	"github.com/KimNorgaard/go-icode/internal/lexer"
	"github.com/KimNorgaard/go-icode/internal/manifest"
	"github.com/KimNorgaard/go-icode/internal/parser"
	"github.com/KimNorgaard/go-icode/internal/partition"
	"github.com/KimNorgaard/go-icode/internal/table"
	"github.com/KimNorgaard/go-icode/internal/token"
)

type (
	// Table is a validated, partitioned set of token declarations.
	Table = table.Table
	// Entry is a declaration with its assigned identifier.
	Entry = table.Entry
	// Range is a half-open identifier interval.
	Range = table.Range
	// Artifact is one generated file.
	Artifact = emitter.Artifact
	// Layout holds the ordering rules of the primary namespace.
	Layout = partition.Layout
	// Rule constrains the position of one category.
	Rule = partition.Rule
	// Category is the handler category of a token.
	Category = token.Category
)

// Handler categories.
const (
	Command = token.Command
	Syntax  = token.Syntax
	StrFunc = token.StrFunc
	NumFunc = token.NumFunc
)

// DefaultLayout returns the default ordering rules: commands first, then
// syntax-only tokens, then string and numeric functions in either order.
func DefaultLayout() Layout { return partition.DefaultLayout() }

// StrictLayout returns DefaultLayout with string functions required to
// precede numeric functions.
func StrictLayout() Layout { return partition.StrictLayout() }

// Target selects a family of generated artifacts.
type Target int

const (
	TargetC        Target = iota // kwenum.h, kwtbl.h, funtbl.h, strfuntbl.h, numfuntbl.h
	TargetGo                     // icode_tables.go
	TargetManifest               // tokens.yaml
)

var targetNames = map[Target]string{
	TargetC:        "c",
	TargetGo:       "go",
	TargetManifest: "yaml",
}

func (t Target) String() string {
	if name, ok := targetNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Target(%d)", int(t))
}

// ParseTarget returns the target named s ("c", "go" or "yaml").
func ParseTarget(s string) (Target, error) {
	for t, name := range targetNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("icode: unknown target %q", s)
}

// Compile reads the declarations in src and partitions them. It returns
// an ErrorList holding every problem found if any invariant is violated;
// no table is returned in that case.
func Compile(src []byte, opts ...Option) (*Table, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	p := parser.New(lexer.New(bytes.NewReader(src), o.comments), o.extPrefix)
	decls, err := p.Parse()
	if err != nil {
		return nil, err
	}

	pt := partition.New(o.layout, o.offset)
	for _, d := range decls {
		pt.Add(d)
	}
	tbl, err := pt.Table()

	errs := p.Errors()
	if err != nil {
		var l diag.List
		if !errors.As(err, &l) {
			return nil, err
		}
		errs = append(errs, l...)
	}
	if len(errs) > 0 {
		errs.Sort()
		return nil, errs
	}
	return tbl, nil
}

// Generate produces the artifacts of the selected targets for t. It makes
// no decisions about t and only fails on option or formatting errors.
func Generate(t *Table, opts ...Option) ([]Artifact, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	cfg := emitter.Config{Columns: o.columns, Package: o.pkg}
	var out []Artifact
	for _, target := range o.targets {
		switch target {
		case TargetC:
			out = append(out, emitter.C(t, cfg)...)
		case TargetGo:
			a, err := emitter.Go(t, cfg)
			if err != nil {
				return nil, err
			}
			out = append(out, a)
		case TargetManifest:
			data, err := manifest.Encode(t)
			if err != nil {
				return nil, err
			}
			out = append(out, Artifact{Name: manifest.File, Data: data})
		}
	}
	return out, nil
}

// Build compiles src and generates its artifacts. Either every artifact is
// returned or none is.
func Build(src []byte, opts ...Option) ([]Artifact, error) {
	t, err := Compile(src, opts...)
	if err != nil {
		return nil, err
	}
	return Generate(t, opts...)
}
