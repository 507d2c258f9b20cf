// Package manifest encodes the symbol table of a compiled declaration set
// as YAML. The documentation and message compilers read it to map token
// names to the identifiers assigned by icodegen.
package manifest

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/KimNorgaard/go-icode/internal/table"
	"github.com/KimNorgaard/go-icode/internal/token"
)

// File is the name of the manifest artifact.
const File = "tokens.yaml"

// Version is the manifest format version written by Encode.
const Version = 1

// Manifest is the document written to tokens.yaml.
type Manifest struct {
	Version int              `yaml:"version"`
	Ranges  map[string]Range `yaml:"ranges"`
	Symbols []Symbol         `yaml:"symbols"`
}

// Range is a half-open identifier interval.
type Range struct {
	First int `yaml:"first"`
	Last  int `yaml:"last"`
}

// Symbol is one token of either namespace.
type Symbol struct {
	Name      string `yaml:"name"`
	ID        int    `yaml:"id"`
	Keyword   string `yaml:"keyword,omitempty"`
	Namespace string `yaml:"namespace"`
	Category  string `yaml:"category"`
	Handler   string `yaml:"handler"`
	Line      int    `yaml:"line"`
}

// Range keys of the manifest.
const (
	RangeCommand  = "command"
	RangeSyntax   = "syntax"
	RangeStrFunc  = "strfun"
	RangeNumFunc  = "numfun"
	RangeExtended = "extended"
)

// New builds the manifest of t.
func New(t *table.Table) *Manifest {
	m := &Manifest{
		Version: Version,
		Ranges: map[string]Range{
			RangeCommand:  fromRange(t.Range(token.Command)),
			RangeSyntax:   fromRange(t.Range(token.Syntax)),
			RangeStrFunc:  fromRange(t.Range(token.StrFunc)),
			RangeNumFunc:  fromRange(t.Range(token.NumFunc)),
			RangeExtended: fromRange(t.ExtendedRange()),
		},
	}
	for _, e := range t.Entries() {
		m.Symbols = append(m.Symbols, Symbol{
			Name:      e.Ident,
			ID:        e.ID,
			Keyword:   e.Keyword,
			Namespace: e.Namespace.String(),
			Category:  e.Category.String(),
			Handler:   e.Handler,
			Line:      e.Line,
		})
	}
	return m
}

func fromRange(r table.Range) Range {
	return Range{First: r.First, Last: r.Last}
}

// Encode returns the YAML encoding of the manifest of t. Map keys are
// sorted by the encoder, so the output is deterministic.
func Encode(t *table.Table) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(New(t)); err != nil {
		return nil, fmt.Errorf("icode: encoding manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("icode: encoding manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses a manifest written by Encode.
func Decode(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("icode: decoding manifest: %w", err)
	}
	if m.Version != Version {
		return nil, fmt.Errorf("icode: unsupported manifest version %d", m.Version)
	}
	return &m, nil
}

// IDs returns the name to identifier mapping of the manifest.
func (m *Manifest) IDs() map[string]int {
	ids := make(map[string]int, len(m.Symbols))
	for _, s := range m.Symbols {
		ids[s.Name] = s.ID
	}
	return ids
}

// Keywords returns the keyword to identifier mapping, the lookup the
// documentation compiler performs for every token named in a help entry.
// Synthetic tokens have no keyword and are not included.
func (m *Manifest) Keywords() map[string]int {
	kws := make(map[string]int, len(m.Symbols))
	for _, s := range m.Symbols {
		if s.Keyword != "" {
			if _, dup := kws[s.Keyword]; !dup {
				kws[s.Keyword] = s.ID
			}
		}
	}
	return kws
}
