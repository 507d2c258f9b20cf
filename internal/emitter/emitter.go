package emitter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/KimNorgaard/go-icode/internal/table"
)

const (
	// DefaultColumns is the number of table entries written per row.
	DefaultColumns = 8

	header = "Code generated by icodegen. DO NOT EDIT."
)

// Artifact is one generated output file.
type Artifact struct {
	Name string
	Data []byte
}

// Config controls the layout of the generated source.
type Config struct {
	Columns int    // entries per row in C tables; 0 selects DefaultColumns
	Package string // package clause of generated Go source
}

func (c Config) columns() int {
	if c.Columns <= 0 {
		return DefaultColumns
	}
	return c.Columns
}

// Emitter writes generated source into a buffer. The emit functions never
// make decisions about the table; everything was decided by the
// partitioner.
type Emitter struct {
	buf     bytes.Buffer
	t       *table.Table
	columns int
}

func newEmitter(t *table.Table, cfg Config) *Emitter {
	return &Emitter{t: t, columns: cfg.columns()}
}

func (e *Emitter) printf(format string, args ...any) {
	fmt.Fprintf(&e.buf, format, args...)
}

// rows writes items columns per row, each row indented and each item
// followed by a comma.
func (e *Emitter) rows(indent string, items []string) {
	for i := 0; i < len(items); i += e.columns {
		end := min(i+e.columns, len(items))
		e.printf("%s%s,\n", indent, strings.Join(items[i:end], ", "))
	}
}

// artifact returns the buffered output as a named artifact and resets the
// buffer.
func (e *Emitter) artifact(name string) Artifact {
	data := bytes.Clone(e.buf.Bytes())
	e.buf.Reset()
	return Artifact{Name: name, Data: data}
}
