package emitter

import (
	"fmt"
	"strings"

	"github.com/KimNorgaard/go-icode/internal/table"
	"github.com/KimNorgaard/go-icode/internal/token"
)

// Names of the C artifacts, as included by the interpreter.
const (
	EnumHeader    = "kwenum.h"
	KeywordHeader = "kwtbl.h"
	CmdHeader     = "funtbl.h"
	StrFunHeader  = "strfuntbl.h"
	NumFunHeader  = "numfuntbl.h"
)

// flash places tables in read-only flash memory on targets that need it.
const flash = "__FLASH__"

type cTable struct {
	name     string
	elemType string
	retType  string // return type of the forward declarations
}

var (
	cmdTable    = cTable{name: "funtbl", elemType: "cmd_t", retType: "void"}
	extTable    = cTable{name: "funtbl_ext", elemType: "cmd_t", retType: "void"}
	strFunTable = cTable{name: "strfuntbl", elemType: "strfun_t", retType: "BString"}
	numFunTable = cTable{name: "numfuntbl", elemType: "numfun_t", retType: "num_t"}
)

// C generates the C headers consumed by the interpreter core.
func C(t *table.Table, cfg Config) []Artifact {
	e := newEmitter(t, cfg)
	var out []Artifact

	e.enumHeader()
	out = append(out, e.artifact(EnumHeader))

	e.keywordHeader()
	out = append(out, e.artifact(KeywordHeader))

	e.cHeader()
	declared := make(map[string]bool)
	e.dispatch(cmdTable, t.Handlers(token.Command), declared)
	e.printf("\n")
	e.dispatch(extTable, t.ExtendedHandlers(), declared)
	out = append(out, e.artifact(CmdHeader))

	e.cHeader()
	e.dispatch(strFunTable, t.Handlers(token.StrFunc), make(map[string]bool))
	out = append(out, e.artifact(StrFunHeader))

	e.cHeader()
	e.dispatch(numFunTable, t.Handlers(token.NumFunc), make(map[string]bool))
	out = append(out, e.artifact(NumFunHeader))

	return out
}

func (e *Emitter) cHeader() {
	e.printf("/* %s */\n\n", header)
}

func (e *Emitter) enumHeader() {
	e.cHeader()
	e.printf("#ifndef KWENUM_H\n#define KWENUM_H\n\n")

	if entries := e.t.Entries(); len(entries) > 0 {
		e.printf("enum {\n")
		for _, en := range entries {
			e.printf("  %s = %d,\n", en.Ident, en.ID)
		}
		e.printf("};\n\n")
	}

	bounds := []struct {
		prefix string
		r      table.Range
	}{
		{"CMD", e.t.Range(token.Command)},
		{"SYNTAX", e.t.Range(token.Syntax)},
		{"STRFUN", e.t.Range(token.StrFunc)},
		{"NUMFUN", e.t.Range(token.NumFunc)},
		{"EXT", e.t.ExtendedRange()},
	}
	for _, b := range bounds {
		e.printf("#define %s_FIRST %d\n", b.prefix, b.r.First)
		e.printf("#define %s_LAST %d\n", b.prefix, b.r.Last)
	}
	e.printf("#define SIZE_KWTBL %d\n", len(e.t.Primary))
	e.printf("#define SIZE_KWTBL_EXT %d\n", len(e.t.Extended))
	e.printf("\n#endif\n")
}

func (e *Emitter) keywordHeader() {
	e.cHeader()
	e.keywords("kwtbl", e.t.Keywords())
	e.printf("\n")
	e.keywords("kwtbl_ext", e.t.ExtendedKeywords())
}

func (e *Emitter) keywords(name string, kws []string) {
	items := make([]string, len(kws))
	for i, kw := range kws {
		if kw == "" {
			items[i] = "NULL"
		} else {
			items[i] = cQuote(kw)
		}
	}
	e.printf("static const char * const %s[] %s = {\n", name, flash)
	e.rows("  ", items)
	e.printf("};\n")
}

// dispatch writes a forward declaration for every handler not declared
// yet, followed by the table itself with one slot per identifier.
func (e *Emitter) dispatch(tbl cTable, handlers []string, declared map[string]bool) {
	n := 0
	for _, h := range table.Distinct(handlers) {
		if declared[h] {
			continue
		}
		declared[h] = true
		e.printf("%s %s();\n", tbl.retType, h)
		n++
	}
	if n > 0 {
		e.printf("\n")
	}
	e.printf("static const %s %s[] %s = {\n", tbl.elemType, tbl.name, flash)
	e.rows("  ", handlers)
	e.printf("};\n")
}

// cQuote returns s as a C string literal. Bytes outside printable ASCII
// become three-digit octal escapes.
func cQuote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c >= 0x20 && c < 0x7f:
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "\\%03o", c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
