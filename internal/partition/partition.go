package partition

import (
	"fmt"

	"github.com/KimNorgaard/go-icode/internal/diag"
	"github.com/KimNorgaard/go-icode/internal/table"
	"github.com/KimNorgaard/go-icode/internal/token"
)

const numCat = token.NumCategories

// Partitioner assigns identifiers to declarations and checks the ordering
// and uniqueness invariants in a single pass. All scan state lives here;
// a Partitioner is used for one input and then discarded.
type Partitioner struct {
	closes [numCat][numCat]bool
	offset int

	primary  []table.Entry
	extended []table.Entry

	first    [numCat]int
	count    [numCat]int
	closer   [numCat]*table.Declaration // entry that closed the range, nil while open
	closedAt [numCat]int

	idents   map[string]table.Declaration
	keywords [2]map[string]table.Declaration // per namespace

	errors diag.List
}

// New returns a Partitioner for the given layout. Extended identifiers
// start at offset. The layout must be valid.
func New(layout Layout, offset int) *Partitioner {
	return &Partitioner{
		closes: layout.closers(),
		offset: offset,
		idents: make(map[string]table.Declaration),
		keywords: [2]map[string]table.Declaration{
			make(map[string]table.Declaration),
			make(map[string]table.Declaration),
		},
	}
}

// Partition runs a new Partitioner over decls.
func Partition(decls []table.Declaration, layout Layout, offset int) (*table.Table, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	if offset < 0 {
		return nil, fmt.Errorf("icode: extended offset must not be negative, got %d", offset)
	}
	p := New(layout, offset)
	for _, d := range decls {
		p.Add(d)
	}
	return p.Table()
}

// Add visits the next declaration in input order.
func (p *Partitioner) Add(d table.Declaration) {
	p.checkUnique(d)
	if d.Namespace == token.Extended {
		p.extended = append(p.extended, table.Entry{Declaration: d, ID: p.offset + len(p.extended)})
		return
	}

	c := d.Category
	if closer := p.closer[c]; closer != nil {
		p.errorf(diag.ErrOrder, d, "%s entry %s appears after %s entry %s closed the %s range",
			c, d.Ident, closer.Category, closer, c)
		return
	}

	id := len(p.primary)
	p.primary = append(p.primary, table.Entry{Declaration: d, ID: id})
	if p.count[c] == 0 {
		p.first[c] = id
	}
	p.count[c]++

	for _, o := range token.Categories() {
		if o == c || p.closer[o] != nil {
			continue
		}
		// A started category other than c has just had its run interrupted.
		if p.count[o] > 0 || p.closes[o][c] {
			p.closer[o] = &d
			p.closedAt[o] = id
		}
	}
}

func (p *Partitioner) checkUnique(d table.Declaration) {
	if prev, ok := p.idents[d.Ident]; ok {
		p.errorf(diag.ErrDuplicateIdent, d, "identifier %s already declared at line %d", d.Ident, prev.Line)
	} else {
		p.idents[d.Ident] = d
	}

	if d.Synthetic() {
		return
	}
	kw := p.keywords[d.Namespace]
	if prev, ok := kw[d.Keyword]; ok {
		p.errorf(diag.ErrDuplicateKeyword, d, "keyword %q of %s already used by %s", d.Keyword, d.Ident, prev)
	} else {
		kw[d.Keyword] = d
	}
}

// Table computes the category ranges and returns the partitioned table,
// or every error found during the scan.
func (p *Partitioner) Table() (*table.Table, error) {
	if n := len(p.primary); n > p.offset {
		p.errors = append(p.errors, diag.Errorf(diag.ErrOverflow, 0, "",
			"primary namespace has %d entries, extended namespace starts at %d", n, p.offset))
	}
	if err := p.errors.Err(); err != nil {
		return nil, err
	}

	var ranges [numCat]table.Range
	for _, c := range token.Categories() {
		ranges[c] = p.rangeOf(c)
	}
	return table.New(p.primary, p.extended, p.offset, ranges), nil
}

// rangeOf returns [first, first+count) for a populated category. An empty
// category gets an empty range where it would have started.
func (p *Partitioner) rangeOf(c token.Category) table.Range {
	if p.count[c] > 0 {
		return table.Range{First: p.first[c], Last: p.first[c] + p.count[c]}
	}
	pos := len(p.primary)
	if p.closer[c] != nil {
		pos = p.closedAt[c]
	}
	return table.Range{First: pos, Last: pos}
}

// Errors returns the errors recorded so far.
func (p *Partitioner) Errors() diag.List {
	return p.errors
}

func (p *Partitioner) errorf(kind error, d table.Declaration, format string, args ...any) {
	p.errors = append(p.errors, diag.Errorf(kind, d.Line, d.Ident, format, args...))
}
