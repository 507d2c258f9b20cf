package table

import (
	"fmt"

	"github.com/KimNorgaard/go-icode/internal/token"
)

// DefaultExtendedOffset is the first identifier of the extended namespace.
const DefaultExtendedOffset = 256

// Declaration is one token declaration as read from the input.
type Declaration struct {
	Keyword   string // empty for synthetic tokens
	Ident     string
	Handler   string
	Category  token.Category
	Namespace token.Namespace
	Line      int
}

// Synthetic reports whether the declaration has no keyword text.
func (d Declaration) Synthetic() bool {
	return d.Keyword == ""
}

func (d Declaration) String() string {
	return fmt.Sprintf("%s (line %d)", d.Ident, d.Line)
}

// Entry is a declaration with its assigned identifier value.
type Entry struct {
	Declaration
	ID int
}

// Range is the half-open identifier interval [First, Last).
type Range struct {
	First int
	Last  int
}

// Len returns the number of identifiers in r.
func (r Range) Len() int { return r.Last - r.First }

// Empty reports whether r holds no identifiers.
func (r Range) Empty() bool { return r.First == r.Last }

// Contains reports whether id lies in r.
func (r Range) Contains(id int) bool { return id >= r.First && id < r.Last }

func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.First, r.Last) }

// Table is a validated and partitioned declaration sequence. Tables are
// built by the partition package and are not modified afterwards.
type Table struct {
	Primary        []Entry
	Extended       []Entry
	ExtendedOffset int

	ranges [token.NumCategories]Range
	byName map[string]int // index into Primary, or -1-index into Extended
}

// New assembles a Table. Entry IDs and ranges must already be consistent;
// New only indexes them.
func New(primary, extended []Entry, offset int, ranges [token.NumCategories]Range) *Table {
	t := &Table{
		Primary:        primary,
		Extended:       extended,
		ExtendedOffset: offset,
		ranges:         ranges,
		byName:         make(map[string]int, len(primary)+len(extended)),
	}
	for i, e := range primary {
		t.byName[e.Ident] = i
	}
	for i, e := range extended {
		t.byName[e.Ident] = -1 - i
	}
	return t
}

// Range returns the primary-namespace range of category c.
func (t *Table) Range(c token.Category) Range {
	return t.ranges[c]
}

// ExtendedRange returns the identifier range of the extended namespace.
func (t *Table) ExtendedRange() Range {
	return Range{First: t.ExtendedOffset, Last: t.ExtendedOffset + len(t.Extended)}
}

// Lookup returns the entry declared with the symbolic identifier name.
func (t *Table) Lookup(name string) (Entry, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Entry{}, false
	}
	if i < 0 {
		return t.Extended[-1-i], true
	}
	return t.Primary[i], true
}

// Entry returns the entry with identifier value id.
func (t *Table) Entry(id int) (Entry, bool) {
	if id >= 0 && id < len(t.Primary) {
		return t.Primary[id], true
	}
	if r := t.ExtendedRange(); r.Contains(id) {
		return t.Extended[id-r.First], true
	}
	return Entry{}, false
}

// Classify returns the category of a primary identifier using only range
// membership, the way the interpreter does it.
func (t *Table) Classify(id int) (token.Category, bool) {
	for _, c := range token.Categories() {
		if t.ranges[c].Contains(id) {
			return c, true
		}
	}
	return 0, false
}

// Entries returns all entries, primary first.
func (t *Table) Entries() []Entry {
	all := make([]Entry, 0, len(t.Primary)+len(t.Extended))
	all = append(all, t.Primary...)
	return append(all, t.Extended...)
}

// Keywords returns the primary keyword table. Slot k holds the keyword of
// identifier k, or "" for a synthetic token.
func (t *Table) Keywords() []string {
	return keywords(t.Primary)
}

// ExtendedKeywords returns the keyword table of the extended namespace,
// indexed by identifier minus ExtendedOffset.
func (t *Table) ExtendedKeywords() []string {
	return keywords(t.Extended)
}

// Handlers returns the dispatch table of category c. Slot k holds the
// handler of identifier Range(c).First+k.
func (t *Table) Handlers(c token.Category) []string {
	if !c.Dispatched() {
		return nil
	}
	r := t.ranges[c]
	return handlers(t.Primary[r.First:r.Last])
}

// ExtendedHandlers returns the dispatch table of the extended namespace.
func (t *Table) ExtendedHandlers() []string {
	return handlers(t.Extended)
}

func keywords(entries []Entry) []string {
	kw := make([]string, len(entries))
	for i, e := range entries {
		kw[i] = e.Keyword
	}
	return kw
}

func handlers(entries []Entry) []string {
	h := make([]string, len(entries))
	for i, e := range entries {
		h[i] = e.Handler
	}
	return h
}

// Distinct returns the handler names of fns in first-seen order without
// repetitions.
func Distinct(fns []string) []string {
	seen := make(map[string]bool, len(fns))
	var out []string
	for _, f := range fns {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}
