package partition

import (
	"fmt"
	"slices"

	"github.com/KimNorgaard/go-icode/internal/token"
)

// Rule constrains where entries of one category may appear in the primary
// namespace. The first entry of any category in ClosedBy closes Category
// for the rest of the input, whether or not Category has started.
//
// Independently of the rules, every category's own range is contiguous:
// a run of entries is closed as soon as an entry of another category
// follows it.
type Rule struct {
	Category token.Category
	ClosedBy []token.Category
}

// Layout is the set of ordering rules, one per category.
type Layout []Rule

// DefaultLayout keeps commands as the prefix starting at 0 and syntax-only
// entries directly behind them. String and numeric functions follow in
// either order.
func DefaultLayout() Layout {
	return Layout{
		{Category: token.Command, ClosedBy: []token.Category{token.Syntax, token.StrFunc, token.NumFunc}},
		{Category: token.Syntax, ClosedBy: []token.Category{token.StrFunc, token.NumFunc}},
		{Category: token.StrFunc},
		{Category: token.NumFunc},
	}
}

// StrictLayout additionally requires string functions to precede numeric
// functions, which is the order the interpreter's source tables use.
func StrictLayout() Layout {
	l := DefaultLayout()
	l[2].ClosedBy = []token.Category{token.NumFunc}
	return l
}

// Validate checks that l names every category exactly once and that the
// command range is closed by every other category, so commands always
// form the prefix of the primary namespace.
func (l Layout) Validate() error {
	var seen [token.NumCategories]bool
	for _, r := range l {
		if r.Category < 0 || int(r.Category) >= token.NumCategories {
			return fmt.Errorf("icode: layout: unknown category %d", r.Category)
		}
		if seen[r.Category] {
			return fmt.Errorf("icode: layout: category %s listed twice", r.Category)
		}
		seen[r.Category] = true
		for _, c := range r.ClosedBy {
			if c < 0 || int(c) >= token.NumCategories {
				return fmt.Errorf("icode: layout: %s closed by unknown category %d", r.Category, c)
			}
			if c == r.Category {
				return fmt.Errorf("icode: layout: category %s cannot close itself", c)
			}
		}
	}
	for _, c := range token.Categories() {
		if !seen[c] {
			return fmt.Errorf("icode: layout: category %s missing", c)
		}
	}
	cmd := l.closedBy(token.Command)
	for _, c := range token.Categories() {
		if c != token.Command && !slices.Contains(cmd, c) {
			return fmt.Errorf("icode: layout: command range must be closed by %s", c)
		}
	}
	return nil
}

func (l Layout) closedBy(c token.Category) []token.Category {
	for _, r := range l {
		if r.Category == c {
			return r.ClosedBy
		}
	}
	return nil
}

// closers returns, per category, the categories whose first appearance
// close it.
func (l Layout) closers() [token.NumCategories][token.NumCategories]bool {
	var m [token.NumCategories][token.NumCategories]bool
	for _, r := range l {
		for _, c := range r.ClosedBy {
			m[r.Category][c] = true
		}
	}
	return m
}
