package icode

import (
	"fmt"
	"strings"

	"github.com/KimNorgaard/go-icode/internal/emitter"
	"github.com/KimNorgaard/go-icode/internal/lexer"
	"github.com/KimNorgaard/go-icode/internal/partition"
	"github.com/KimNorgaard/go-icode/internal/table"
	"github.com/KimNorgaard/go-icode/internal/token"
)

// Option configures Compile, Generate and Build.
type Option func(*options) error

type options struct {
	comments  []string
	extPrefix string
	offset    int
	layout    partition.Layout
	targets   []Target
	pkg       string
	columns   int
}

func newOptions(opts []Option) (*options, error) {
	o := &options{
		comments:  lexer.DefaultComments,
		extPrefix: token.DefaultExtendedPrefix,
		offset:    table.DefaultExtendedOffset,
		layout:    partition.DefaultLayout(),
		targets:   []Target{TargetC},
		pkg:       emitter.DefaultPackage,
		columns:   emitter.DefaultColumns,
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// CommentPrefixes returns an Option that replaces the comment prefixes.
// Lines starting with any of them, after leading blanks, are skipped.
// With no prefixes, only blank lines are skipped.
func CommentPrefixes(prefixes ...string) Option {
	return func(o *options) error {
		for _, p := range prefixes {
			if strings.TrimSpace(p) == "" {
				return fmt.Errorf("icode: comment prefix must not be blank")
			}
		}
		o.comments = append([]string{}, prefixes...)
		return nil
	}
}

// ExtendedPrefix returns an Option that sets the identifier prefix marking
// tokens of the extended namespace. An empty prefix disables the extended
// namespace.
func ExtendedPrefix(prefix string) Option {
	return func(o *options) error {
		o.extPrefix = prefix
		return nil
	}
}

// ExtendedOffset returns an Option that sets the first identifier of the
// extended namespace. It is also the capacity of the primary namespace.
//
// The offset n must be a positive integer.
func ExtendedOffset(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("icode: extended offset must be a positive integer")
		}
		o.offset = n
		return nil
	}
}

// WithLayout returns an Option that replaces the ordering rules of the
// primary namespace.
func WithLayout(l Layout) Option {
	return func(o *options) error {
		if err := l.Validate(); err != nil {
			return err
		}
		o.layout = l
		return nil
	}
}

// Targets returns an Option that selects the artifacts produced by
// Generate and Build, in order.
func Targets(targets ...Target) Option {
	return func(o *options) error {
		if len(targets) == 0 {
			return fmt.Errorf("icode: at least one target is required")
		}
		for _, t := range targets {
			if t < TargetC || t > TargetManifest {
				return fmt.Errorf("icode: unknown target %d", int(t))
			}
		}
		o.targets = append([]Target{}, targets...)
		return nil
	}
}

// PackageName returns an Option that sets the package clause of the
// generated Go source.
func PackageName(name string) Option {
	return func(o *options) error {
		if !token.IsIdentifier(name) {
			return fmt.Errorf("icode: invalid package name %q", name)
		}
		o.pkg = name
		return nil
	}
}

// Columns returns an Option that sets the number of table entries per row
// in generated C headers.
//
// The count n must be a positive integer.
func Columns(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("icode: columns must be a positive integer")
		}
		o.columns = n
		return nil
	}
}
