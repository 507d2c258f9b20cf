package parser

import (
	"fmt"

	"github.com/KimNorgaard/go-icode/internal/diag"
	"github.com/KimNorgaard/go-icode/internal/lexer"
	"github.com/KimNorgaard/go-icode/internal/table"
	"github.com/KimNorgaard/go-icode/internal/token"
)

const fieldsPerLine = 3

// Parser turns lexed declaration lines into typed declarations.
type Parser struct {
	l         *lexer.Lexer
	extPrefix string
	errors    diag.List
}

// New creates a new parser. Identifiers starting with extPrefix are put
// into the extended namespace.
func New(l *lexer.Lexer, extPrefix string) *Parser {
	return &Parser{l: l, extPrefix: extPrefix}
}

// Errors returns the malformed-line errors found by Parse.
func (p *Parser) Errors() diag.List {
	return p.errors
}

// Parse reads all declarations in input order. Malformed lines are recorded
// in Errors and parsing continues with the next line. The returned error is
// a read error from the underlying input.
func (p *Parser) Parse() ([]table.Declaration, error) {
	var decls []table.Declaration
	for {
		line, ok := p.l.Next()
		if !ok {
			break
		}
		if d, ok := p.parseLine(line); ok {
			decls = append(decls, d)
		}
	}
	if err := p.l.Err(); err != nil {
		return nil, fmt.Errorf("icode: reading declarations: %w", err)
	}
	return decls, nil
}

func (p *Parser) parseLine(line lexer.Line) (table.Declaration, bool) {
	if len(line.Fields) != fieldsPerLine {
		p.errorf(line, "", "expected %d fields, got %d: %q", fieldsPerLine, len(line.Fields), line.Text)
		return table.Declaration{}, false
	}
	kw, ident, handler := line.Fields[0], line.Fields[1], line.Fields[2]

	valid := true
	if !token.IsIdentifier(ident.Literal) {
		p.errorf(line, ident.Literal, "column %d: invalid identifier %q", ident.Column, ident.Literal)
		valid = false
	}
	if !token.IsIdentifier(handler.Literal) {
		p.errorf(line, ident.Literal, "column %d: invalid handler %q", handler.Column, handler.Literal)
		valid = false
	}
	if !valid {
		return table.Declaration{}, false
	}

	d := table.Declaration{
		Keyword:   kw.Literal,
		Ident:     ident.Literal,
		Handler:   handler.Literal,
		Category:  token.LookupHandler(handler.Literal),
		Namespace: token.LookupNamespace(ident.Literal, p.extPrefix),
		Line:      line.Num,
	}
	if d.Keyword == token.NoKeyword {
		d.Keyword = ""
	}
	return d, true
}

func (p *Parser) errorf(line lexer.Line, ident, format string, args ...any) {
	p.errors = append(p.errors, diag.Errorf(diag.ErrMalformed, line.Num, ident, format, args...))
}
