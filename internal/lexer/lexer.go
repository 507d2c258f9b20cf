package lexer

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// DefaultComments are the comment prefixes used when none are given.
var DefaultComments = []string{"#", "rem"}

// Field is one whitespace-separated field of a declaration line.
type Field struct {
	Literal string
	Column  int
}

// Line is a declaration line that is neither blank nor a comment.
type Line struct {
	Num    int
	Text   string
	Fields []Field
}

// Lexer splits declaration input into lines and fields.
type Lexer struct {
	r        *bufio.Reader
	comments []string
	line     int
	eof      bool
	err      error
}

// New creates and returns a new Lexer. A nil comments slice selects
// DefaultComments; an empty non-nil slice disables comments.
func New(r io.Reader, comments []string) *Lexer {
	if comments == nil {
		comments = DefaultComments
	}
	return &Lexer{
		r:        bufio.NewReader(r),
		comments: comments,
	}
}

// Next returns the next declaration line. It returns false at the end of
// the input or on a read error, which Err reports.
func (l *Lexer) Next() (Line, bool) {
	for !l.eof {
		text, ok := l.readLine()
		if !ok {
			break
		}
		if l.skip(text) {
			continue
		}
		return Line{Num: l.line, Text: text, Fields: split(text)}, true
	}
	return Line{}, false
}

// Err returns the first non-EOF read error.
func (l *Lexer) Err() error {
	return l.err
}

func (l *Lexer) readLine() (string, bool) {
	s, err := l.r.ReadString('\n')
	if err != nil {
		l.eof = true
		if !errors.Is(err, io.EOF) {
			l.err = err
			return "", false
		}
		if s == "" {
			return "", false
		}
	}
	l.line++
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, true
}

func (l *Lexer) skip(text string) bool {
	trimmed := strings.TrimLeft(text, " \t")
	if trimmed == "" {
		return true
	}
	for _, c := range l.comments {
		if c != "" && strings.HasPrefix(trimmed, c) {
			return true
		}
	}
	return false
}

func split(text string) []Field {
	var fields []Field
	start := -1
	for i := 0; i <= len(text); i++ {
		if i == len(text) || isSpace(text[i]) {
			if start >= 0 {
				fields = append(fields, Field{Literal: text[start:i], Column: start + 1})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	return fields
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\v' || c == '\f' || c == '\r'
}
