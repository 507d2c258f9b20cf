package lexer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, l *Lexer) []Line {
	t.Helper()
	var lines []Line
	for {
		line, ok := l.Next()
		if !ok {
			break
		}
		lines = append(lines, line)
	}
	require.NoError(t, l.Err())
	return lines
}

func TestNext(t *testing.T) {
	input := "rem token table\n" +
		"PRINT\tI_PRINT\tiprint\n" +
		"\n" +
		"   \t\n" +
		"# another comment\n" +
		"  FOR  I_FOR   ifor\r\n" +
		"_none I_EOL esyntax"

	lines := collect(t, New(strings.NewReader(input), nil))
	require.Len(t, lines, 3)

	require.Equal(t, 2, lines[0].Num)
	require.Equal(t, []Field{{"PRINT", 1}, {"I_PRINT", 7}, {"iprint", 15}}, lines[0].Fields)

	require.Equal(t, 6, lines[1].Num)
	require.Equal(t, "  FOR  I_FOR   ifor", lines[1].Text)
	require.Equal(t, []Field{{"FOR", 3}, {"I_FOR", 8}, {"ifor", 16}}, lines[1].Fields)

	require.Equal(t, 7, lines[2].Num)
	require.Equal(t, []Field{{"_none", 1}, {"I_EOL", 7}, {"esyntax", 13}}, lines[2].Fields)
}

func TestComments(t *testing.T) {
	input := "; legacy\nrem x\nA I_A ia\n"

	lines := collect(t, New(strings.NewReader(input), []string{";"}))
	require.Len(t, lines, 2)
	require.Equal(t, "rem", lines[0].Fields[0].Literal)

	lines = collect(t, New(strings.NewReader(input), []string{}))
	require.Len(t, lines, 3)
}

func TestFieldCounts(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"A", 1},
		{"A B", 2},
		{"A B C", 3},
		{"A B C D", 4},
		{"\tA\t\tB\t", 2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lines := collect(t, New(strings.NewReader(tt.input), nil))
			require.Len(t, lines, 1)
			require.Len(t, lines[0].Fields, tt.expected)
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestReadError(t *testing.T) {
	l := New(failingReader{}, nil)
	_, ok := l.Next()
	require.False(t, ok)
	require.EqualError(t, l.Err(), "boom")
}
