package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/KimNorgaard/go-icode"
	"github.com/KimNorgaard/go-icode/internal/testutil"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "icode.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestRun(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	input := writeInput(t, in, string(testutil.Sample()))

	var stderr bytes.Buffer
	err := run([]string{"-o", out, "-target", "c, yaml,go", "-pkg", "interp", input}, &stderr)
	require.NoError(t, err)
	require.Empty(t, stderr.String())

	require.ElementsMatch(t, []string{
		"kwenum.h", "kwtbl.h", "funtbl.h", "strfuntbl.h", "numfuntbl.h",
		"tokens.yaml", "icode_tables.go",
	}, listDir(t, out))

	want, err := icode.Build(testutil.Sample(), icode.Targets(icode.TargetC))
	require.NoError(t, err)
	for _, a := range want {
		got, err := os.ReadFile(filepath.Join(out, a.Name))
		require.NoError(t, err)
		require.Equal(t, string(a.Data), string(got), a.Name)
	}

	goSrc, err := os.ReadFile(filepath.Join(out, "icode_tables.go"))
	require.NoError(t, err)
	require.Contains(t, string(goSrc), "package interp\n")
}

func TestRunInvalidInputWritesNothing(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	input := writeInput(t, in, "PRINT I_PRINT iprint\n_none I_EOL esyntax\nGOTO I_GOTO igoto\n")

	err := run([]string{"-o", out, input}, &bytes.Buffer{})
	require.ErrorIs(t, err, icode.ErrOrder)
	require.Empty(t, listDir(t, out))
}

func TestRunErrors(t *testing.T) {
	in := t.TempDir()
	input := writeInput(t, in, "A I_A ia\n")

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"Unknown target", []string{"-target", "rust", input}, `icode: unknown target "rust"`},
		{"Too many inputs", []string{input, input}, "expected at most one input file, got 2"},
		{"Bad offset", []string{"-offset", "0", input}, "icode: extended offset must be a positive integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(append([]string{"-o", t.TempDir()}, tt.args...), &bytes.Buffer{})
			require.EqualError(t, err, tt.expected)
		})
	}

	t.Run("Missing input", func(t *testing.T) {
		err := run([]string{"-o", t.TempDir(), filepath.Join(in, "missing.txt")}, &bytes.Buffer{})
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Help", func(t *testing.T) {
		var stderr bytes.Buffer
		err := run([]string{"-h"}, &stderr)
		require.ErrorIs(t, err, flag.ErrHelp)
		require.Contains(t, stderr.String(), "-target")
	})
}

func TestRunStrict(t *testing.T) {
	in := t.TempDir()
	input := writeInput(t, in, "A I_A ia\nABS I_ABS nabs\nA$ I_AS sa\n")

	require.NoError(t, run([]string{"-o", t.TempDir(), input}, &bytes.Buffer{}))
	err := run([]string{"-o", t.TempDir(), "-strict", input}, &bytes.Buffer{})
	require.ErrorIs(t, err, icode.ErrOrder)
}
