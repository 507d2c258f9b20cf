// Command icodegen compiles an intermediate-code declaration table into
// the lookup tables of the BASIC interpreter.
//
// Usage:
//
//	icodegen [flags] [icode.txt]
//
// The artifacts are written to the output directory only if the whole
// table is valid. On error every problem is reported and the exit status
// is 1.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/KimNorgaard/go-icode"
)

const defaultInput = "icode.txt"

func main() {
	log.SetFlags(0)
	log.SetPrefix("icodegen: ")
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			report(err)
		}
		os.Exit(1)
	}
}

// report logs every error of a list on its own line.
func report(err error) {
	var list icode.ErrorList
	if errors.As(err, &list) {
		for _, e := range list {
			log.Print(e)
		}
		return
	}
	log.Print(err)
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("icodegen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	outDir := fs.String("o", ".", "output directory")
	targets := fs.String("target", "c", "comma-separated artifact targets: c, go, yaml")
	pkg := fs.String("pkg", "basic", "package name of the generated Go source")
	offset := fs.Int("offset", 256, "first identifier of the extended namespace")
	prefix := fs.String("prefix", "X_", "identifier prefix of the extended namespace")
	columns := fs.Int("columns", 8, "table entries per row in C headers")
	strict := fs.Bool("strict", false, "require string functions before numeric functions")
	if err := fs.Parse(args); err != nil {
		return err
	}

	input := defaultInput
	switch fs.NArg() {
	case 0:
	case 1:
		input = fs.Arg(0)
	default:
		return fmt.Errorf("expected at most one input file, got %d", fs.NArg())
	}

	opts := []icode.Option{
		icode.PackageName(*pkg),
		icode.ExtendedOffset(*offset),
		icode.ExtendedPrefix(*prefix),
		icode.Columns(*columns),
	}
	if *strict {
		opts = append(opts, icode.WithLayout(icode.StrictLayout()))
	}
	var ts []icode.Target
	for _, name := range strings.Split(*targets, ",") {
		t, err := icode.ParseTarget(strings.TrimSpace(name))
		if err != nil {
			return err
		}
		ts = append(ts, t)
	}
	opts = append(opts, icode.Targets(ts...))

	src, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	artifacts, err := icode.Build(src, opts...)
	if err != nil {
		return err
	}
	return writeAll(*outDir, artifacts)
}

// writeAll writes every artifact to a temporary file first and renames
// them into place once all writes have succeeded. A rename failing part
// way leaves the artifacts renamed before it in place.
func writeAll(dir string, artifacts []icode.Artifact) (err error) {
	temps := make([]string, 0, len(artifacts))
	defer func() {
		if err != nil {
			for _, name := range temps {
				os.Remove(name)
			}
		}
	}()

	for _, a := range artifacts {
		f, err := os.CreateTemp(dir, ".icodegen-*")
		if err != nil {
			return err
		}
		temps = append(temps, f.Name())
		if _, err := f.Write(a.Data); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		if err := os.Chmod(f.Name(), 0o644); err != nil {
			return err
		}
	}

	for i, a := range artifacts {
		if err := os.Rename(temps[i], filepath.Join(dir, a.Name)); err != nil {
			return err
		}
	}
	return nil
}
