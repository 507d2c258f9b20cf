// Package testutil holds declaration tables shared by the package tests.
package testutil

import (
	"embed"
	"fmt"
	"io/fs"
)

// SampleFile is a realistic declaration table for a BASIC interpreter,
// with 36 primary and 3 extended tokens.
const SampleFile = "icode.txt"

//go:embed testdata
var testdataFS embed.FS

// ReadTestData reads and returns the content of an embedded test file.
func ReadTestData(name string) ([]byte, error) {
	data, err := fs.ReadFile(testdataFS, "testdata/"+name)
	if err != nil {
		return nil, fmt.Errorf("failed to read test data file '%s': %w", name, err)
	}
	return data, nil
}

// Sample returns the content of SampleFile. It panics if the file is
// missing, which can only happen if the module is broken.
func Sample() []byte {
	data, err := ReadTestData(SampleFile)
	if err != nil {
		panic(err)
	}
	return data
}
