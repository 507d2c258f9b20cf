package icode_test

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KimNorgaard/go-icode"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

// TestGolden builds the C headers for every declaration file in testdata.
// The golden file holds all headers, each introduced by its name, or the
// error message for inputs that must fail.
func TestGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.txt")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			src, err := os.ReadFile(file)
			require.NoError(t, err)

			var actual []byte
			artifacts, err := icode.Build(src)
			if err != nil {
				require.Nil(t, artifacts)
				actual = []byte(err.Error() + "\n")
			} else {
				var buf bytes.Buffer
				for _, a := range artifacts {
					buf.WriteString("-- " + a.Name + " --\n")
					buf.Write(a.Data)
				}
				actual = buf.Bytes()
			}

			goldenFile := strings.Replace(file, ".txt", ".golden", 1)
			// To update, run: go test -run TestGolden -update
			if *update {
				err := os.WriteFile(goldenFile, actual, 0o644)
				require.NoError(t, err)
			}

			expected, err := os.ReadFile(goldenFile)
			require.NoError(t, err, "Golden file not found. Run with -update to create it.")

			require.Equal(t, string(expected), string(actual), "Generated tables do not match golden file.")
		})
	}
}
