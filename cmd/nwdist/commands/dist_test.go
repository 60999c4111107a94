package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/li-maxime/Needleman-Wunsch-algorithm/nw"
)

// writeFasta drops a small FASTA file into a temp dir and returns its path.
func writeFasta(t *testing.T, name, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

// TestParseStrategies covers "all", deduplication, ordering, and rejection
// of unknown names.
func TestParseStrategies(t *testing.T) {
	got, err := parseStrategies([]string{"all"})
	require.NoError(t, err)
	assert.Equal(t, []nw.Strategy{nw.Memoized, nw.Iterative, nw.CacheAware, nw.CacheOblivious}, got)

	got, err = parseStrategies([]string{"cache-aware", "memoized", "memoized"})
	require.NoError(t, err)
	assert.Equal(t, []nw.Strategy{nw.Memoized, nw.CacheAware}, got, "display order, no duplicates")

	_, err = parseStrategies([]string{"blockwise"})
	assert.ErrorIs(t, err, ErrUnknownStrategyName)

	_, err = parseStrategies(nil)
	assert.ErrorIs(t, err, ErrUnknownStrategyName, "empty selection must error")
}

// TestDistCommand_RunAll executes the full command over two small FASTA
// files and checks that every strategy reports the same known distance.
func TestDistCommand_RunAll(t *testing.T) {
	pathA := writeFasta(t, "a.fasta", ">a\nACGT\n")
	pathB := writeFasta(t, "b.fasta", ">b\nACG\n")

	cmd := NewDistCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"-s", "all", "--no-color", pathA, pathB})

	require.NoError(t, cmd.Execute())

	text := out.String()
	for _, name := range []string{"memoized", "iterative", "cache-aware", "cache-oblivious"} {
		assert.Contains(t, text, name)
	}
	// distance("ACGT", "ACG") = 2 with the default cost model
	assert.Contains(t, text, "2")
}

// TestDistCommand_WarnInvalid routes invalid-symbol diagnostics to stderr
// without changing the distance on stdout.
func TestDistCommand_WarnInvalid(t *testing.T) {
	pathA := writeFasta(t, "a.fasta", ">a\nAC-GT\n")
	pathB := writeFasta(t, "b.fasta", ">b\nACGT\n")

	cmd := NewDistCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--warn-invalid", "--no-color", pathA, pathB})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, errOut.String(), `invalid symbol '-' skipped`)
	assert.Contains(t, out.String(), "0", "skipped symbol must not change the distance")
}

// TestDistCommand_BadInputs pins the error paths: unknown strategy name,
// unparsable cache size, missing input file.
func TestDistCommand_BadInputs(t *testing.T) {
	pathA := writeFasta(t, "a.fasta", ">a\nACGT\n")

	run := func(args ...string) error {
		cmd := NewDistCommand()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)

		return cmd.Execute()
	}

	err := run("-s", "quantum", pathA, pathA)
	assert.ErrorIs(t, err, ErrUnknownStrategyName)

	err = run("--cache-size", "lots", pathA, pathA)
	assert.ErrorIs(t, err, ErrBadCacheSize)

	err = run(pathA, filepath.Join(t.TempDir(), "missing.fasta"))
	assert.Error(t, err)
}
