package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationHelp(t *testing.T) {
	rescueStdout := os.Stdout
	_, w, _ := os.Pipe()
	os.Stdout = w
	defer func() { os.Stdout = rescueStdout }()

	app := application()
	assert.NoError(t, app.Run([]string{"gas", "-h"}))
}

func TestRunCommandProducesTSVReport(t *testing.T) {
	dir := t.TempDir()
	targetsPath := filepath.Join(dir, "targets.txt")
	queriesPath := filepath.Join(dir, "queries.txt")
	outputPath := filepath.Join(dir, "out.tsv")

	require.NoError(t, os.WriteFile(targetsPath, []byte("AAAAAAAA\n"), 0o644))
	require.NoError(t, os.WriteFile(queriesPath, []byte("AAAAAAAA\nTTTTTTTT\n"), 0o644))

	app := application()
	err := app.Run([]string{
		"gas", "run",
		"-q", queriesPath,
		"-t", targetsPath,
		"-o", outputPath,
		"-m", "8",
	})
	require.NoError(t, err)

	report, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(report), "#query\treversed\tt_id")
	assert.Contains(t, string(report), "8M")
	assert.Contains(t, string(report), "TTTTTTTT\t.\t.\t.\t.")
}

func TestRunCommandSAMOutput(t *testing.T) {
	dir := t.TempDir()
	targetsPath := filepath.Join(dir, "targets.txt")
	queriesPath := filepath.Join(dir, "queries.txt")
	outputPath := filepath.Join(dir, "out.sam")

	require.NoError(t, os.WriteFile(targetsPath, []byte("AAAAAAAA\n"), 0o644))
	require.NoError(t, os.WriteFile(queriesPath, []byte("AAAAAAAA\n"), 0o644))

	app := application()
	err := app.Run([]string{
		"gas", "run",
		"-q", queriesPath,
		"-t", targetsPath,
		"-o", outputPath,
		"-m", "8",
		"--sam",
	})
	require.NoError(t, err)

	report, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(report), "@HD")
	assert.Contains(t, string(report), "8M")
}

func TestRunCommandStrictAlphabetRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	targetsPath := filepath.Join(dir, "targets.txt")
	queriesPath := filepath.Join(dir, "queries.txt")

	require.NoError(t, os.WriteFile(targetsPath, []byte("AAAANNNN\n"), 0o644))
	require.NoError(t, os.WriteFile(queriesPath, []byte("AAAAAAAA\n"), 0o644))

	app := application()
	err := app.Run([]string{
		"gas", "run",
		"-q", queriesPath,
		"-t", targetsPath,
		"--strict-alphabet",
	})
	assert.Error(t, err)
}

func TestDebugNeedlemanWunsch(t *testing.T) {
	app := application()
	assert.NoError(t, app.Run([]string{"gas", "debug", "nw", "GATTACA", "GCATGCU"}))
}

func TestDebugNeedlemanWunschMatrix(t *testing.T) {
	app := application()
	assert.NoError(t, app.Run([]string{"gas", "debug", "nw-matrix", "ACGTACGT", "ACGAACGT"}))
}

func TestDebugSmithWatermanMatrix(t *testing.T) {
	app := application()
	assert.NoError(t, app.Run([]string{"gas", "debug", "sw-matrix", "ACGTACGT", "ACGAACGT"}))
}
