package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeRunFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600), "failed to set up test file")
	return path
}

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A syntax error makes app.NewApp panic while loading the run file.
	filePath := writeRunFile(t, "main.hcl", `
		abs_error = 1e-4
		x0 = (
	`)
	args := []string{filePath}
	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(context.Background(), out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error after recovering from a panic")

	errStr := runErr.Error()
	require.True(t, strings.Contains(errStr, "application startup panicked"), "The error message should indicate that a panic was recovered.")
	require.True(t, strings.Contains(errStr, "failed to parse"), "The error message should contain the underlying reason for the panic.")
}

func TestRun_UnsupportedExtension(t *testing.T) {
	t.Parallel()

	filePath := writeRunFile(t, "run.toml", "abs_error = 1")

	runErr := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{filePath})

	require.Error(t, runErr)
	require.Contains(t, runErr.Error(), "unsupported config file extension")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	err := run(context.Background(), out, &bytes.Buffer{}, args)

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_OriginalJSONFormat(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	filePath := writeRunFile(t, "config.json", `{
  "abs_error": 1,
  "rel_error": 1,
  "x0": -10,
  "y0": -10,
  "x1": 10,
  "y1": 10,
  "xsteps": 50,
  "ysteps": 50,
  "max_iters": 1,
  "thread_num": 5
}`)
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, logs, []string{"-log-format", "json", filePath})

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "shubert: integral = ")
	require.Contains(t, out.String(), "exhausted after 1 iterations")
	require.Contains(t, logs.String(), `"msg":"Iteration finished."`)
}

func TestRun_YAMLRunFile(t *testing.T) {
	t.Parallel()

	filePath := writeRunFile(t, "run.yml", `
abs_error: 1
rel_error: 1
x0: 0
y0: 0
x1: 1
y1: 1
xsteps: 4
ysteps: 4
max_iters: 1
thread_num: 2
integrand: constant
`)
	out := &bytes.Buffer{}

	err := run(context.Background(), out, &bytes.Buffer{}, []string{filePath})

	require.NoError(t, err)
	require.Contains(t, out.String(), "constant: integral = 1 ")
}
