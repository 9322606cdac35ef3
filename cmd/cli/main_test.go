package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/knitchart/internal/app"
	"github.com/specialistvlad/knitchart/internal/cli"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	err := run(out, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
}

func TestRun_Chart(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	err := runWith(app.Streams{Out: out, Log: logs}, []string{"--chart-only", "k, p, k"})

	require.NoError(t, err)
	require.Equal(t, "Chart:\n"+
		"---+---+---+---+---\n"+
		"   |   | - |   | 1 \n"+
		"---+---+---+---+---\n", out.String())
}

func TestRun_Stdin(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	in := strings.NewReader("cast on 2 sts\nrow 1: k2\nrow 2: k2\n")

	err := runWith(app.Streams{In: in, Out: out}, []string{"-f", "-", "-key-only"})

	require.NoError(t, err)
	require.Contains(t, out.String(), "|    -   | purl | knit |")
}

func TestRun_InvalidPattern(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("cast on 5 sts\nrow 1: *k2*"), 0o600))
	out := &bytes.Buffer{}

	// --- Act ---
	err := runWith(app.Streams{Out: out}, []string{"-f", path})

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot expand row 1")
	require.Empty(t, out.String())
}
