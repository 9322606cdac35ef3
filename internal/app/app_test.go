package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/knitchart/internal/hcl"
	"github.com/specialistvlad/knitchart/internal/pattern"
)

// safeBuffer is a thread-safe buffer for capturing log output in tests.
type safeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

func setupApp(t *testing.T, cfg Config, stdin string) (*App, *bytes.Buffer, *safeBuffer) {
	t.Helper()
	cfg.LogLevel = "debug"
	validated, err := NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &safeBuffer{}
	a := NewApp(Streams{In: strings.NewReader(stdin), Out: out, Log: logs}, validated, hcl.NewLoader(), hcl.NewExporter())

	t.Cleanup(func() {
		if os.Getenv("KNITCHART_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return a, out, logs
}

const library = `
pattern "seed" {
  description = "Seed stitch swatch"
  text        = "cast on 4 sts\nrow 1: k, p, k, p\nrow 2: k, p, k, p"
}

pattern "stockinette" {
  text = "cast on 2 sts\nrow 1: k2\nrow 2: p2"
}
`

func writeLibrary(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "library.hcl")
	require.NoError(t, os.WriteFile(path, []byte(library), 0o600))
	return path
}

const ribChart = "---+---+---+---+---+---\n" +
	"   |   | - | - |   | 1 \n" +
	"---+---+---+---+---+---\n"

func TestApp_Run(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      func(t *testing.T) Config
		stdin    string
		expected func(t *testing.T, out string)
	}{
		{
			name: "inline text",
			cfg:  func(*testing.T) Config { return Config{Text: "k, p2, k"} },
			expected: func(t *testing.T, out string) {
				assert.True(t, strings.HasPrefix(out, "Chart:\n"+ribChart+"Key:\n"), out)
			},
		},
		{
			name:  "stdin",
			cfg:   func(*testing.T) Config { return Config{FilePath: StdinPath, ChartOnly: true} },
			stdin: "k, p2, k\n",
			expected: func(t *testing.T, out string) {
				assert.Equal(t, "Chart:\n"+ribChart, out)
			},
		},
		{
			name: "pattern file",
			cfg: func(t *testing.T) Config {
				path := filepath.Join(t.TempDir(), "rib.txt")
				require.NoError(t, os.WriteFile(path, []byte("k, p2, k"), 0o600))
				return Config{FilePath: path, KeyOnly: true}
			},
			expected: func(t *testing.T, out string) {
				assert.True(t, strings.HasPrefix(out, "Key:\n+--------+"), out)
				assert.NotContains(t, out, "Chart:")
			},
		},
		{
			name: "library pattern",
			cfg: func(t *testing.T) Config {
				return Config{LibraryPath: writeLibrary(t), PatternName: "stockinette", ChartOnly: true}
			},
			expected: func(t *testing.T, out string) {
				assert.Equal(t, "Chart:\n"+
					"---+---+---+---\n"+
					" 2 |   |   |   \n"+
					"---+---+---+---\n"+
					"   |   |   | 1 \n"+
					"---+---+---+---\n", out)
			},
		},
		{
			name: "list library",
			cfg:  func(t *testing.T) Config { return Config{LibraryPath: writeLibrary(t), List: true} },
			expected: func(t *testing.T, out string) {
				assert.Equal(t, "seed - Seed stitch swatch\nstockinette\n", out)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, out, _ := setupApp(t, tc.cfg(t), tc.stdin)

			require.NoError(t, a.Run(context.Background()))
			tc.expected(t, out.String())
		})
	}
}

func TestApp_RunExport(t *testing.T) {
	// --- Arrange ---
	exportPath := filepath.Join(t.TempDir(), "out.hcl")
	a, _, logs := setupApp(t, Config{Text: "cast on 2 sts\nrow 1: kfb, k", ExportPath: exportPath}, "")

	// --- Act ---
	err := a.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	data, err := os.ReadFile(exportPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "cast_on = 2")
	assert.Contains(t, string(data), `row "1" {`)
	assert.Contains(t, logs.String(), "Expanded pattern exported.")
}

type failingFile struct {
	bytes.Buffer
	closeErr error
	closed   bool
}

func (f *failingFile) Close() error {
	f.closed = true
	return f.closeErr
}

type failingExporter struct{}

func (failingExporter) Export(context.Context, io.Writer, *pattern.Pattern) error {
	return errors.New("disk full")
}

func TestApp_RunExportErrors(t *testing.T) {
	t.Run("close error is reported", func(t *testing.T) {
		// --- Arrange ---
		a, _, logs := setupApp(t, Config{Text: "k2", ExportPath: "out.hcl"}, "")
		file := &failingFile{closeErr: errors.New("flush failed")}
		a.createFile = func(string) (io.WriteCloser, error) { return file, nil }

		// --- Act ---
		err := a.Run(context.Background())

		// --- Assert ---
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to close export file: flush failed")
		assert.True(t, file.closed)
		assert.NotEmpty(t, file.String())
		assert.NotContains(t, logs.String(), "Expanded pattern exported.")
	})

	t.Run("export error still closes the file", func(t *testing.T) {
		a, _, _ := setupApp(t, Config{Text: "k2", ExportPath: "out.hcl"}, "")
		a.exporter = failingExporter{}
		file := &failingFile{}
		a.createFile = func(string) (io.WriteCloser, error) { return file, nil }

		err := a.Run(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to export pattern: disk full")
		assert.True(t, file.closed)
	})

	t.Run("create error", func(t *testing.T) {
		a, _, _ := setupApp(t, Config{Text: "k2", ExportPath: t.TempDir()}, "")

		err := a.Run(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create export file")
	})
}

func TestApp_RunErrors(t *testing.T) {
	testCases := []struct {
		name        string
		cfg         func(t *testing.T) Config
		errContains string
	}{
		{
			name:        "invalid pattern",
			cfg:         func(*testing.T) Config { return Config{Text: "row 1: k2, zz"} },
			errContains: "chart generation failed",
		},
		{
			name:        "missing file",
			cfg:         func(t *testing.T) Config { return Config{FilePath: filepath.Join(t.TempDir(), "nope.txt")} },
			errContains: "failed to read pattern file",
		},
		{
			name: "unknown library pattern",
			cfg: func(t *testing.T) Config {
				return Config{LibraryPath: writeLibrary(t), PatternName: "garter"}
			},
			errContains: `pattern "garter" not found`,
		},
		{
			name:        "missing library",
			cfg:         func(t *testing.T) Config { return Config{LibraryPath: filepath.Join(t.TempDir(), "nope"), List: true} },
			errContains: "failed to load pattern library",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, out, _ := setupApp(t, tc.cfg(t), "")

			err := a.Run(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errContains)
			assert.Empty(t, out.String())
		})
	}
}

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name      string
		cfg       Config
		expectErr string
	}{
		{name: "text", cfg: Config{Text: "k"}},
		{name: "file", cfg: Config{FilePath: "-"}},
		{name: "library", cfg: Config{LibraryPath: "lib", PatternName: "rib"}},
		{name: "list", cfg: Config{LibraryPath: "lib", List: true}},
		{name: "no source", cfg: Config{}, expectErr: "a pattern is required"},
		{name: "two sources", cfg: Config{Text: "k", FilePath: "f"}, expectErr: "only one pattern source"},
		{name: "library without name", cfg: Config{LibraryPath: "lib"}, expectErr: "requires a pattern name"},
		{name: "name without library", cfg: Config{Text: "k", PatternName: "rib"}, expectErr: "requires a library path"},
		{name: "list without library", cfg: Config{List: true}, expectErr: "listing patterns requires"},
		{name: "chart and key only", cfg: Config{Text: "k", ChartOnly: true, KeyOnly: true}, expectErr: "cannot be combined"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewConfig(tc.cfg)
			if tc.expectErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.cfg, *cfg)
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("json at warn", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger("warn", "json", &buf)
		logger.Info("Dropped.")
		logger.Warn("Kept.", "row", 2)
		assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
		assert.Contains(t, buf.String(), `"msg":"Kept.","row":2`)
	})

	t.Run("text defaults to info", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger("bogus", "text", &buf)
		logger.Debug("Dropped.")
		logger.Info("Kept.")
		assert.Contains(t, buf.String(), `level=INFO msg=Kept.`)
		assert.NotContains(t, buf.String(), "Dropped.")
	})
}
