package app

import "errors"

// StdinPath is the FilePath value that reads the pattern from standard input.
const StdinPath = "-"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Exactly one pattern source is used: inline text, a raw pattern file or
	// a named pattern from an HCL library.
	Text        string
	FilePath    string
	LibraryPath string
	PatternName string

	List       bool
	ChartOnly  bool
	KeyOnly    bool
	ExportPath string // expanded pattern as HCL

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ChartOnly && cfg.KeyOnly {
		return nil, errors.New("chart-only and key-only cannot be combined")
	}
	if cfg.PatternName != "" && cfg.LibraryPath == "" {
		return nil, errors.New("a pattern name requires a library path")
	}
	if cfg.List {
		if cfg.LibraryPath == "" {
			return nil, errors.New("listing patterns requires a library path")
		}
		return &cfg, nil
	}

	sources := 0
	for _, set := range []bool{cfg.Text != "", cfg.FilePath != "", cfg.LibraryPath != ""} {
		if set {
			sources++
		}
	}
	switch {
	case sources == 0:
		return nil, errors.New("a pattern is required: pass text, a file or a library pattern")
	case sources > 1:
		return nil, errors.New("only one pattern source may be given")
	case cfg.LibraryPath != "" && cfg.PatternName == "":
		return nil, errors.New("a library path requires a pattern name")
	}
	return &cfg, nil
}
