package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/knitchart/internal/ctxlog"
	"github.com/specialistvlad/knitchart/internal/pipeline"
)

// Run executes the main application logic based on the App's configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.List {
		return a.listPatterns(ctx)
	}

	text, err := a.patternText(ctx)
	if err != nil {
		return err
	}

	result, err := a.service.Generate(ctx, text)
	if err != nil {
		return fmt.Errorf("chart generation failed: %w", err)
	}

	if err := a.writeResult(result); err != nil {
		return err
	}

	if a.config.ExportPath != "" {
		if err := a.export(ctx, result); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// patternText reads the pattern from whichever source is configured.
func (a *App) patternText(ctx context.Context) (string, error) {
	logger := ctxlog.FromContext(ctx)
	switch {
	case a.config.Text != "":
		logger.Debug("Using pattern text from arguments.")
		return a.config.Text, nil

	case a.config.FilePath == StdinPath:
		logger.Debug("Reading pattern from standard input.")
		data, err := io.ReadAll(a.streams.In)
		if err != nil {
			return "", fmt.Errorf("failed to read pattern from stdin: %w", err)
		}
		return string(data), nil

	case a.config.FilePath != "":
		logger.Debug("Reading pattern file.", "path", a.config.FilePath)
		data, err := os.ReadFile(a.config.FilePath)
		if err != nil {
			return "", fmt.Errorf("failed to read pattern file: %w", err)
		}
		return string(data), nil

	default:
		lib, err := a.loader.Load(ctx, a.config.LibraryPath)
		if err != nil {
			return "", fmt.Errorf("failed to load pattern library: %w", err)
		}
		def, err := lib.Get(a.config.PatternName)
		if err != nil {
			return "", err
		}
		logger.Info("Pattern loaded from library.", "name", def.Name, "source", def.Source)
		return def.Text, nil
	}
}

func (a *App) writeResult(result *pipeline.Result) error {
	var out string
	switch {
	case a.config.ChartOnly:
		out = "Chart:\n" + result.ChartText
	case a.config.KeyOnly:
		out = "Key:\n" + result.KeyText
	default:
		out = result.String()
	}
	if _, err := io.WriteString(a.streams.Out, out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (a *App) export(ctx context.Context, result *pipeline.Result) error {
	f, err := a.createFile(a.config.ExportPath)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}

	if err := a.exporter.Export(ctx, f, result.Pattern); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to export pattern: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close export file: %w", err)
	}
	a.logger.Info("Expanded pattern exported.", "path", a.config.ExportPath)
	return nil
}

func (a *App) listPatterns(ctx context.Context) error {
	lib, err := a.loader.Load(ctx, a.config.LibraryPath)
	if err != nil {
		return fmt.Errorf("failed to load pattern library: %w", err)
	}
	for _, name := range lib.Names() {
		def := lib.Patterns[name]
		line := name
		if def.Description != "" {
			line += " - " + def.Description
		}
		if _, err := fmt.Fprintln(a.streams.Out, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	a.logger.Debug("Patterns listed.", "count", len(lib.Patterns))
	return nil
}
