package app

import (
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/knitchart/internal/config"
	"github.com/specialistvlad/knitchart/internal/pipeline"
)

// Streams are the process streams an App reads from and writes to. Chart
// output goes to Out and logs go to Log so the two never interleave.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Log io.Writer
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	streams  Streams
	config   *Config
	logger   *slog.Logger
	loader   config.Loader
	exporter config.Exporter
	service  *pipeline.Service

	createFile func(name string) (io.WriteCloser, error)
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger.
func NewApp(streams Streams, cfg *Config, loader config.Loader, exporter config.Exporter) *App {
	if streams.In == nil {
		streams.In = os.Stdin
	}
	if streams.Log == nil {
		streams.Log = io.Discard
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, streams.Log)
	logger.Debug("Logger configured successfully.")

	return &App{
		streams:    streams,
		config:     cfg,
		logger:     logger,
		loader:     loader,
		exporter:   exporter,
		service:    pipeline.New(logger),
		createFile: createFile,
	}
}

func createFile(name string) (io.WriteCloser, error) {
	return os.Create(name)
}
