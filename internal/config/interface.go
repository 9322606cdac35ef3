package config

import (
	"context"
	"io"

	"github.com/specialistvlad/knitchart/internal/pattern"
)

// Loader is the interface for a format-specific pattern library loader.
type Loader interface {
	// Load reads every library file found under the given paths and merges
	// them into one Library.
	Load(ctx context.Context, paths ...string) (*Library, error)
}

// Exporter is the interface for writing an expanded pattern in a
// format-specific way.
type Exporter interface {
	Export(ctx context.Context, w io.Writer, p *pattern.Pattern) error
}
