// Package pipeline wires the chart generation stages together: text is
// parsed into a part, expanded into a pattern, laid out as a chart and
// rendered as ASCII text. It is the only layer that logs.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/specialistvlad/knitchart/internal/chart"
	"github.com/specialistvlad/knitchart/internal/ctxlog"
	"github.com/specialistvlad/knitchart/internal/model"
	"github.com/specialistvlad/knitchart/internal/parser"
	"github.com/specialistvlad/knitchart/internal/pattern"
	"github.com/specialistvlad/knitchart/internal/render"
)

// Result holds every intermediate product of a Generate call.
type Result struct {
	Part    *model.Part
	Pattern *pattern.Pattern
	Chart   *chart.Chart

	ChartText string
	KeyText   string
}

// String returns the chart and key as one document, each under its heading.
func (r *Result) String() string {
	var b strings.Builder
	b.WriteString("Chart:\n")
	b.WriteString(r.ChartText)
	b.WriteString("Key:\n")
	b.WriteString(r.KeyText)
	return b.String()
}

// Service runs the stages. It is stateless apart from its logger and safe
// for concurrent use.
type Service struct {
	logger *slog.Logger
}

// New returns a Service that logs to logger. A nil logger is replaced by the
// one carried in each call's context, if any.
func New(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// withLogger makes sure ctx carries a logger, preferring one the caller
// already put there.
func (s *Service) withLogger(ctx context.Context) (context.Context, *slog.Logger) {
	if !ctxlog.Has(ctx) && s.logger != nil {
		ctx = ctxlog.WithLogger(ctx, s.logger)
	}
	return ctx, ctxlog.FromContext(ctx)
}

// Parse turns pattern text into a validated part.
func (s *Service) Parse(ctx context.Context, text string) (*model.Part, error) {
	_, logger := s.withLogger(ctx)
	logger.Debug("Parsing pattern text.", "length", len(text))

	node, err := parser.Parse(text)
	if err != nil {
		logger.Error("Failed to parse pattern.", "error", err)
		return nil, fmt.Errorf("failed to parse pattern: %w", err)
	}
	logger.Debug("Pattern text parsed.", "rows", len(node.Rows), "assumed_cast_on", node.AssumedCastOn)

	part, err := model.FromAST(node)
	if err != nil {
		logger.Error("Failed to validate pattern.", "error", err)
		return nil, fmt.Errorf("failed to validate pattern: %w", err)
	}
	logger.Debug("Pattern validated.", "cast_on", part.CastOn(), "rows", len(part.Rows()))
	return part, nil
}

// Expand resolves every repeat of part into a flat pattern.
func (s *Service) Expand(ctx context.Context, part *model.Part) (*pattern.Pattern, error) {
	_, logger := s.withLogger(ctx)
	if part == nil {
		return nil, errors.New("cannot expand a nil part")
	}

	p, err := pattern.Build(part)
	if err != nil {
		logger.Error("Failed to expand pattern.", "error", err)
		return nil, fmt.Errorf("failed to expand pattern: %w", err)
	}
	logger.Debug("Pattern expanded.", "height", p.Height(), "max_stitches", p.MaxLen())
	return p, nil
}

// Chart expands part and lays it out on the chart grid.
func (s *Service) Chart(ctx context.Context, part *model.Part) (*chart.Chart, error) {
	ctx, _ = s.withLogger(ctx)
	p, err := s.Expand(ctx, part)
	if err != nil {
		return nil, err
	}
	return s.layout(ctx, p)
}

func (s *Service) layout(ctx context.Context, p *pattern.Pattern) (*chart.Chart, error) {
	logger := ctxlog.FromContext(ctx)
	c, err := chart.New(p)
	if err != nil {
		logger.Error("Failed to lay out chart.", "error", err)
		return nil, fmt.Errorf("failed to lay out chart: %w", err)
	}
	logger.Debug("Chart laid out.", "width", c.Width(), "height", c.Height(), "symbols", c.Key().Len())
	return c, nil
}

// RenderChart returns the ASCII chart of part.
func (s *Service) RenderChart(ctx context.Context, part *model.Part) (string, error) {
	ctx, _ = s.withLogger(ctx)
	c, err := s.Chart(ctx, part)
	if err != nil {
		return "", err
	}
	return s.renderChart(ctx, c)
}

// RenderKey returns the ASCII key of part.
func (s *Service) RenderKey(ctx context.Context, part *model.Part) (string, error) {
	ctx, _ = s.withLogger(ctx)
	c, err := s.Chart(ctx, part)
	if err != nil {
		return "", err
	}
	return s.renderKey(ctx, c)
}

// Generate runs every stage on text.
func (s *Service) Generate(ctx context.Context, text string) (*Result, error) {
	ctx, logger := s.withLogger(ctx)
	logger.Debug("Generating chart.")

	part, err := s.Parse(ctx, text)
	if err != nil {
		return nil, err
	}
	p, err := s.Expand(ctx, part)
	if err != nil {
		return nil, err
	}
	c, err := s.layout(ctx, p)
	if err != nil {
		return nil, err
	}

	chartText, err := s.renderChart(ctx, c)
	if err != nil {
		return nil, err
	}
	keyText, err := s.renderKey(ctx, c)
	if err != nil {
		return nil, err
	}

	logger.Info("Chart generated.", "rows", c.Height(), "stitches", c.Width())
	return &Result{
		Part:      part,
		Pattern:   p,
		Chart:     c,
		ChartText: chartText,
		KeyText:   keyText,
	}, nil
}

func (s *Service) renderChart(ctx context.Context, c *chart.Chart) (string, error) {
	logger := ctxlog.FromContext(ctx)
	out, err := render.Chart(c)
	if err != nil {
		logger.Error("Failed to render chart.", "error", err)
		return "", fmt.Errorf("failed to render chart: %w", err)
	}
	logger.Debug("Chart rendered.", "bytes", len(out))
	return out, nil
}

func (s *Service) renderKey(ctx context.Context, c *chart.Chart) (string, error) {
	logger := ctxlog.FromContext(ctx)
	out, err := render.Key(c)
	if err != nil {
		logger.Error("Failed to render key.", "error", err)
		return "", fmt.Errorf("failed to render key: %w", err)
	}
	logger.Debug("Key rendered.", "bytes", len(out))
	return out, nil
}
