package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/specialistvlad/knitchart/internal/config"
	"github.com/specialistvlad/knitchart/internal/ctxlog"
	"github.com/specialistvlad/knitchart/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL library loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot decodes the top-level blocks of a library file.
type fileRoot struct {
	Locals   []*localsBlock  `hcl:"locals,block"`
	Patterns []*patternBlock `hcl:"pattern,block"`
}

type localsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// patternBlock keeps its body undecoded until every file's locals are known.
type patternBlock struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

type patternAttrs struct {
	Description string   `hcl:"description,optional"`
	Text        string   `hcl:"text"`
	Tags        []string `hcl:"tags,optional"`
}

type parsedFile struct {
	path string
	root fileRoot
}

// Load parses every .hcl file under paths. Locals from all files share one
// namespace and are visible to every pattern as local.<name>.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Library, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(".hcl", paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to find library files: %w", err)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	parsed := make([]parsedFile, 0, len(files))
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}
		parsed = append(parsed, parsedFile{path: file, root: root})
	}

	evalCtx, err := l.evalContext(ctx, parsed)
	if err != nil {
		return nil, err
	}

	lib := config.NewLibrary()
	for _, f := range parsed {
		for _, block := range f.root.Patterns {
			def, err := l.translatePattern(block, f.path, evalCtx)
			if err != nil {
				return nil, err
			}
			if err := lib.Add(def); err != nil {
				return nil, err
			}
			logger.Debug("Pattern definition loaded.", "name", def.Name, "file", f.path)
		}
	}

	logger.Debug("HCL loading complete.", "patterns", len(lib.Patterns))
	return lib, nil
}

// evalContext evaluates every locals block into the "local" object.
func (l *Loader) evalContext(ctx context.Context, files []parsedFile) (*hcl.EvalContext, error) {
	logger := ctxlog.FromContext(ctx)
	locals := make(map[string]cty.Value)
	for _, f := range files {
		for _, block := range f.root.Locals {
			attrs, diags := block.Body.JustAttributes()
			if diags.HasErrors() {
				return nil, fmt.Errorf("invalid locals block in %s: %w", f.path, diags)
			}
			for name, attr := range attrs {
				if _, exists := locals[name]; exists {
					return nil, fmt.Errorf("duplicate local %q in %s", name, f.path)
				}
				val, diags := attr.Expr.Value(nil)
				if diags.HasErrors() {
					return nil, fmt.Errorf("invalid value for local %q in %s: %w", name, f.path, diags)
				}
				locals[name] = val
			}
		}
	}
	logger.Debug("Locals evaluated.", "count", len(locals))

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"local": cty.ObjectVal(locals)},
	}, nil
}

func (l *Loader) translatePattern(block *patternBlock, path string, evalCtx *hcl.EvalContext) (*config.PatternDefinition, error) {
	var attrs patternAttrs
	if diags := gohcl.DecodeBody(block.Body, evalCtx, &attrs); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode pattern %q in %s: %w", block.Name, path, diags)
	}
	return &config.PatternDefinition{
		Name:        block.Name,
		Description: attrs.Description,
		Text:        attrs.Text,
		Tags:        attrs.Tags,
		Source:      path,
	}, nil
}
