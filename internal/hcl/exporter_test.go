package hcl

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/knitchart/internal/model"
	"github.com/specialistvlad/knitchart/internal/parser"
	"github.com/specialistvlad/knitchart/internal/pattern"
)

type exportedRow struct {
	Number     string   `hcl:"number,label"`
	Stitches   []string `hcl:"stitches"`
	StartCount int      `hcl:"start_count"`
	EndCount   int      `hcl:"end_count"`
}

type exportedFile struct {
	CastOn int            `hcl:"cast_on"`
	Rows   []*exportedRow `hcl:"row,block"`
}

func buildPattern(t *testing.T, text string) *pattern.Pattern {
	t.Helper()
	node, err := parser.Parse(text)
	require.NoError(t, err)
	part, err := model.FromAST(node)
	require.NoError(t, err)
	p, err := pattern.Build(part)
	require.NoError(t, err)
	return p
}

func TestExporter_Export(t *testing.T) {
	// --- Arrange ---
	p := buildPattern(t, "cast on 4 sts\nrow 1: k, *kfb*, k\nrow 2: p6")
	var buf bytes.Buffer

	// --- Act ---
	err := NewExporter().Export(context.Background(), &buf, p)

	// --- Assert ---
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `row "1" {`)

	file, diags := hclparse.NewParser().ParseHCL(buf.Bytes(), "export.hcl")
	require.False(t, diags.HasErrors(), diags.Error())
	var decoded exportedFile
	diags = gohcl.DecodeBody(file.Body, nil, &decoded)
	require.False(t, diags.HasErrors(), diags.Error())

	expected := exportedFile{
		CastOn: 4,
		Rows: []*exportedRow{
			{Number: "1", Stitches: []string{"k", "kfb", "kfb", "k"}, StartCount: 4, EndCount: 6},
			{Number: "2", Stitches: []string{"p", "p", "p", "p", "p", "p"}, StartCount: 6, EndCount: 6},
		},
	}
	if diff := cmp.Diff(expected, decoded); diff != "" {
		t.Errorf("exported HCL mismatch (-want +got):\n%s", diff)
	}
}

func TestExporter_EmptyPattern(t *testing.T) {
	var buf bytes.Buffer
	err := NewExporter().Export(context.Background(), &buf, nil)
	require.Error(t, err)
	assert.Empty(t, buf.String())
}
