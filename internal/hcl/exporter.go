package hcl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/specialistvlad/knitchart/internal/ctxlog"
	"github.com/specialistvlad/knitchart/internal/pattern"
)

// Exporter is the HCL-specific implementation of the config.Exporter
// interface.
type Exporter struct{}

// NewExporter creates a new HCL exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export writes p as a cast_on attribute followed by one row block per row,
// labelled with the row number.
func (e *Exporter) Export(ctx context.Context, w io.Writer, p *pattern.Pattern) error {
	logger := ctxlog.FromContext(ctx)
	if p == nil || p.Height() == 0 {
		return errors.New("cannot export an empty pattern")
	}

	f := hclwrite.NewEmptyFile()
	body := f.Body()
	rows := p.Rows()
	body.SetAttributeValue("cast_on", cty.NumberIntVal(int64(rows[0].StartCount())))

	for _, r := range rows {
		abbrevs := make([]string, 0, r.Len())
		for _, s := range r.Stitches() {
			abbrevs = append(abbrevs, s.Abbrev)
		}
		stitches, err := gocty.ToCtyValue(abbrevs, cty.List(cty.String))
		if err != nil {
			return fmt.Errorf("failed to convert stitches of row %d: %w", r.Number(), err)
		}

		body.AppendNewline()
		rb := body.AppendNewBlock("row", []string{strconv.Itoa(r.Number())}).Body()
		rb.SetAttributeValue("stitches", stitches)
		rb.SetAttributeValue("start_count", cty.NumberIntVal(int64(r.StartCount())))
		rb.SetAttributeValue("end_count", cty.NumberIntVal(int64(r.EndCount())))
	}

	n, err := w.Write(hclwrite.Format(f.Bytes()))
	if err != nil {
		return fmt.Errorf("failed to write HCL: %w", err)
	}
	logger.Debug("Pattern exported as HCL.", "rows", len(rows), "bytes", n)
	return nil
}
