package render

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"iddss/pkg/export/types"
)

// pdfRenderer emits the paginated report: Letter portrait, hanging-indent
// bullets, and a forced page break before the assessments section. The
// cp1252 translator is the format-specific text transform; everything
// else follows the shared block stream.
type pdfRenderer struct{}

func NewPDF() Renderer { return &pdfRenderer{} }

const (
	pdfLineHeight   = 6.0
	pdfBulletIndent = 7.0
)

var pdfHeadingSizes = map[int]float64{0: 20, 1: 16, 2: 13, 3: 12}

func (r *pdfRenderer) Render(d *types.FinalDesign) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "Letter", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	leftMargin, _, _, _ := pdf.GetMargins()

	text := func(style string, size float64, s string) {
		pdf.SetFont("Helvetica", style, size)
		pdf.MultiCell(0, pdfLineHeight, tr(s), "", "L", false)
	}

	for _, blk := range Build(d) {
		switch blk.Kind {
		case KindHeading:
			size, ok := pdfHeadingSizes[blk.Level]
			if !ok {
				size = 12
			}
			if blk.Level <= 1 {
				pdf.Ln(3)
			}
			text("B", size, blk.Text)
			pdf.Ln(1)
		case KindPara:
			text("", 11, blk.Text)
		case KindBullet:
			// Hang the glyph into the margin so wrapped lines align with
			// the bullet text.
			pdf.SetLeftMargin(leftMargin + pdfBulletIndent)
			pdf.SetX(leftMargin)
			pdf.SetFont("Helvetica", "", 11)
			pdf.CellFormat(pdfBulletIndent, pdfLineHeight, tr("•"), "", 0, "L", false, 0, "")
			pdf.MultiCell(0, pdfLineHeight, tr(blk.Text), "", "L", false)
			pdf.SetLeftMargin(leftMargin)
		case KindDetail:
			pdf.SetLeftMargin(leftMargin + pdfBulletIndent)
			pdf.SetX(leftMargin + pdfBulletIndent)
			pdf.SetFont("Helvetica", "", 11)
			pdf.MultiCell(0, pdfLineHeight, tr(blk.Text), "", "L", false)
			pdf.SetLeftMargin(leftMargin)
		case KindPageBreak:
			pdf.AddPage()
		}
	}

	if pdf.Err() {
		return nil, fmt.Errorf("%w: pdf: %v", ErrUnavailable, pdf.Error())
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: pdf: %v", ErrUnavailable, err)
	}
	return buf.Bytes(), nil
}
