package render

import (
	"bytes"
	"fmt"

	"github.com/fumiama/go-docx"

	"iddss/pkg/export/types"
)

// docxRenderer emits the flowing Word document. go-docx exposes runs, not
// named paragraph styles, so headings are sized bold runs and bullets are
// glyph-prefixed paragraphs.
type docxRenderer struct{}

func NewDOCX() Renderer { return &docxRenderer{} }

// Half-point font sizes per heading level (0 = document title).
var docxHeadingSizes = map[int]string{0: "40", 1: "32", 2: "28"}

// Details hang half an inch in so they align under the bullet text
// above them. Indentation is in twips.
const docxDetailIndent = 720

func (r *docxRenderer) Render(d *types.FinalDesign) ([]byte, error) {
	w := docx.New().WithDefaultTheme()

	for _, blk := range Build(d) {
		switch blk.Kind {
		case KindHeading:
			p := w.AddParagraph()
			run := p.AddText(blk.Text)
			if size, ok := docxHeadingSizes[blk.Level]; ok {
				run.Size(size).Bold()
			}
			// Level-3 labels stay plain body text in the flowing format.
		case KindPara:
			w.AddParagraph().AddText(blk.Text)
		case KindBullet:
			w.AddParagraph().AddText("• " + blk.Text)
		case KindDetail:
			p := w.AddParagraph()
			p.Properties = &docx.ParagraphProperties{Ind: &docx.Ind{Left: docxDetailIndent}}
			p.AddText(blk.Text)
		case KindPageBreak:
			// The flowing document does not force page boundaries.
		}
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("%w: docx: %v", ErrUnavailable, err)
	}
	return buf.Bytes(), nil
}
