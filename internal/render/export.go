package render

import (
	"fmt"
	"io"

	"github.com/fumiama/go-docx"

	"github.com/dgallion1/mhrisk/internal/content"
)

// Font sizes in half-points.
const (
	titleSize   = "40"
	headerSize  = "32"
	subheadSize = "28"
	panelSize   = "24"
)

// Export writes a Word document with the given sections, every panel
// expanded. With no ids, all sections are exported in navigation order.
func (p *Page) Export(w io.Writer, ids ...content.SectionID) error {
	if len(ids) == 0 {
		for id := content.SectionID(0); id < content.SectionCount; id++ {
			ids = append(ids, id)
		}
	}

	doc := docx.New().WithDefaultTheme()
	doc.AddParagraph().AddText(content.PageTitle).Bold().Size(titleSize)

	for _, id := range ids {
		sec, ok := content.Lookup(id)
		if !ok {
			return fmt.Errorf("export %v: %w", id, content.ErrUnknownSection)
		}
		doc.AddParagraph().AddText(sec.Label()).Bold().Size(headerSize)
		for _, b := range sec.Blocks {
			p.exportBlock(doc, b)
		}
	}

	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("write docx: %w", err)
	}
	return nil
}

func (p *Page) exportBlock(doc *docx.Docx, b content.Block) {
	switch b := b.(type) {
	case content.Heading:
		size := headerSize
		if b.Level > 1 {
			size = subheadSize
		}
		doc.AddParagraph().AddText(b.Text).Bold().Size(size)
	case content.Paragraph:
		p.exportMarkdown(doc, b.Markdown)
	case content.MetricRow:
		for _, m := range b.Metrics {
			para := doc.AddParagraph()
			para.AddText(m.Label + ": ")
			para.AddText(m.Value).Bold()
		}
	case content.Panel:
		doc.AddParagraph().AddText(b.Title).Bold().Size(panelSize)
		p.exportMarkdown(doc, b.Markdown)
	}
}

func (p *Page) exportMarkdown(doc *docx.Docx, src string) {
	for _, l := range flatten(p.md, src) {
		para := doc.AddParagraph()
		for _, r := range l {
			if r.text == "" {
				continue
			}
			t := para.AddText(r.text)
			if r.bold {
				t.Bold()
			}
			if r.italic {
				t.Italic()
			}
		}
	}
}
