package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fumiama/go-docx"
	"github.com/google/go-cmp/cmp"

	"github.com/dgallion1/mhrisk/internal/content"
)

// docxParagraphs parses an exported document back into paragraph texts.
func docxParagraphs(t *testing.T, data []byte) []string {
	t.Helper()
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("parse docx: %v", err)
	}
	var out []string
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		var buf strings.Builder
		for _, child := range para.Children {
			run, ok := child.(*docx.Run)
			if !ok {
				continue
			}
			for _, rc := range run.Children {
				if txt, ok := rc.(*docx.Text); ok {
					buf.WriteString(txt.Text)
				}
			}
		}
		if s := strings.TrimSpace(buf.String()); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func TestExport_AllSections(t *testing.T) {
	p := newTestPage(t)
	var buf bytes.Buffer
	if err := p.Export(&buf); err != nil {
		t.Fatalf("Export: %v", err)
	}
	paras := docxParagraphs(t, buf.Bytes())
	if len(paras) == 0 || paras[0] != content.PageTitle {
		t.Fatalf("expected document to open with the page title, got %v", paras[:min(3, len(paras))])
	}

	joined := strings.Join(paras, "\n")
	for _, sec := range content.Sections() {
		if !strings.Contains(joined, sec.Label()) {
			t.Errorf("export missing section %q", sec.Label())
		}
	}
	for _, w := range []string{"AUC (Risk Classifier)", "~0.85", "strongly increased predicted risk (+0.061).", "Cluster F — Very Low-Risk, Healthy"} {
		if !strings.Contains(joined, w) {
			t.Errorf("export missing %q", w)
		}
	}
}

func TestExport_SingleSection(t *testing.T) {
	p := newTestPage(t)
	var buf bytes.Buffer
	if err := p.Export(&buf, content.Conclusion); err != nil {
		t.Fatalf("Export: %v", err)
	}
	joined := strings.Join(docxParagraphs(t, buf.Bytes()), "\n")
	if !strings.Contains(joined, "from reactive to proactive support") {
		t.Error("expected conclusion text")
	}
	if strings.Contains(joined, "Project at a Glance") {
		t.Error("single-section export leaked overview content")
	}
}

func TestExport_UnknownSection(t *testing.T) {
	p := newTestPage(t)
	err := p.Export(&bytes.Buffer{}, content.SectionCount)
	if !errors.Is(err, content.ErrUnknownSection) {
		t.Fatalf("expected ErrUnknownSection, got %v", err)
	}
}

func TestFlatten(t *testing.T) {
	md := newMarkdown()
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "paragraph with soft breaks",
			src:  "first line\nsecond line",
			want: []string{"first line second line"},
		},
		{
			name: "heading line then list",
			src:  "**Bold lead:**\n- one\n- two",
			want: []string{"Bold lead:", "• one", "• two"},
		},
		{
			name: "emphasis inside item",
			src:  "- **Key:** value",
			want: []string{"• Key: value"},
		},
		{
			name: "autolink",
			src:  "- https://example.com/a?b=c",
			want: []string{"• https://example.com/a?b=c"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, l := range flatten(md, tt.src) {
				got = append(got, l.String())
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("flatten mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFlatten_Emphasis(t *testing.T) {
	lines := flatten(newMarkdown(), "*Interpretation:* plain **strong**")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	var italic, bold, plain bool
	for _, r := range lines[0] {
		switch {
		case r.italic && r.text == "Interpretation:":
			italic = true
		case r.bold && r.text == "strong":
			bold = true
		case !r.bold && !r.italic && strings.Contains(r.text, "plain"):
			plain = true
		}
	}
	if !italic || !bold || !plain {
		t.Errorf("emphasis not preserved: %+v", lines[0])
	}
}
