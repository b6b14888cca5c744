package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// newMarkdown returns the converter used for every authored body.
// Raw HTML in the source is escaped (goldmark's default).
func newMarkdown() goldmark.Markdown {
	return goldmark.New(goldmark.WithExtensions(extension.Linkify))
}

// toHTML converts Markdown source to trusted HTML.
func toHTML(md goldmark.Markdown, src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// run is a span of text with uniform emphasis.
type run struct {
	text   string
	bold   bool
	italic bool
}

// line is one output paragraph made of runs.
type line []run

func (l line) String() string {
	var sb strings.Builder
	for _, r := range l {
		sb.WriteString(r.text)
	}
	return sb.String()
}

const bullet = "• "

// flatten walks the Markdown AST and returns one line per block-level
// paragraph. List items become bullet-prefixed lines.
func flatten(md goldmark.Markdown, src string) []line {
	source := []byte(src)
	doc := md.Parser().Parse(text.NewReader(source))

	var out []line
	var walk func(n ast.Node)
	walk = func(n ast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch node := c.(type) {
			case *ast.List:
				walk(node)
			case *ast.ListItem:
				for b := node.FirstChild(); b != nil; b = b.NextSibling() {
					if _, nested := b.(*ast.List); nested {
						walk(b)
						continue
					}
					l := line{{text: bullet}}
					l = inlineRuns(b, source, false, false, l)
					out = append(out, trimLine(l))
				}
			case *ast.Paragraph, *ast.TextBlock, *ast.Heading:
				l := inlineRuns(node, source, false, false, nil)
				if len(l) > 0 {
					out = append(out, trimLine(l))
				}
			default:
				walk(node)
			}
		}
	}
	walk(doc)
	return out
}

func inlineRuns(n ast.Node, src []byte, bold, italic bool, out line) line {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			t := string(node.Segment.Value(src))
			if node.SoftLineBreak() || node.HardLineBreak() {
				t += " "
			}
			out = append(out, run{text: t, bold: bold, italic: italic})
		case *ast.Emphasis:
			out = inlineRuns(node, src, bold || node.Level >= 2, italic || node.Level == 1, out)
		case *ast.AutoLink:
			out = append(out, run{text: string(node.URL(src)), bold: bold, italic: italic})
		default:
			out = inlineRuns(node, src, bold, italic, out)
		}
	}
	return out
}

// trimLine drops trailing whitespace left by a final soft break.
func trimLine(l line) line {
	if len(l) == 0 {
		return l
	}
	last := &l[len(l)-1]
	last.text = strings.TrimRight(last.text, " ")
	return l
}
