// Package render turns report sections into HTML pages and DOCX exports.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/url"

	"github.com/yuin/goldmark"

	"github.com/dgallion1/mhrisk/internal/content"
)

//go:embed templates/*.html static/*.css
var assets embed.FS

// NotFoundText is shown in place of a section that does not exist.
const NotFoundText = "Section not found. Pick a section from the navigation panel."

// Page renders the full report page. It is safe for concurrent use;
// all state is built in NewPage and only read afterwards.
type Page struct {
	tmpl     *template.Template
	md       goldmark.Markdown
	sections [content.SectionCount][]blockView
}

type blockView struct {
	Kind    content.BlockKind
	Level   int
	Text    string
	HTML    template.HTML
	Metrics []content.Metric

	// Panel only.
	Key       string
	Open      bool
	ToggleURL string
}

type navItem struct {
	Slug   string
	Label  string
	Active bool
}

type pageView struct {
	Title            string
	Icon             string
	SidebarTitle     string
	ControlLabel     string
	Nav              []navItem
	AttributionTitle string
	Members          []content.Member
	Found            bool
	NotFound         string
	Blocks           []blockView
}

// NewPage parses the embedded templates and pre-renders every Markdown body.
func NewPage() (*Page, error) {
	tmpl, err := template.ParseFS(assets, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	p := &Page{tmpl: tmpl, md: newMarkdown()}

	for _, sec := range content.Sections() {
		views := make([]blockView, 0, len(sec.Blocks))
		for _, b := range sec.Blocks {
			v, err := p.viewOf(b)
			if err != nil {
				return nil, fmt.Errorf("section %q: %w", sec.Label(), err)
			}
			views = append(views, v)
		}
		p.sections[sec.ID] = views
	}
	return p, nil
}

func (p *Page) viewOf(b content.Block) (blockView, error) {
	v := blockView{Kind: b.Kind()}
	switch b := b.(type) {
	case content.Heading:
		v.Level = b.Level
		v.Text = b.Text
	case content.Paragraph:
		h, err := toHTML(p.md, b.Markdown)
		if err != nil {
			return v, err
		}
		v.HTML = h
	case content.MetricRow:
		v.Metrics = b.Metrics
	case content.Panel:
		h, err := toHTML(p.md, b.Markdown)
		if err != nil {
			return v, err
		}
		v.Text = b.Title
		v.Key = b.Key()
		v.HTML = h
	default:
		return v, fmt.Errorf("unsupported block %T", b)
	}
	return v, nil
}

// Static returns the embedded stylesheet directory.
func Static() fs.FS {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Render writes the page for sel. A selection whose section does not
// exist renders the page shell with a not-found notice.
func (p *Page) Render(w io.Writer, sel content.Selection) error {
	view := pageView{
		Title:            content.PageTitle,
		Icon:             content.PageIcon,
		SidebarTitle:     content.SidebarTitle,
		ControlLabel:     content.ControlLabel,
		AttributionTitle: content.AttributionTitle,
		Members:          content.Members(),
		NotFound:         NotFoundText,
	}
	for id := content.SectionID(0); id < content.SectionCount; id++ {
		view.Nav = append(view.Nav, navItem{
			Slug:   id.Slug(),
			Label:  id.Label(),
			Active: id == sel.Active,
		})
	}

	if sel.Active.Valid() {
		view.Found = true
		src := p.sections[sel.Active]
		view.Blocks = make([]blockView, len(src))
		for i, b := range src {
			if b.Kind == content.KindPanel {
				b.Open = sel.Expanded(b.Key)
				b.ToggleURL = PageURL(sel.Toggle(b.Key))
			}
			view.Blocks[i] = b
		}
	}

	if err := p.tmpl.ExecuteTemplate(w, "page.html", view); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// PageURL is the address that reproduces sel.
func PageURL(sel content.Selection) string {
	q := url.Values{}
	q.Set("section", sel.Active.Slug())
	for _, key := range sel.OpenPanels() {
		q.Add("open", key)
	}
	return "/?" + q.Encode()
}
