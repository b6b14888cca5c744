package api

import (
	"bytes"
	"net/http"
	"net/url"
	"time"

	"github.com/dgallion1/mhrisk/internal/content"
)

// selectionFromQuery rebuilds the selection carried in the page URL.
// ok is false when the section slug names no section.
func selectionFromQuery(q url.Values) (sel content.Selection, ok bool) {
	sel = content.Default()
	if slug := q.Get("section"); slug != "" {
		id, err := content.ParseSlug(slug)
		if err != nil {
			return sel.Select(content.NoSection), false
		}
		sel = sel.Select(id)
	}
	for _, key := range q["open"] {
		sel = sel.Expand(key)
	}
	return sel, true
}

// handlePage renders the report page for the selection in the query.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	sel, ok := selectionFromQuery(r.URL.Query())
	status := http.StatusOK
	if !ok {
		status = http.StatusNotFound
		s.log.Warn("unknown section requested", "section", r.URL.Query().Get("section"))
	}

	start := time.Now()
	var buf bytes.Buffer
	if err := s.page.Render(&buf, sel); err != nil {
		s.log.Error("render failed", "section", sel.Active.Slug(), "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	s.record("page", time.Since(start))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func (s *Server) record(route string, d time.Duration) {
	if s.stats != nil {
		s.stats.Record(route, d)
	}
}
