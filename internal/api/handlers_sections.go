package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dgallion1/mhrisk/internal/content"
)

type sectionSummary struct {
	ID     int    `json:"id"`
	Slug   string `json:"slug"`
	Label  string `json:"label"`
	Panels int    `json:"panels"`
}

type blockJSON struct {
	Kind content.BlockKind `json:"kind"`
	Key  string            `json:"key,omitempty"`
	Data content.Block     `json:"data"`
}

func (s *Server) handleListSections(w http.ResponseWriter, r *http.Request) {
	secs := content.Sections()
	out := make([]sectionSummary, 0, len(secs))
	for _, sec := range secs {
		out = append(out, sectionSummary{
			ID:     int(sec.ID),
			Slug:   sec.ID.Slug(),
			Label:  sec.Label(),
			Panels: len(sec.Panels()),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"title":    content.PageTitle,
		"default":  content.Default().Active.Slug(),
		"sections": out,
	})
}

func (s *Server) handleGetSection(w http.ResponseWriter, r *http.Request) {
	id, err := content.ParseSlug(chi.URLParam(r, "slug"))
	if err != nil {
		jsonError(w, err.Error(), http.StatusNotFound)
		return
	}
	sec, _ := content.Lookup(id)

	blocks := make([]blockJSON, 0, len(sec.Blocks))
	for _, b := range sec.Blocks {
		bj := blockJSON{Kind: b.Kind(), Data: b}
		if p, ok := b.(content.Panel); ok {
			bj.Key = p.Key()
		}
		blocks = append(blocks, bj)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":     int(sec.ID),
		"slug":   sec.ID.Slug(),
		"label":  sec.Label(),
		"blocks": blocks,
	})
}
