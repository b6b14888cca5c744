package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dgallion1/mhrisk/internal/content"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// handleExport streams the report as a Word document. An optional
// section query limits it to one section.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var ids []content.SectionID
	filename := "mental-health-risk-analysis.docx"
	if slug := r.URL.Query().Get("section"); slug != "" {
		id, err := content.ParseSlug(slug)
		if err != nil {
			jsonError(w, err.Error(), http.StatusNotFound)
			return
		}
		ids = append(ids, id)
		filename = fmt.Sprintf("mental-health-risk-analysis-%s.docx", slug)
	}

	start := time.Now()
	var buf bytes.Buffer
	if err := s.page.Export(&buf, ids...); err != nil {
		s.log.Error("export failed", "error", err)
		jsonError(w, "failed to export document", http.StatusInternalServerError)
		return
	}
	s.record("export", time.Since(start))

	w.Header().Set("Content-Type", docxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Write(buf.Bytes())
}
