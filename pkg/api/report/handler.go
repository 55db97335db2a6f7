// Package report serves rendered views of the computed document.
package report

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/cache"
	corereport "github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/report"
)

type Handler struct {
	computer *cache.Computer
	log      zerolog.Logger
}

func NewHandler(computer *cache.Computer, log zerolog.Logger) *Handler {
	return &Handler{
		computer: computer,
		log:      log.With().Str("handler", "report").Logger(),
	}
}

// HandleReport renders the document as text, Markdown or HTML.
// GET /api/report/{ticker}?format=html
func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	ticker := strings.ToUpper(chi.URLParam(r, "ticker"))
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "text"
	}

	doc := h.computer.Metrics(r.Context(), ticker, false)

	switch format {
	case "text":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(corereport.RenderText(doc)))
	case "markdown":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Write([]byte(corereport.RenderMarkdown(doc)))
	case "html":
		html, err := corereport.RenderHTML(doc)
		if err != nil {
			h.log.Error().Err(err).Str("ticker", ticker).Msg("Failed to render report")
			http.Error(w, "Failed to render report", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(html))
	default:
		http.Error(w, "format must be one of text, markdown, html", http.StatusBadRequest)
	}
}
