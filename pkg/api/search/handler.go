// Package search serves ticker directory lookups for UI autocompletion.
package search

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	coresearch "github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/search"
)

type Handler struct {
	log zerolog.Logger
}

func NewHandler(log zerolog.Logger) *Handler {
	return &Handler{log: log.With().Str("handler", "search").Logger()}
}

// HandleSearch matches the query against the static directory.
// GET /api/search?query=apple
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		http.Error(w, "query parameter is required", http.StatusBadRequest)
		return
	}

	results := coresearch.Search(query)
	if results == nil {
		results = []coresearch.Result{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(results); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode response")
	}
}
