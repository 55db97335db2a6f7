// Package historical reserves the bulk price-history download endpoint.
// The backend does not keep historical data, so the endpoint reports the
// feature as unavailable rather than 404ing clients that probe for it.
package historical

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

type Handler struct {
	log zerolog.Logger
}

func NewHandler(log zerolog.Logger) *Handler {
	return &Handler{log: log.With().Str("handler", "historical").Logger()}
}

type DownloadResponse struct {
	OK             bool   `json:"ok"`
	Path           string `json:"path"`
	Filename       string `json:"filename"`
	Rows           int    `json:"rows"`
	StartAvailable string `json:"start_available"`
	EndAvailable   string `json:"end_available"`
	DownloadURL    string `json:"download_url"`
	Error          string `json:"error"`
}

// HandleDownload answers the download probe.
// GET /api/historical/download?ticker=AAPL&start=...&end=...
func (h *Handler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	resp := DownloadResponse{
		StartAvailable: r.URL.Query().Get("start"),
		EndAvailable:   r.URL.Query().Get("end"),
		Error:          "Historical download is not available; the service keeps no durable price data",
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode response")
	}
}
