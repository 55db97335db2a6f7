// Package company serves the company summary endpoint: identity and
// real-time fields from the provider snapshot combined with headline
// metrics from the computed document.
package company

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/cache"
	coremetrics "github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/metrics"
)

type Handler struct {
	computer *cache.Computer
	svc      *coremetrics.Service
	log      zerolog.Logger
}

func NewHandler(computer *cache.Computer, svc *coremetrics.Service, log zerolog.Logger) *Handler {
	return &Handler{
		computer: computer,
		svc:      svc,
		log:      log.With().Str("handler", "company").Logger(),
	}
}

type RealTime struct {
	Price     *float64 `json:"price"`
	Currency  string   `json:"currency"`
	Timestamp string   `json:"timestamp"`
}

type Summary struct {
	Ticker           string   `json:"ticker"`
	TickerNormalized string   `json:"ticker_normalized"`
	Exists           bool     `json:"exists"`
	InstrumentType   string   `json:"instrument_type"`
	CompanyName      string   `json:"company_name"`
	Sector           string   `json:"sector"`
	Industry         string   `json:"industry"`
	RealTime         RealTime `json:"real_time"`
	Beta             *float64 `json:"beta"`
	Alpha            *float64 `json:"alpha"`
	DataQuality      string   `json:"data_quality"`
	Missing          []string `json:"missing"`
	Audit            Audit    `json:"audit"`
}

type Audit struct {
	RequestID   string   `json:"request_id"`
	GeneratedAt string   `json:"generated_at"`
	SourcesUsed []string `json:"sources_used"`
}

// HandleSummary builds the summary for one ticker.
// GET /api/company/summary?ticker=AAPL
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ticker := strings.ToUpper(r.URL.Query().Get("ticker"))
	if ticker == "" {
		http.Error(w, "ticker query parameter is required", http.StatusBadRequest)
		return
	}

	doc := h.computer.Metrics(r.Context(), ticker, false)

	summary := Summary{
		Ticker:           doc.Ticker,
		TickerNormalized: doc.Ticker,
		Exists:           doc.Error == "",
		InstrumentType:   "EQUITY",
		CompanyName:      ticker,
		Sector:           "N/A",
		Industry:         "N/A",
		RealTime: RealTime{
			Currency:  doc.Currency,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
		Alpha:       doc.Alpha,
		DataQuality: "complete",
		Missing:     []string{},
		Audit: Audit{
			RequestID:   uuid.NewString(),
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			SourcesUsed: []string{"yahoo-finance"},
		},
	}
	if doc.Error != "" {
		summary.DataQuality = "error"
	}

	// Identity fields come from the provider snapshot, not the document.
	if diag, err := h.svc.Inspect(r.Context(), ticker); err == nil {
		if diag.Info.CompanyName != "" {
			summary.CompanyName = diag.Info.CompanyName
		}
		if diag.Info.Sector != "" {
			summary.Sector = diag.Info.Sector
		}
		if diag.Info.Industry != "" {
			summary.Industry = diag.Info.Industry
		}
		summary.RealTime.Price = finite(diag.Info.Price)
		summary.Beta = finite(diag.Info.Beta)
	}

	h.writeJSON(w, summary)
}

func finite(v float64) *float64 {
	if v != v {
		return nil
	}
	return &v
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode response")
	}
}
