// Package metrics exposes the computation pipeline over HTTP: the full
// document, a raw diagnostic dump, and a simplified projection with
// caller-configurable precision.
package metrics

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/cache"
	coremetrics "github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/metrics"
)

// Handler serves the metric endpoints. The day-keyed computer handles the
// main endpoint; dump and simple recompute fresh, matching their
// diagnostic purpose.
type Handler struct {
	computer *cache.Computer
	svc      *coremetrics.Service
	log      zerolog.Logger
}

func NewHandler(computer *cache.Computer, svc *coremetrics.Service, log zerolog.Logger) *Handler {
	return &Handler{
		computer: computer,
		svc:      svc,
		log:      log.With().Str("handler", "metrics").Logger(),
	}
}

// validTicker accepts the symbol alphabet Yahoo serves: letters, digits,
// and the . - ^ separators used for share classes, exchanges and indices.
func validTicker(t string) bool {
	if t == "" || len(t) > 12 {
		return false
	}
	for _, r := range t {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '.' || r == '-' || r == '^':
		default:
			return false
		}
	}
	return true
}

// HandleMetrics returns the full document for a ticker.
// GET /metrics/{ticker}?force_refresh=true
func (h *Handler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	ticker := strings.ToUpper(chi.URLParam(r, "ticker"))
	if !validTicker(ticker) {
		http.Error(w, "invalid ticker", http.StatusBadRequest)
		return
	}
	force, _ := strconv.ParseBool(r.URL.Query().Get("force_refresh"))

	doc := h.computer.Metrics(r.Context(), ticker, force)
	h.writeJSON(w, doc)
}

// DumpResponse pairs the computed document with the normalization
// diagnostics behind it.
type DumpResponse struct {
	Document    coremetrics.Document     `json:"document"`
	Diagnostics *coremetrics.Diagnostics `json:"diagnostics,omitempty"`
}

// HandleDump recomputes without the cache and includes the canonical
// tables, dropped rows and linkage check.
// GET /metrics/{ticker}/dump
func (h *Handler) HandleDump(w http.ResponseWriter, r *http.Request) {
	ticker := strings.ToUpper(chi.URLParam(r, "ticker"))
	if !validTicker(ticker) {
		http.Error(w, "invalid ticker", http.StatusBadRequest)
		return
	}

	resp := DumpResponse{Document: h.svc.Compute(r.Context(), ticker)}
	if diag, err := h.svc.Inspect(r.Context(), ticker); err == nil {
		resp.Diagnostics = &diag
	}
	h.writeJSON(w, resp)
}

// SimpleMetrics is the flattened projection used by dashboard clients.
type SimpleMetrics struct {
	BeneishMScore     *float64            `json:"beneish_m_score"`
	BeneishReason     string              `json:"beneish_reason,omitempty"`
	BeneishComponents map[string]*float64 `json:"beneish_components"`
	Altman            struct {
		Z      *float64 `json:"z"`
		ZPrime *float64 `json:"z_prime"`
	} `json:"altman"`
	Ratios map[string]*float64 `json:"ratios"`
	Scores struct {
		Score   *float64       `json:"score"`
		Display string         `json:"fscore_display"`
		Signals map[string]int `json:"signals"`
	} `json:"piotroski"`
	DuPont any `json:"dupont"`
}

// SimpleResponse wraps the projection with data quality and audit fields.
type SimpleResponse struct {
	Ticker      string        `json:"ticker"`
	Metrics     SimpleMetrics `json:"metrics"`
	DataQuality string        `json:"data_quality"`
	Missing     []string      `json:"missing"`
	Audit       Audit         `json:"audit"`
}

type Audit struct {
	PeriodUsed         string   `json:"period_used"`
	StatementAlignment string   `json:"statement_alignment"`
	GeneratedAt        string   `json:"generated_at"`
	SourcesUsed        []string `json:"sources_used"`
}

// HandleSimple returns the simplified projection.
// GET /api/metrics/simple?ticker=AAPL&precision=4
func (h *Handler) HandleSimple(w http.ResponseWriter, r *http.Request) {
	ticker := strings.ToUpper(r.URL.Query().Get("ticker"))
	if ticker == "" {
		http.Error(w, "ticker query parameter is required", http.StatusBadRequest)
		return
	}
	precision := 4
	if p := r.URL.Query().Get("precision"); p != "" {
		parsed, err := strconv.Atoi(p)
		if err != nil || parsed < 0 || parsed > 10 {
			http.Error(w, "precision must be an integer between 0 and 10", http.StatusBadRequest)
			return
		}
		precision = parsed
	}

	doc := h.svc.Compute(r.Context(), ticker)

	round := func(v *float64) *float64 { return roundTo(v, precision) }

	m := SimpleMetrics{
		BeneishMScore: round(doc.Beneish.M),
		BeneishReason: doc.Beneish.Reason,
		BeneishComponents: map[string]*float64{
			"DSRI": round(doc.Beneish.Components.DSRI),
			"GMI":  round(doc.Beneish.Components.GMI),
			"AQI":  round(doc.Beneish.Components.AQI),
			"SGI":  round(doc.Beneish.Components.SGI),
			"DEPI": round(doc.Beneish.Components.DEPI),
			"SGAI": round(doc.Beneish.Components.SGAI),
			"LVGI": round(doc.Beneish.Components.LVGI),
			"TATA": round(doc.Beneish.Components.TATA),
		},
		Ratios: map[string]*float64{
			"current":                 round(doc.Ratios.Current),
			"quick":                   round(doc.Ratios.Quick),
			"debt_to_equity":          round(doc.Ratios.DebtToEquity),
			"roe":                     round(doc.Ratios.ROE),
			"roe_adjusted":            round(doc.Ratios.ROEAdjusted),
			"roa":                     round(doc.Ratios.ROA),
			"pe":                      round(doc.PriceBased.PE),
			"pb":                      round(doc.PriceBased.PB),
			"ps":                      round(doc.PriceBased.PS),
			"peg":                     round(doc.PriceBased.PEG),
			"dividend_yield":          round(doc.Dividends.Yield),
			"dividend_payout_ratio":   round(doc.Dividends.Payout),
			"dividend_coverage_ratio": round(doc.Dividends.Coverage),
		},
		DuPont: doc.DuPont,
	}
	m.Altman.Z = round(doc.Altman.Z)
	m.Altman.ZPrime = round(doc.Altman.ZPrime)
	m.Scores.Score = doc.Piotroski.Score
	m.Scores.Display = doc.Piotroski.Display
	m.Scores.Signals = doc.Piotroski.Signals

	quality := "complete"
	if doc.Error != "" {
		quality = "error"
	}

	h.writeJSON(w, SimpleResponse{
		Ticker:      doc.Ticker,
		Metrics:     m,
		DataQuality: quality,
		Missing:     doc.Notes,
		Audit: Audit{
			PeriodUsed:         "Annual",
			StatementAlignment: "aligned",
			GeneratedAt:        time.Now().UTC().Format(time.RFC3339),
			SourcesUsed:        []string{"yahoo-finance"},
		},
	})
}

func roundTo(v *float64, precision int) *float64 {
	if v == nil {
		return nil
	}
	scale := math.Pow10(precision)
	r := math.Round(*v*scale) / scale
	return &r
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode response")
	}
}
