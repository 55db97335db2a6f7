package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/cache"
	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/calc"
	coremetrics "github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/metrics"
	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/statements"
)

type stubProvider struct {
	set statements.RawStatementSet
	err error
}

func (s stubProvider) FetchStatements(context.Context, string) (statements.RawStatementSet, error) {
	return s.set, s.err
}

func (s stubProvider) MonthlyCloses(context.Context, string, int) ([]calc.PricePoint, error) {
	return nil, nil
}

func statementSet() statements.RawStatementSet {
	info := statements.NewInfo()
	info.Currency = "USD"
	info.Price = 40
	info.SharesOutstanding = 50

	periods := func(cur, pri float64) map[string]any {
		return map[string]any{"2024-09-30": cur, "2023-09-30": pri}
	}

	return statements.RawStatementSet{
		Income: statements.RawStatement{
			"Total Revenue": periods(1000, 800),
			"Net Income":    periods(100, 64),
		},
		Balance: statements.RawStatement{
			"Total Assets":              periods(1500, 1500),
			"Total Liabilities":         periods(500, 500),
			"Total Stockholder Equity":  periods(1000, 1000),
			"Total Current Assets":      periods(500, 450),
			"Total Current Liabilities": periods(250, 250),
		},
		CashFlow: statements.RawStatement{
			"Total Cash From Operating Activities": periods(150, 120),
		},
		Info: info,
	}
}

func newTestHandler(p stubProvider) *Handler {
	svc := coremetrics.NewService(p, p, zerolog.Nop())
	computer := cache.NewComputer(svc, cache.New(8))
	return NewHandler(computer, svc, zerolog.Nop())
}

func newRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/metrics/{ticker}", h.HandleMetrics)
	r.Get("/metrics/{ticker}/dump", h.HandleDump)
	r.Get("/api/metrics/simple", h.HandleSimple)
	return r
}

func TestHandleMetrics(t *testing.T) {
	router := newRouter(newTestHandler(stubProvider{set: statementSet()}))

	req := httptest.NewRequest("GET", "/metrics/aapl", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var doc coremetrics.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "AAPL", doc.Ticker)
	assert.Empty(t, doc.Error)
	require.NotNil(t, doc.Ratios.Current)
	assert.Equal(t, 2.0, *doc.Ratios.Current)
}

func TestHandleMetricsProviderFailure(t *testing.T) {
	router := newRouter(newTestHandler(stubProvider{err: errors.New("upstream timeout")}))

	req := httptest.NewRequest("GET", "/metrics/AAPL", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// Failures surface in the document, not the status code.
	require.Equal(t, http.StatusOK, rec.Code)

	var doc coremetrics.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "upstream timeout", doc.Error)
	assert.Equal(t, "Unknown", doc.Currency)
}

func TestHandleMetricsRejectsMalformedTicker(t *testing.T) {
	router := newRouter(newTestHandler(stubProvider{set: statementSet()}))

	for _, ticker := range []string{"AAPL%3Bx", "A!B", "THISTICKERISTOOLONG"} {
		req := httptest.NewRequest("GET", "/metrics/"+ticker, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "ticker %q", ticker)
	}
}

func TestValidTicker(t *testing.T) {
	for _, ok := range []string{"AAPL", "BRK-B", "BF.B", "^GSPC", "005930"} {
		assert.True(t, validTicker(ok), ok)
	}
	for _, bad := range []string{"", "AAPL;DROP", "aapl bad", "VERYLONGTICKER"} {
		assert.False(t, validTicker(bad), bad)
	}
}

func TestHandleDumpIncludesDiagnostics(t *testing.T) {
	router := newRouter(newTestHandler(stubProvider{set: statementSet()}))

	req := httptest.NewRequest("GET", "/metrics/AAPL/dump", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp DumpResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "AAPL", resp.Document.Ticker)
	require.NotNil(t, resp.Diagnostics)
	assert.Equal(t, "2024-09-30", resp.Diagnostics.Periods.Current)
}

func TestHandleSimpleRequiresTicker(t *testing.T) {
	router := newRouter(newTestHandler(stubProvider{set: statementSet()}))

	req := httptest.NewRequest("GET", "/api/metrics/simple", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSimpleRejectsBadPrecision(t *testing.T) {
	router := newRouter(newTestHandler(stubProvider{set: statementSet()}))

	for _, p := range []string{"-1", "11", "abc"} {
		req := httptest.NewRequest("GET", "/api/metrics/simple?ticker=AAPL&precision="+p, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "precision=%s", p)
	}
}

func TestHandleSimple(t *testing.T) {
	router := newRouter(newTestHandler(stubProvider{set: statementSet()}))

	req := httptest.NewRequest("GET", "/api/metrics/simple?ticker=AAPL", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SimpleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "AAPL", resp.Ticker)
	assert.Equal(t, "complete", resp.DataQuality)
	assert.Equal(t, "Annual", resp.Audit.PeriodUsed)
	assert.Equal(t, []string{"yahoo-finance"}, resp.Audit.SourcesUsed)

	require.NotNil(t, resp.Metrics.Ratios["current"])
	assert.Equal(t, 2.0, *resp.Metrics.Ratios["current"])
	require.NotNil(t, resp.Metrics.Ratios["pe"])
	assert.Equal(t, 20.0, *resp.Metrics.Ratios["pe"])
}

func TestHandleSimplePrecision(t *testing.T) {
	router := newRouter(newTestHandler(stubProvider{set: statementSet()}))

	req := httptest.NewRequest("GET", "/api/metrics/simple?ticker=AAPL&precision=1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SimpleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Metrics.Ratios["roa"])
	assert.Equal(t, 0.1, *resp.Metrics.Ratios["roa"])
}

func TestHandleSimpleErrorQuality(t *testing.T) {
	router := newRouter(newTestHandler(stubProvider{err: errors.New("no data found for ticker ZZZZ")}))

	req := httptest.NewRequest("GET", "/api/metrics/simple?ticker=ZZZZ", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SimpleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.DataQuality)
	assert.Nil(t, resp.Metrics.BeneishMScore)
}

func TestRoundTo(t *testing.T) {
	v := 1.23456
	r := roundTo(&v, 2)
	require.NotNil(t, r)
	assert.Equal(t, 1.23, *r)

	assert.Nil(t, roundTo(nil, 2))
}
