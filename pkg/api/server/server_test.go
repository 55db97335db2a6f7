package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/internal/config"
	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/cache"
	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/calc"
	coremetrics "github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/metrics"
	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/statements"
)

type stubProvider struct{}

func (stubProvider) FetchStatements(context.Context, string) (statements.RawStatementSet, error) {
	periods := func(cur, pri float64) map[string]any {
		return map[string]any{"2024-09-30": cur, "2023-09-30": pri}
	}
	info := statements.NewInfo()
	info.Currency = "USD"
	return statements.RawStatementSet{
		Income: statements.RawStatement{
			"Total Revenue": periods(1000, 800),
			"Net Income":    periods(100, 64),
		},
		Balance: statements.RawStatement{
			"Total Assets":             periods(1500, 1500),
			"Total Liabilities":        periods(500, 500),
			"Total Stockholder Equity": periods(1000, 1000),
		},
		CashFlow: statements.RawStatement{
			"Total Cash From Operating Activities": periods(150, 120),
		},
		Info: info,
	}, nil
}

func (stubProvider) MonthlyCloses(context.Context, string, int) ([]calc.PricePoint, error) {
	return nil, nil
}

func newTestServer() *Server {
	cfg := config.Default()
	p := stubProvider{}
	svc := coremetrics.NewService(p, p, zerolog.Nop())
	computer := cache.NewComputer(svc, cache.New(cfg.CacheCapacity))
	return New(Config{
		Log:      zerolog.Nop(),
		Config:   &cfg,
		Service:  svc,
		Computer: computer,
	})
}

func get(t *testing.T, s *Server, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", url, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestServer(), "/health")

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		OK    bool `json:"ok"`
		Cache struct {
			Capacity int `json:"capacity"`
		} `json:"cache"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Equal(t, 256, body.Cache.Capacity)
}

func TestRoutesRegistered(t *testing.T) {
	s := newTestServer()

	for _, url := range []string{
		"/metrics/AAPL",
		"/metrics/AAPL/dump",
		"/api/metrics/simple?ticker=AAPL",
		"/api/company/summary?ticker=AAPL",
		"/api/search?query=apple",
		"/api/report/AAPL",
		"/api/historical/download?ticker=AAPL",
	} {
		rec := get(t, s, url)
		assert.Equal(t, http.StatusOK, rec.Code, "GET %s", url)
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	rec := get(t, newTestServer(), "/api/unknown")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsDocumentServed(t *testing.T) {
	rec := get(t, newTestServer(), "/metrics/AAPL")
	require.Equal(t, http.StatusOK, rec.Code)

	var doc coremetrics.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "AAPL", doc.Ticker)
	assert.Empty(t, doc.Error)
}
