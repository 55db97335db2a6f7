package search

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coresearch "github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/search"
)

func TestHandleSearchRequiresQuery(t *testing.T) {
	h := NewHandler(zerolog.Nop())

	req := httptest.NewRequest("GET", "/api/search", nil)
	rec := httptest.NewRecorder()
	h.HandleSearch(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSearchBySymbol(t *testing.T) {
	h := NewHandler(zerolog.Nop())

	req := httptest.NewRequest("GET", "/api/search?query=AAPL", nil)
	rec := httptest.NewRecorder()
	h.HandleSearch(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var results []coresearch.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.NotEmpty(t, results)
	assert.Equal(t, "AAPL", results[0].Symbol)
}

func TestHandleSearchByName(t *testing.T) {
	h := NewHandler(zerolog.Nop())

	req := httptest.NewRequest("GET", "/api/search?query=micro", nil)
	rec := httptest.NewRecorder()
	h.HandleSearch(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var results []coresearch.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	symbols := make([]string, 0, len(results))
	for _, r := range results {
		symbols = append(symbols, r.Symbol)
	}
	assert.Contains(t, symbols, "MSFT")
}

func TestHandleSearchNoMatchIsEmptyArray(t *testing.T) {
	h := NewHandler(zerolog.Nop())

	req := httptest.NewRequest("GET", "/api/search?query=zzzzzzzz", nil)
	rec := httptest.NewRecorder()
	h.HandleSearch(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
