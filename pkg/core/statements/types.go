// Package statements models raw and canonical annual financial statement
// tables and the normalization steps between them.
package statements

import (
	"encoding/json"
	"math"
)

// RawStatement is one statement as delivered by a provider: free-form
// line-item label -> fiscal period id -> value. Values are untyped because
// providers mix numbers, formatted strings and nulls.
type RawStatement map[string]map[string]any

// Info is the market-data snapshot attached to a statement set. Numeric
// fields use NaN for "not supplied" so a legitimate zero is distinguishable
// from absence.
type Info struct {
	Currency          string  `json:"currency"`
	CompanyName       string  `json:"company_name"`
	Sector            string  `json:"sector"`
	Industry          string  `json:"industry"`
	Price             float64 `json:"price"`
	SharesOutstanding float64 `json:"shares_outstanding"`
	Beta              float64 `json:"beta"`
	DividendRate      float64 `json:"dividend_rate"`
	BookValue         float64 `json:"book_value"`
}

// MarshalJSON emits null for NaN fields; encoding/json rejects NaN outright.
func (i Info) MarshalJSON() ([]byte, error) {
	type wire struct {
		Currency          string   `json:"currency"`
		CompanyName       string   `json:"company_name"`
		Sector            string   `json:"sector"`
		Industry          string   `json:"industry"`
		Price             *float64 `json:"price"`
		SharesOutstanding *float64 `json:"shares_outstanding"`
		Beta              *float64 `json:"beta"`
		DividendRate      *float64 `json:"dividend_rate"`
		BookValue         *float64 `json:"book_value"`
	}
	return json.Marshal(wire{
		Currency:          i.Currency,
		CompanyName:       i.CompanyName,
		Sector:            i.Sector,
		Industry:          i.Industry,
		Price:             nullable(i.Price),
		SharesOutstanding: nullable(i.SharesOutstanding),
		Beta:              nullable(i.Beta),
		DividendRate:      nullable(i.DividendRate),
		BookValue:         nullable(i.BookValue),
	})
}

func nullable(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// NewInfo returns an Info with every numeric field marked missing.
func NewInfo() Info {
	nan := math.NaN()
	return Info{
		Price:             nan,
		SharesOutstanding: nan,
		Beta:              nan,
		DividendRate:      nan,
		BookValue:         nan,
	}
}

// RawStatementSet is the complete provider payload for one ticker.
type RawStatementSet struct {
	Income   RawStatement `json:"income"`
	Balance  RawStatement `json:"balance"`
	CashFlow RawStatement `json:"cashflow"`
	Info     Info         `json:"info"`
}

// Table is a canonicalized statement: canonical field name -> period -> value.
// A missing field or period reads as NaN, the in-process unknown marker.
// Invariant: at most one row per canonical field.
type Table map[string]map[string]float64

// MarshalJSON emits null for NaN cells, mirroring Info.
func (t Table) MarshalJSON() ([]byte, error) {
	out := make(map[string]map[string]*float64, len(t))
	for field, row := range t {
		wr := make(map[string]*float64, len(row))
		for period, v := range row {
			wr[period] = nullable(v)
		}
		out[field] = wr
	}
	return json.Marshal(out)
}

// Value returns the value for field at period, or NaN when either is absent
// (the caller never has to distinguish the two cases).
func (t Table) Value(field, period string) float64 {
	row, ok := t[field]
	if !ok {
		return math.NaN()
	}
	v, ok := row[period]
	if !ok {
		return math.NaN()
	}
	return v
}

// Has reports whether the canonical field exists at all in the table.
func (t Table) Has(field string) bool {
	_, ok := t[field]
	return ok
}

// Periods returns the set of period ids appearing in any row.
func (t Table) Periods() map[string]struct{} {
	periods := make(map[string]struct{})
	for _, row := range t {
		for p := range row {
			periods[p] = struct{}{}
		}
	}
	return periods
}

// CanonicalSet holds the three normalized statement tables plus the original
// info snapshot.
type CanonicalSet struct {
	Income   Table
	Balance  Table
	CashFlow Table
	Info     Info
}

// PeriodPair is the two fiscal periods every formula operates on,
// newest first.
type PeriodPair struct {
	Current string
	Prior   string
}
