package statements

import (
	"fmt"
	"os"

	"github.com/hjson/hjson-go/v4"
)

// Fixture is a statement set loaded from a local file instead of a network
// provider. HJSON is accepted so hand-written fixtures can skip quoting and
// carry comments; plain JSON parses too.
type Fixture struct {
	Ticker string
	Set    RawStatementSet
}

// LoadFixture reads a raw statement set from an HJSON (or JSON) file. The
// expected shape mirrors the provider payload:
//
//	{ ticker: AAPL,
//	  income:   { "Total Revenue": { "2023-12-31": 394328000000, ... }, ... },
//	  balance:  { ... }, cashflow: { ... },
//	  info:     { currency: USD, price: 189.84, sharesOutstanding: ... } }
func LoadFixture(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture: %w", err)
	}

	var doc map[string]any
	if err := hjson.Unmarshal(data, &doc); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture %s: %w", path, err)
	}

	fx := Fixture{Set: RawStatementSet{Info: NewInfo()}}
	if t, ok := doc["ticker"].(string); ok {
		fx.Ticker = t
	}
	fx.Set.Income = fixtureStatement(doc["income"])
	fx.Set.Balance = fixtureStatement(doc["balance"])
	fx.Set.CashFlow = fixtureStatement(doc["cashflow"])
	fx.Set.Info = fixtureInfo(doc["info"])
	return fx, nil
}

func fixtureStatement(v any) RawStatement {
	st := make(RawStatement)
	rows, ok := v.(map[string]any)
	if !ok {
		return st
	}
	for label, periods := range rows {
		pm, ok := periods.(map[string]any)
		if !ok {
			continue
		}
		row := make(map[string]any, len(pm))
		for period, value := range pm {
			row[period] = value
		}
		st[label] = row
	}
	return st
}

func fixtureInfo(v any) Info {
	info := NewInfo()
	m, ok := v.(map[string]any)
	if !ok {
		return info
	}
	if s, ok := m["currency"].(string); ok {
		info.Currency = s
	}
	if s, ok := m["companyName"].(string); ok {
		info.CompanyName = s
	}
	if s, ok := m["sector"].(string); ok {
		info.Sector = s
	}
	if s, ok := m["industry"].(string); ok {
		info.Industry = s
	}
	if raw, ok := m["price"]; ok {
		info.Price = Coerce(raw)
	}
	if raw, ok := m["sharesOutstanding"]; ok {
		info.SharesOutstanding = Coerce(raw)
	}
	if raw, ok := m["beta"]; ok {
		info.Beta = Coerce(raw)
	}
	if raw, ok := m["dividendRate"]; ok {
		info.DividendRate = Coerce(raw)
	}
	if raw, ok := m["bookValue"]; ok {
		info.BookValue = Coerce(raw)
	}
	return info
}
