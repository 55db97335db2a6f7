// Package validate checks statement-level data integrity before metric
// computation. These functions can be called from the metrics pipeline,
// API handlers, or tests.
package validate

import (
	"math"

	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/calc"
	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/statements"
)

// DefaultTolerance is the maximum relative deviation accepted by the
// accounting equation check, as a fraction of total assets.
const DefaultTolerance = 0.01

// PeriodCheck is the accounting equation result for one reporting period.
// Delta is the relative deviation |A - (L + E)| / A. When assets are zero
// or missing the deviation is unbounded and Delta is null.
type PeriodCheck struct {
	OK              bool     `json:"ok"`
	Delta           *float64 `json:"delta"`
	Assets          *float64 `json:"assets,omitempty"`
	Liabilities     *float64 `json:"liabilities,omitempty"`
	Equity          *float64 `json:"equity,omitempty"`
	CalculatedTotal *float64 `json:"calculated_total,omitempty"`
	Error           string   `json:"error,omitempty"`
}

// CheckAccountingEquation verifies Assets = Liabilities + Equity for every
// period present on the balance sheet. Missing components default to zero
// in the calculated total, the same way statement providers report them.
func CheckAccountingEquation(balance statements.Table, tol float64) map[string]PeriodCheck {
	results := make(map[string]PeriodCheck)

	for period := range balance.Periods() {
		assets := balance.Value(statements.TotalAssets, period)
		liabilities := balance.Value(statements.TotalLiabilities, period)
		equity := balance.Value(statements.TotalStockholderEquity, period)

		if !calc.Known(assets) || assets <= 0 {
			results[period] = PeriodCheck{
				OK:    false,
				Error: "Total Assets is zero or missing",
			}
			continue
		}

		// An unknown component leaves delta unknown, which fails the check
		// and serializes as a null delta.
		total := liabilities + equity
		delta := math.Abs(assets-total) / assets
		results[period] = PeriodCheck{
			OK:              delta <= tol,
			Delta:           calc.RoundPtr(delta),
			Assets:          calc.RoundPtr(assets),
			Liabilities:     calc.RoundPtr(liabilities),
			Equity:          calc.RoundPtr(equity),
			CalculatedTotal: calc.RoundPtr(total),
		}
	}

	return results
}
