package validate

import (
	"math"

	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/calc"
	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/statements"
)

// LinkageTolerance is the relative deviation accepted by cross-statement
// linkage checks, as a fraction of the expected movement.
const LinkageTolerance = 0.05

// RetainedEarningsLink checks the income-to-balance articulation
// ΔRE ≈ Net Income - Dividends between the two selected periods.
// Buybacks, other comprehensive income and restatements all move retained
// earnings outside this identity, so a failed link is a note, not an error.
type RetainedEarningsLink struct {
	NetIncome        *float64 `json:"net_income"`
	DividendsPaid    *float64 `json:"dividends_paid"`
	ExpectedREChange *float64 `json:"expected_re_change"`
	ActualREChange   *float64 `json:"actual_re_change"`
	Difference       *float64 `json:"difference"`
	Linked           bool     `json:"linked"`
	Reason           string   `json:"reason,omitempty"`
}

// CheckRetainedEarnings computes the retained earnings articulation for a
// period pair. Cash dividends appear on the cash flow statement as an
// outflow, so the expected change is NI + CashDividendsPaid.
func CheckRetainedEarnings(set statements.CanonicalSet, pp statements.PeriodPair) RetainedEarningsLink {
	netIncome := set.Income.Value(statements.NetIncome, pp.Current)
	dividends := set.CashFlow.Value(statements.CashDividendsPaid, pp.Current)
	reCurrent := set.Balance.Value(statements.RetainedEarnings, pp.Current)
	rePrior := set.Balance.Value(statements.RetainedEarnings, pp.Prior)

	link := RetainedEarningsLink{
		NetIncome:     calc.RoundPtr(netIncome),
		DividendsPaid: calc.RoundPtr(dividends),
	}

	if !calc.Known(netIncome) || !calc.Known(reCurrent) || !calc.Known(rePrior) {
		link.Reason = "retained earnings or net income unavailable"
		return link
	}
	if !calc.Known(dividends) {
		dividends = 0
	}

	expected := netIncome + dividends
	actual := reCurrent - rePrior
	diff := math.Abs(actual - expected)

	link.ExpectedREChange = calc.RoundPtr(expected)
	link.ActualREChange = calc.RoundPtr(actual)
	link.Difference = calc.RoundPtr(diff)

	scale := math.Abs(expected)
	if scale < 1 {
		scale = 1
	}
	link.Linked = diff/scale <= LinkageTolerance
	if !link.Linked {
		link.Reason = "delta exceeds tolerance, likely buybacks or other comprehensive income"
	}
	return link
}
