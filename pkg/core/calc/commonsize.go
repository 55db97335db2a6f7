package calc

import (
	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/statements"
)

// CommonSize is the proportional view of one fiscal period: income lines as
// a share of revenue, balance lines as a share of total assets. Lines whose
// base is unknown come out null.
type CommonSize struct {
	Period  string              `json:"period"`
	Income  map[string]*float64 `json:"income"`
	Balance map[string]*float64 `json:"balance"`
}

// CommonSizeView scales every canonical income and balance line for period.
// Only canonical fields are included; pass-through rows stay out so the view
// is stable across providers.
func CommonSizeView(set statements.CanonicalSet, period string) CommonSize {
	revenue := set.Income.Value(statements.TotalRevenue, period)
	assets := set.Balance.Value(statements.TotalAssets, period)

	incomeFields := []string{
		statements.TotalRevenue,
		statements.CostOfRevenue,
		statements.GrossProfit,
		statements.SellingGeneralAdministrative,
		statements.OperatingIncome,
		statements.InterestExpense,
		statements.PretaxIncome,
		statements.IncomeTaxExpense,
		statements.NetIncome,
	}
	balanceFields := []string{
		statements.TotalCurrentAssets,
		statements.Inventory,
		statements.NetReceivables,
		statements.NetPPE,
		statements.TotalCurrentLiabilities,
		statements.TotalLiabilities,
		statements.RetainedEarnings,
		statements.TotalStockholderEquity,
	}

	cs := CommonSize{
		Period:  period,
		Income:  make(map[string]*float64, len(incomeFields)),
		Balance: make(map[string]*float64, len(balanceFields)),
	}
	for _, f := range incomeFields {
		if set.Income.Has(f) {
			cs.Income[f] = RoundPtr(SafeDiv(set.Income.Value(f, period), revenue))
		}
	}
	for _, f := range balanceFields {
		if set.Balance.Has(f) {
			cs.Balance[f] = RoundPtr(SafeDiv(set.Balance.Value(f, period), assets))
		}
	}
	return cs
}

// StatementValues flattens every known cell of the three canonical tables,
// the input population for the Benford screen.
func StatementValues(set statements.CanonicalSet) []float64 {
	var values []float64
	for _, table := range []statements.Table{set.Income, set.Balance, set.CashFlow} {
		for _, row := range table {
			for _, v := range row {
				if Known(v) {
					values = append(values, v)
				}
			}
		}
	}
	return values
}
