package validate

import "github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/statements"

// neededFields lists the canonical fields each statement section is
// expected to carry, in reporting order.
var neededFields = []struct {
	section string
	fields  []string
}{
	{"income", []string{
		statements.TotalRevenue,
		statements.GrossProfit,
		statements.OperatingIncome,
		statements.NetIncome,
		statements.SellingGeneralAdministrative,
		statements.IncomeTaxExpense,
		statements.InterestExpense,
	}},
	{"balance", []string{
		statements.TotalAssets,
		statements.TotalLiabilities,
		statements.TotalStockholderEquity,
		statements.TotalCurrentAssets,
		statements.TotalCurrentLiabilities,
		statements.Inventory,
		statements.NetPPE,
		statements.RetainedEarnings,
		statements.NetReceivables,
	}},
	{"cashflow", []string{
		statements.TotalCashFromOperatingActivities,
		statements.Depreciation,
		statements.CashDividendsPaid,
	}},
}

// CollectMissing reports every expected field absent from its statement,
// as "section:field" strings in a fixed section and field order.
func CollectMissing(set statements.CanonicalSet) []string {
	tables := map[string]statements.Table{
		"income":   set.Income,
		"balance":  set.Balance,
		"cashflow": set.CashFlow,
	}

	var missing []string
	for _, need := range neededFields {
		table := tables[need.section]
		for _, field := range need.fields {
			if !table.Has(field) {
				missing = append(missing, need.section+":"+field)
			}
		}
	}
	return missing
}
