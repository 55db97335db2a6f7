package calc

import (
	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/statements"
)

// Inputs is the flattened extraction of every line item the formula library
// touches, for the current (T) and prior (T1) fiscal periods. Absent fields
// are NaN; formulas never read the statement tables directly.
type Inputs struct {
	// Income statement
	Revenue           float64
	RevenueT1         float64
	GrossProfit       float64
	GrossProfitT1     float64
	OperatingIncome   float64
	OperatingIncomeT1 float64
	NetIncome         float64
	NetIncomeT1       float64
	PretaxIncome      float64
	SGA               float64
	SGAT1             float64

	// Balance sheet
	Assets               float64
	AssetsT1             float64
	Liabilities          float64
	LiabilitiesT1        float64
	Equity               float64
	EquityT1             float64
	CurrentAssets        float64
	CurrentAssetsT1      float64
	CurrentLiabilities   float64
	CurrentLiabilitiesT1 float64
	Inventory            float64
	NetPPE               float64
	NetPPET1             float64
	RetainedEarnings     float64
	Receivables          float64
	ReceivablesT1        float64

	// Cash flow
	CFO            float64
	CFOT1          float64
	Depreciation   float64
	DepreciationT1 float64
	DividendsPaid  float64

	// Market snapshot
	Shares       float64
	Price        float64
	Beta         float64
	DividendRate float64
	BookValue    float64
}

// ExtractInputs pulls every required field out of the canonical tables for
// the selected period pair. Missing fields surface as NaN and flow through
// the safe primitives downstream.
func ExtractInputs(set statements.CanonicalSet, pp statements.PeriodPair) Inputs {
	inc, bal, cf := set.Income, set.Balance, set.CashFlow
	t, t1 := pp.Current, pp.Prior

	return Inputs{
		Revenue:           inc.Value(statements.TotalRevenue, t),
		RevenueT1:         inc.Value(statements.TotalRevenue, t1),
		GrossProfit:       inc.Value(statements.GrossProfit, t),
		GrossProfitT1:     inc.Value(statements.GrossProfit, t1),
		OperatingIncome:   inc.Value(statements.OperatingIncome, t),
		OperatingIncomeT1: inc.Value(statements.OperatingIncome, t1),
		NetIncome:         inc.Value(statements.NetIncome, t),
		NetIncomeT1:       inc.Value(statements.NetIncome, t1),
		PretaxIncome:      inc.Value(statements.PretaxIncome, t),
		SGA:               inc.Value(statements.SellingGeneralAdministrative, t),
		SGAT1:             inc.Value(statements.SellingGeneralAdministrative, t1),

		Assets:               bal.Value(statements.TotalAssets, t),
		AssetsT1:             bal.Value(statements.TotalAssets, t1),
		Liabilities:          bal.Value(statements.TotalLiabilities, t),
		LiabilitiesT1:        bal.Value(statements.TotalLiabilities, t1),
		Equity:               bal.Value(statements.TotalStockholderEquity, t),
		EquityT1:             bal.Value(statements.TotalStockholderEquity, t1),
		CurrentAssets:        bal.Value(statements.TotalCurrentAssets, t),
		CurrentAssetsT1:      bal.Value(statements.TotalCurrentAssets, t1),
		CurrentLiabilities:   bal.Value(statements.TotalCurrentLiabilities, t),
		CurrentLiabilitiesT1: bal.Value(statements.TotalCurrentLiabilities, t1),
		Inventory:            bal.Value(statements.Inventory, t),
		NetPPE:               bal.Value(statements.NetPPE, t),
		NetPPET1:             bal.Value(statements.NetPPE, t1),
		RetainedEarnings:     bal.Value(statements.RetainedEarnings, t),
		Receivables:          bal.Value(statements.NetReceivables, t),
		ReceivablesT1:        bal.Value(statements.NetReceivables, t1),

		CFO:            cf.Value(statements.TotalCashFromOperatingActivities, t),
		CFOT1:          cf.Value(statements.TotalCashFromOperatingActivities, t1),
		Depreciation:   cf.Value(statements.Depreciation, t),
		DepreciationT1: cf.Value(statements.Depreciation, t1),
		DividendsPaid:  cf.Value(statements.CashDividendsPaid, t),

		Shares:       set.Info.SharesOutstanding,
		Price:        set.Info.Price,
		Beta:         set.Info.Beta,
		DividendRate: set.Info.DividendRate,
		BookValue:    set.Info.BookValue,
	}
}
