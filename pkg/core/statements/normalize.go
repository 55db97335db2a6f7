package statements

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Canonical field vocabulary. Every formula downstream looks fields up under
// exactly these names.
const (
	TotalRevenue                     = "TotalRevenue"
	CostOfRevenue                    = "CostOfRevenue"
	GrossProfit                      = "GrossProfit"
	OperatingIncome                  = "OperatingIncome"
	NetIncome                        = "NetIncome"
	PretaxIncome                     = "PretaxIncome"
	SellingGeneralAdministrative     = "SellingGeneralAdministrative"
	IncomeTaxExpense                 = "IncomeTaxExpense"
	InterestExpense                  = "InterestExpense"
	TotalAssets                      = "TotalAssets"
	TotalCurrentAssets               = "TotalCurrentAssets"
	TotalLiabilities                 = "TotalLiabilities"
	TotalCurrentLiabilities          = "TotalCurrentLiabilities"
	TotalStockholderEquity           = "TotalStockholderEquity"
	Inventory                        = "Inventory"
	NetPPE                           = "NetPPE"
	RetainedEarnings                 = "RetainedEarnings"
	NetReceivables                   = "NetReceivables"
	TotalCashFromOperatingActivities = "TotalCashFromOperatingActivities"
	Depreciation                     = "Depreciation"
	CashDividendsPaid                = "CashDividendsPaid"
)

// fieldSynonyms maps the label variants found in provider payloads onto the
// canonical vocabulary. Labels without an entry pass through unchanged, so a
// downstream lookup may legitimately miss.
var fieldSynonyms = map[string]string{
	// Income statement
	"Total Revenue":                      TotalRevenue,
	"Revenue":                            TotalRevenue,
	"Operating Revenue":                  TotalRevenue,
	"Net Sales":                          TotalRevenue,
	"Sales":                              TotalRevenue,
	"Cost Of Revenue":                    CostOfRevenue,
	"Cost of Goods Sold":                 CostOfRevenue,
	"COGS":                               CostOfRevenue,
	"Gross Profit":                       GrossProfit,
	"Gross Income":                       GrossProfit,
	"Operating Income":                   OperatingIncome,
	"EBIT":                               OperatingIncome,
	"Earnings Before Interest And Taxes": OperatingIncome,
	"Net Income":                         NetIncome,
	"Net Earnings":                       NetIncome,
	"Net Income Common Stockholders":     NetIncome,
	"Pretax Income":                      PretaxIncome,
	"Income Before Tax":                  PretaxIncome,
	"Earnings Before Tax":                PretaxIncome,
	"Selling General Administrative":     SellingGeneralAdministrative,
	"Selling General And Administration": SellingGeneralAdministrative,
	"SG&A":                               SellingGeneralAdministrative,
	"Selling, General & Administrative":  SellingGeneralAdministrative,
	"Income Tax Expense":                 IncomeTaxExpense,
	"Tax Provision":                      IncomeTaxExpense,
	"Income Tax":                         IncomeTaxExpense,
	"Interest Expense":                   InterestExpense,
	"Interest Paid":                      InterestExpense,

	// Balance sheet
	"Total Assets":                              TotalAssets,
	"Total Current Assets":                      TotalCurrentAssets,
	"Current Assets":                            TotalCurrentAssets,
	"Total Liabilities":                         TotalLiabilities,
	"Total Liab":                                TotalLiabilities,
	"Total Liabilities Net Minority Interest":   TotalLiabilities,
	"Total Liabilities And Stockholders Equity": TotalLiabilities,
	"Total Current Liabilities":                 TotalCurrentLiabilities,
	"Current Liabilities":                       TotalCurrentLiabilities,
	"Total Stockholder Equity":                  TotalStockholderEquity,
	"Total Equity":                              TotalStockholderEquity,
	"Stockholders Equity":                       TotalStockholderEquity,
	"Inventory":                                 Inventory,
	"Net PPE":                                   NetPPE,
	"Property Plant Equipment":                  NetPPE,
	"Net Property Plant Equipment":              NetPPE,
	"Retained Earnings":                         RetainedEarnings,
	"Net Receivables":                           NetReceivables,
	"Accounts Receivable":                       NetReceivables,

	// Cash flow
	"Total Cash From Operating Activities": TotalCashFromOperatingActivities,
	"Operating Cash Flow":                  TotalCashFromOperatingActivities,
	"Cash From Operations":                 TotalCashFromOperatingActivities,
	"Depreciation":                         Depreciation,
	"Depreciation And Amortization":        Depreciation,
	"Cash Dividends Paid":                  CashDividendsPaid,
	"Dividends Paid":                       CashDividendsPaid,
}

// DroppedRow records a raw row discarded by the first-wins dedup policy.
type DroppedRow struct {
	Label     string `json:"label"`
	Canonical string `json:"canonical"`
}

// Normalize rewrites a raw statement onto the canonical vocabulary and
// coerces every value to numeric (NaN for unparseable). When several raw
// labels collapse onto one canonical name only the first-encountered row is
// kept; later rows are reported as dropped, not merged. Iteration over the
// raw map is randomized in Go, so "first" is fixed by sorting labels;
// synonym table order in the upstream data is not observable here.
func Normalize(raw RawStatement) (Table, []DroppedRow) {
	table := make(Table, len(raw))
	var dropped []DroppedRow

	for _, label := range sortedLabels(raw) {
		canonical, ok := fieldSynonyms[label]
		if !ok {
			canonical = label
		}
		if _, seen := table[canonical]; seen {
			dropped = append(dropped, DroppedRow{Label: label, Canonical: canonical})
			continue
		}
		row := make(map[string]float64, len(raw[label]))
		for period, v := range raw[label] {
			row[period] = Coerce(v)
		}
		table[canonical] = row
	}
	return table, dropped
}

// NormalizeSet normalizes all three statements of a raw set. Dropped rows
// from the three statements are concatenated in income, balance, cash flow
// order.
func NormalizeSet(raw RawStatementSet) (CanonicalSet, []DroppedRow) {
	income, d1 := Normalize(raw.Income)
	balance, d2 := Normalize(raw.Balance)
	cashflow, d3 := Normalize(raw.CashFlow)

	var dropped []DroppedRow
	dropped = append(dropped, d1...)
	dropped = append(dropped, d2...)
	dropped = append(dropped, d3...)

	return CanonicalSet{
		Income:   income,
		Balance:  balance,
		CashFlow: cashflow,
		Info:     raw.Info,
	}, dropped
}

// Coerce converts an untyped provider value to float64, returning NaN for
// anything that is not a number or a parseable numeric string.
func Coerce(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(x, ",", ""))
		if s == "" {
			return math.NaN()
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	case nil:
		return math.NaN()
	default:
		return math.NaN()
	}
}

func sortedLabels(raw RawStatement) []string {
	labels := make([]string, 0, len(raw))
	for label := range raw {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
