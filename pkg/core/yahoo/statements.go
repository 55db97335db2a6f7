package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/url"

	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/statements"
)

// statementModules are the quoteSummary modules one fetch requests: the
// three annual statement histories plus the market snapshot modules.
const statementModules = "incomeStatementHistory,balanceSheetHistory,cashflowStatementHistory,price,summaryDetail,defaultKeyStatistics,summaryProfile"

// fieldLabels rewrites Yahoo's camelCase line-item keys into the labels the
// statement normalizer recognizes. Keys not listed are dropped at this
// layer rather than leaking provider internals downstream.
var fieldLabels = map[string]string{
	"totalRevenue":                 "Total Revenue",
	"costOfRevenue":                "Cost Of Revenue",
	"grossProfit":                  "Gross Profit",
	"operatingIncome":              "Operating Income",
	"netIncome":                    "Net Income",
	"incomeBeforeTax":              "Income Before Tax",
	"sellingGeneralAdministrative": "Selling General Administrative",
	"incomeTaxExpense":             "Income Tax Expense",
	"interestExpense":              "Interest Expense",

	"totalAssets":              "Total Assets",
	"totalLiab":                "Total Liab",
	"totalStockholderEquity":   "Total Stockholder Equity",
	"totalCurrentAssets":       "Total Current Assets",
	"totalCurrentLiabilities":  "Total Current Liabilities",
	"inventory":                "Inventory",
	"propertyPlantEquipment":   "Property Plant Equipment",
	"retainedEarnings":         "Retained Earnings",
	"netReceivables":           "Net Receivables",

	"totalCashFromOperatingActivities": "Total Cash From Operating Activities",
	"depreciation":                     "Depreciation",
	"dividendsPaid":                    "Dividends Paid",
}

// wireValue is Yahoo's {"raw": n, "fmt": "..."} wrapper. Raw is a pointer
// because empty objects {} stand in for missing values.
type wireValue struct {
	Raw *float64 `json:"raw"`
	Fmt string   `json:"fmt"`
}

// wireEntry is one reporting period of one statement; line items keep their
// raw JSON so non-value keys (maxAge and friends) can be skipped.
type wireEntry map[string]json.RawMessage

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			IncomeStatementHistory struct {
				IncomeStatementHistory []wireEntry `json:"incomeStatementHistory"`
			} `json:"incomeStatementHistory"`
			BalanceSheetHistory struct {
				BalanceSheetStatements []wireEntry `json:"balanceSheetStatements"`
			} `json:"balanceSheetHistory"`
			CashflowStatementHistory struct {
				CashflowStatements []wireEntry `json:"cashflowStatements"`
			} `json:"cashflowStatementHistory"`
			Price struct {
				Currency           string    `json:"currency"`
				LongName           string    `json:"longName"`
				RegularMarketPrice wireValue `json:"regularMarketPrice"`
			} `json:"price"`
			SummaryDetail struct {
				Beta         wireValue `json:"beta"`
				DividendRate wireValue `json:"dividendRate"`
			} `json:"summaryDetail"`
			DefaultKeyStatistics struct {
				SharesOutstanding wireValue `json:"sharesOutstanding"`
				BookValue         wireValue `json:"bookValue"`
			} `json:"defaultKeyStatistics"`
			SummaryProfile struct {
				Sector   string `json:"sector"`
				Industry string `json:"industry"`
			} `json:"summaryProfile"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"quoteSummary"`
}

// FetchStatements implements metrics.StatementProvider.
func (c *Client) FetchStatements(ctx context.Context, ticker string) (statements.RawStatementSet, error) {
	u := fmt.Sprintf(c.baseQuote, url.PathEscape(ticker)) + "?modules=" + statementModules

	var resp quoteSummaryResponse
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return statements.RawStatementSet{}, err
	}
	if len(resp.QuoteSummary.Result) == 0 {
		return statements.RawStatementSet{}, fmt.Errorf("no data found for ticker %s", ticker)
	}
	r := resp.QuoteSummary.Result[0]

	info := statements.NewInfo()
	info.Currency = r.Price.Currency
	info.CompanyName = r.Price.LongName
	info.Sector = r.SummaryProfile.Sector
	info.Industry = r.SummaryProfile.Industry
	info.Price = deref(r.Price.RegularMarketPrice.Raw)
	info.SharesOutstanding = deref(r.DefaultKeyStatistics.SharesOutstanding.Raw)
	info.BookValue = deref(r.DefaultKeyStatistics.BookValue.Raw)
	info.Beta = deref(r.SummaryDetail.Beta.Raw)
	info.DividendRate = deref(r.SummaryDetail.DividendRate.Raw)

	return statements.RawStatementSet{
		Income:   buildRaw(r.IncomeStatementHistory.IncomeStatementHistory),
		Balance:  buildRaw(r.BalanceSheetHistory.BalanceSheetStatements),
		CashFlow: buildRaw(r.CashflowStatementHistory.CashflowStatements),
		Info:     info,
	}, nil
}

// buildRaw pivots period-major wire entries into the label-major raw
// statement shape. Periods are identified by Yahoo's formatted end date.
func buildRaw(entries []wireEntry) statements.RawStatement {
	raw := make(statements.RawStatement)
	for _, entry := range entries {
		period := entryPeriod(entry)
		if period == "" {
			continue
		}
		for key, msg := range entry {
			label, ok := fieldLabels[key]
			if !ok {
				continue
			}
			var v wireValue
			if err := json.Unmarshal(msg, &v); err != nil || v.Raw == nil {
				continue
			}
			if raw[label] == nil {
				raw[label] = make(map[string]any)
			}
			raw[label][period] = *v.Raw
		}
	}
	return raw
}

func entryPeriod(entry wireEntry) string {
	msg, ok := entry["endDate"]
	if !ok {
		return ""
	}
	var v wireValue
	if err := json.Unmarshal(msg, &v); err != nil {
		return ""
	}
	return v.Fmt
}

func deref(p *float64) float64 {
	if p == nil {
		return math.NaN()
	}
	return *p
}
