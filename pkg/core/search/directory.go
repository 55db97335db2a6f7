// Package search resolves free-text queries against a static directory of
// common US tickers and ETFs. This is a convenience lookup for UI
// autocompletion, not a full symbology service.
package search

import (
	"fmt"
	"sort"
	"strings"
)

// maxResults caps the number of matches returned per query.
const maxResults = 15

// Result is one directory match.
type Result struct {
	Symbol      string `json:"symbol"`
	CompanyName string `json:"company_name"`
	Exchange    string `json:"exchange"`
	Display     string `json:"display"`
}

type listing struct {
	name     string
	exchange string
	sector   string
}

var directory = map[string]listing{
	// Technology
	"AAPL":  {"Apple Inc.", "NASDAQ", "Technology"},
	"MSFT":  {"Microsoft Corporation", "NASDAQ", "Technology"},
	"GOOGL": {"Alphabet Inc. Class A", "NASDAQ", "Technology"},
	"GOOG":  {"Alphabet Inc. Class C", "NASDAQ", "Technology"},
	"AMZN":  {"Amazon.com Inc.", "NASDAQ", "Consumer Discretionary"},
	"META":  {"Meta Platforms Inc.", "NASDAQ", "Technology"},
	"NVDA":  {"NVIDIA Corporation", "NASDAQ", "Technology"},
	"TSLA":  {"Tesla Inc.", "NASDAQ", "Consumer Discretionary"},
	"NFLX":  {"Netflix Inc.", "NASDAQ", "Communication Services"},
	"ADBE":  {"Adobe Inc.", "NASDAQ", "Technology"},
	"CRM":   {"Salesforce Inc.", "NYSE", "Technology"},
	"INTC":  {"Intel Corporation", "NASDAQ", "Technology"},
	"AMD":   {"Advanced Micro Devices Inc.", "NASDAQ", "Technology"},
	"ORCL":  {"Oracle Corporation", "NYSE", "Technology"},
	"IBM":   {"International Business Machines Corporation", "NYSE", "Technology"},
	"CSCO":  {"Cisco Systems Inc.", "NASDAQ", "Technology"},
	"QCOM":  {"QUALCOMM Incorporated", "NASDAQ", "Technology"},
	"AVGO":  {"Broadcom Inc.", "NASDAQ", "Technology"},
	"TXN":   {"Texas Instruments Incorporated", "NASDAQ", "Technology"},
	"MU":    {"Micron Technology Inc.", "NASDAQ", "Technology"},

	// Financial services
	"JPM":  {"JPMorgan Chase & Co.", "NYSE", "Financial Services"},
	"BAC":  {"Bank of America Corporation", "NYSE", "Financial Services"},
	"WFC":  {"Wells Fargo & Company", "NYSE", "Financial Services"},
	"GS":   {"Goldman Sachs Group Inc.", "NYSE", "Financial Services"},
	"MS":   {"Morgan Stanley", "NYSE", "Financial Services"},
	"C":    {"Citigroup Inc.", "NYSE", "Financial Services"},
	"AXP":  {"American Express Company", "NYSE", "Financial Services"},
	"V":    {"Visa Inc.", "NYSE", "Financial Services"},
	"MA":   {"Mastercard Incorporated", "NYSE", "Financial Services"},
	"PYPL": {"PayPal Holdings Inc.", "NASDAQ", "Financial Services"},
	"SQ":   {"Block Inc.", "NYSE", "Financial Services"},
	"COIN": {"Coinbase Global Inc.", "NASDAQ", "Financial Services"},

	// Healthcare
	"JNJ":  {"Johnson & Johnson", "NYSE", "Healthcare"},
	"PFE":  {"Pfizer Inc.", "NYSE", "Healthcare"},
	"UNH":  {"UnitedHealth Group Incorporated", "NYSE", "Healthcare"},
	"ABBV": {"AbbVie Inc.", "NYSE", "Healthcare"},
	"MRK":  {"Merck & Co. Inc.", "NYSE", "Healthcare"},
	"TMO":  {"Thermo Fisher Scientific Inc.", "NYSE", "Healthcare"},
	"ABT":  {"Abbott Laboratories", "NYSE", "Healthcare"},
	"DHR":  {"Danaher Corporation", "NYSE", "Healthcare"},
	"BMY":  {"Bristol Myers Squibb Company", "NYSE", "Healthcare"},
	"AMGN": {"Amgen Inc.", "NASDAQ", "Healthcare"},
	"GILD": {"Gilead Sciences Inc.", "NASDAQ", "Healthcare"},
	"CVS":  {"CVS Health Corporation", "NYSE", "Healthcare"},

	// Consumer and retail
	"WMT":  {"Walmart Inc.", "NYSE", "Consumer Staples"},
	"PG":   {"Procter & Gamble Company", "NYSE", "Consumer Staples"},
	"KO":   {"The Coca-Cola Company", "NYSE", "Consumer Staples"},
	"PEP":  {"PepsiCo Inc.", "NASDAQ", "Consumer Staples"},
	"MCD":  {"McDonald's Corporation", "NYSE", "Consumer Discretionary"},
	"SBUX": {"Starbucks Corporation", "NASDAQ", "Consumer Discretionary"},
	"NKE":  {"NIKE Inc.", "NYSE", "Consumer Discretionary"},
	"HD":   {"The Home Depot Inc.", "NYSE", "Consumer Discretionary"},
	"LOW":  {"Lowe's Companies Inc.", "NYSE", "Consumer Discretionary"},
	"TGT":  {"Target Corporation", "NYSE", "Consumer Discretionary"},
	"COST": {"Costco Wholesale Corporation", "NASDAQ", "Consumer Staples"},

	// Energy and utilities
	"XOM": {"Exxon Mobil Corporation", "NYSE", "Energy"},
	"CVX": {"Chevron Corporation", "NYSE", "Energy"},
	"COP": {"ConocoPhillips", "NYSE", "Energy"},
	"EOG": {"EOG Resources Inc.", "NYSE", "Energy"},
	"SLB": {"Schlumberger Limited", "NYSE", "Energy"},
	"NEE": {"NextEra Energy Inc.", "NYSE", "Utilities"},
	"DUK": {"Duke Energy Corporation", "NYSE", "Utilities"},
	"SO":  {"The Southern Company", "NYSE", "Utilities"},

	// Industrials and materials
	"BA":  {"The Boeing Company", "NYSE", "Industrials"},
	"CAT": {"Caterpillar Inc.", "NYSE", "Industrials"},
	"GE":  {"General Electric Company", "NYSE", "Industrials"},
	"HON": {"Honeywell International Inc.", "NASDAQ", "Industrials"},
	"MMM": {"3M Company", "NYSE", "Industrials"},
	"UPS": {"United Parcel Service Inc.", "NYSE", "Industrials"},
	"FDX": {"FedEx Corporation", "NYSE", "Industrials"},

	// Communication services
	"DIS":   {"The Walt Disney Company", "NYSE", "Communication Services"},
	"CMCSA": {"Comcast Corporation", "NASDAQ", "Communication Services"},
	"VZ":    {"Verizon Communications Inc.", "NYSE", "Communication Services"},
	"T":     {"AT&T Inc.", "NYSE", "Communication Services"},
	"TMUS":  {"T-Mobile US Inc.", "NASDAQ", "Communication Services"},

	// Real estate
	"AMT": {"American Tower Corporation", "NYSE", "Real Estate"},
	"PLD": {"Prologis Inc.", "NYSE", "Real Estate"},
	"CCI": {"Crown Castle Inc.", "NYSE", "Real Estate"},

	"BRK-B": {"Berkshire Hathaway Inc. Class B", "NYSE", "Financial Services"},
	"BRK-A": {"Berkshire Hathaway Inc. Class A", "NYSE", "Financial Services"},

	// ETFs
	"SPY": {"SPDR S&P 500 ETF Trust", "NYSE", "ETF"},
	"QQQ": {"Invesco QQQ Trust", "NASDAQ", "ETF"},
	"VTI": {"Vanguard Total Stock Market Index Fund", "NYSE", "ETF"},
	"VOO": {"Vanguard S&P 500 ETF", "NYSE", "ETF"},
	"IWM": {"iShares Russell 2000 ETF", "NYSE", "ETF"},
}

// sortedSymbols fixes iteration order so identical queries always return
// identical result lists.
var sortedSymbols = func() []string {
	symbols := make([]string, 0, len(directory))
	for s := range directory {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}()

// Search matches the query against ticker symbols first, then company
// names, returning at most 15 results. Matching is case-insensitive
// substring containment.
func Search(query string) []Result {
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var results []Result
	seen := make(map[string]bool)

	for _, symbol := range sortedSymbols {
		if strings.Contains(symbol, q) {
			results = append(results, toResult(symbol))
			seen[symbol] = true
		}
	}
	for _, symbol := range sortedSymbols {
		if seen[symbol] {
			continue
		}
		if strings.Contains(strings.ToUpper(directory[symbol].name), q) {
			results = append(results, toResult(symbol))
		}
	}

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

// Lookup returns the directory entry for an exact symbol.
func Lookup(symbol string) (Result, bool) {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if _, ok := directory[s]; !ok {
		return Result{}, false
	}
	return toResult(s), true
}

func toResult(symbol string) Result {
	l := directory[symbol]
	return Result{
		Symbol:      symbol,
		CompanyName: l.name,
		Exchange:    l.exchange,
		Display:     fmt.Sprintf("%s - %s (%s)", symbol, l.name, l.exchange),
	}
}
