// Package report renders a computed document for human consumption:
// plain-text tables for the terminal, Markdown for inclusion in docs, and
// HTML rendered from the Markdown.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/metrics"
)

// RenderText formats the document as sectioned plain-text tables.
func RenderText(doc metrics.Document) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s\n", strings.Repeat("=", 60))
	fmt.Fprintf(&b, "FINANCIAL ANALYSIS: %s\n", doc.Ticker)
	fmt.Fprintf(&b, "%s\n", strings.Repeat("=", 60))

	if doc.Error != "" {
		fmt.Fprintf(&b, "\nWarning: %s\n", doc.Error)
	}

	fmt.Fprintf(&b, "\nCurrency: %s\n", doc.Currency)
	if len(doc.Years) >= 2 {
		fmt.Fprintf(&b, "Years: %s - %s\n", doc.Years[0], doc.Years[1])
	}

	section(&b, "FINANCIAL RATIOS")
	row(&b, "Current", doc.Ratios.Current, plain)
	row(&b, "Quick", doc.Ratios.Quick, plain)
	row(&b, "Debt To Equity", doc.Ratios.DebtToEquity, plain)
	row(&b, "Roe", doc.Ratios.ROE, percent)
	row(&b, "Roa", doc.Ratios.ROA, percent)
	row(&b, "Roe Adjusted", doc.Ratios.ROEAdjusted, percent)

	section(&b, "DUPONT ANALYSIS")
	fmt.Fprintf(&b, "3-Step ROE: %s\n", fmtValue(doc.DuPont.ThreeStep.ROE, percent))
	fmt.Fprintf(&b, "  Net Profit Margin: %s\n", fmtValue(doc.DuPont.ThreeStep.NPM, percent))
	fmt.Fprintf(&b, "  Asset Turnover: %s\n", fmtValue(doc.DuPont.ThreeStep.AssetTurnover, plain))
	fmt.Fprintf(&b, "  Equity Multiplier: %s\n", fmtValue(doc.DuPont.ThreeStep.EquityMultiplier, plain))
	fmt.Fprintf(&b, "5-Step ROE: %s\n", fmtValue(doc.DuPont.FiveStep.ROE, percent))

	section(&b, "PIOTROSKI F-SCORE")
	fmt.Fprintf(&b, "F-Score: %s\n", doc.Piotroski.Display)
	for _, name := range sortedKeys(doc.Piotroski.Signals) {
		mark := "✗"
		if doc.Piotroski.Signals[name] == 1 {
			mark = "✓"
		}
		fmt.Fprintf(&b, "  %s: %s\n", name, mark)
	}

	section(&b, "BENEISH M-SCORE")
	if doc.Beneish.M != nil {
		fmt.Fprintf(&b, "M-Score: %.4f\n", *doc.Beneish.M)
	} else {
		fmt.Fprintf(&b, "M-Score: N/A (%s)\n", orUnknown(doc.Beneish.Reason))
	}
	c := doc.Beneish.Components
	for _, comp := range []struct {
		name  string
		value *float64
	}{
		{"DSRI", c.DSRI}, {"GMI", c.GMI}, {"AQI", c.AQI}, {"SGI", c.SGI},
		{"DEPI", c.DEPI}, {"SGAI", c.SGAI}, {"LVGI", c.LVGI}, {"TATA", c.TATA},
	} {
		fmt.Fprintf(&b, "  %s: %s\n", comp.name, fmtValue(comp.value, plain))
	}

	section(&b, "ALTMAN Z-SCORE")
	if doc.Altman.Z != nil {
		fmt.Fprintf(&b, "Z-Score: %.4f\n", *doc.Altman.Z)
	} else {
		fmt.Fprintf(&b, "Z-Score: N/A (%s)\n", orUnknown(doc.Altman.Reason))
	}

	section(&b, "PRICE-BASED RATIOS")
	row(&b, "PE", doc.PriceBased.PE, plain)
	row(&b, "PB", doc.PriceBased.PB, plain)
	row(&b, "PS", doc.PriceBased.PS, plain)
	row(&b, "PEG", doc.PriceBased.PEG, plain)

	section(&b, "DIVIDEND METRICS")
	row(&b, "Dividend Yield", doc.Dividends.Yield, percent)
	row(&b, "Dividend Payout Ratio", doc.Dividends.Payout, percent)
	row(&b, "Dividend Coverage Ratio", doc.Dividends.Coverage, plain)

	if doc.Alpha != nil {
		fmt.Fprintf(&b, "\nCAPM Alpha (annualized): %.4f\n", *doc.Alpha)
	}

	if len(doc.Validation) > 0 {
		section(&b, "ACCOUNTING VALIDATION")
		periods := make([]string, 0, len(doc.Validation))
		for p := range doc.Validation {
			periods = append(periods, p)
		}
		sort.Sort(sort.Reverse(sort.StringSlice(periods)))
		for _, p := range periods {
			check := doc.Validation[p]
			status := "✗ FAIL"
			if check.OK {
				status = "✓ PASS"
			}
			delta := "N/A"
			if check.Delta != nil {
				delta = fmt.Sprintf("%.4f", *check.Delta)
			}
			fmt.Fprintf(&b, "%s: %s (delta: %s)\n", p, status, delta)
		}
	}

	if len(doc.Notes) > 0 {
		section(&b, "NOTES")
		for _, note := range doc.Notes {
			fmt.Fprintf(&b, "  %s\n", note)
		}
	}

	return b.String()
}

type valueStyle int

const (
	plain valueStyle = iota
	percent
)

func section(b *strings.Builder, title string) {
	fmt.Fprintf(b, "\n%-30s\n", title)
	fmt.Fprintf(b, "%s\n", strings.Repeat("-", 30))
}

func row(b *strings.Builder, label string, v *float64, style valueStyle) {
	fmt.Fprintf(b, "%-25s: %s\n", label, fmtValue(v, style))
}

func fmtValue(v *float64, style valueStyle) string {
	if v == nil {
		return "N/A"
	}
	if style == percent {
		return fmt.Sprintf("%.2f%%", *v*100)
	}
	return fmt.Sprintf("%.4f", *v)
}

func orUnknown(reason string) string {
	if reason == "" {
		return "Unknown reason"
	}
	return reason
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
