package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/metrics"
)

// md renders GitHub-flavored Markdown so the pipe tables come out as HTML
// tables.
var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// RenderMarkdown formats the document as a Markdown report with one table
// per metric group.
func RenderMarkdown(doc metrics.Document) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Financial Analysis: %s\n\n", doc.Ticker)
	if doc.Error != "" {
		fmt.Fprintf(&b, "> **Error:** %s\n\n", doc.Error)
	}
	fmt.Fprintf(&b, "**Currency:** %s", doc.Currency)
	if len(doc.Years) >= 2 {
		fmt.Fprintf(&b, " | **Periods:** %s vs %s", doc.Years[0], doc.Years[1])
	}
	b.WriteString("\n\n")

	mdTable(&b, "Ratios", [][2]string{
		{"Current", fmtValue(doc.Ratios.Current, plain)},
		{"Quick", fmtValue(doc.Ratios.Quick, plain)},
		{"Debt/Equity", fmtValue(doc.Ratios.DebtToEquity, plain)},
		{"ROE", fmtValue(doc.Ratios.ROE, percent)},
		{"ROA", fmtValue(doc.Ratios.ROA, percent)},
		{"ROE (DuPont)", fmtValue(doc.Ratios.ROEAdjusted, percent)},
	})

	mdTable(&b, "DuPont Decomposition", [][2]string{
		{"Net Profit Margin", fmtValue(doc.DuPont.ThreeStep.NPM, percent)},
		{"Asset Turnover", fmtValue(doc.DuPont.ThreeStep.AssetTurnover, plain)},
		{"Equity Multiplier", fmtValue(doc.DuPont.ThreeStep.EquityMultiplier, plain)},
		{"3-Step ROE", fmtValue(doc.DuPont.ThreeStep.ROE, percent)},
		{"5-Step ROE", fmtValue(doc.DuPont.FiveStep.ROE, percent)},
	})

	fmt.Fprintf(&b, "## Scores\n\n")
	fmt.Fprintf(&b, "- **Piotroski F-Score:** %s\n", doc.Piotroski.Display)
	if doc.Beneish.M != nil {
		fmt.Fprintf(&b, "- **Beneish M-Score:** %.4f\n", *doc.Beneish.M)
	} else {
		fmt.Fprintf(&b, "- **Beneish M-Score:** N/A (%s)\n", orUnknown(doc.Beneish.Reason))
	}
	if doc.Altman.Z != nil {
		fmt.Fprintf(&b, "- **Altman Z-Score:** %.4f\n", *doc.Altman.Z)
	} else {
		fmt.Fprintf(&b, "- **Altman Z-Score:** N/A (%s)\n", orUnknown(doc.Altman.Reason))
	}
	if doc.Alpha != nil {
		fmt.Fprintf(&b, "- **CAPM Alpha (annualized):** %.4f\n", *doc.Alpha)
	} else {
		fmt.Fprintf(&b, "- **CAPM Alpha (annualized):** N/A\n")
	}
	b.WriteString("\n")

	mdTable(&b, "Market Multiples", [][2]string{
		{"P/E", fmtValue(doc.PriceBased.PE, plain)},
		{"P/B", fmtValue(doc.PriceBased.PB, plain)},
		{"P/S", fmtValue(doc.PriceBased.PS, plain)},
		{"PEG", fmtValue(doc.PriceBased.PEG, plain)},
	})

	mdTable(&b, "Dividends", [][2]string{
		{"Yield", fmtValue(doc.Dividends.Yield, percent)},
		{"Payout Ratio", fmtValue(doc.Dividends.Payout, percent)},
		{"Coverage Ratio", fmtValue(doc.Dividends.Coverage, plain)},
	})

	if len(doc.Notes) > 0 {
		fmt.Fprintf(&b, "## Notes\n\n")
		for _, note := range doc.Notes {
			fmt.Fprintf(&b, "- %s\n", note)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// RenderHTML converts the Markdown report to an HTML fragment.
func RenderHTML(doc metrics.Document) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(RenderMarkdown(doc)), &buf); err != nil {
		return "", fmt.Errorf("markdown conversion failed: %w", err)
	}
	return buf.String(), nil
}

func mdTable(b *strings.Builder, title string, rows [][2]string) {
	fmt.Fprintf(b, "## %s\n\n", title)
	b.WriteString("| Metric | Value |\n|---|---|\n")
	for _, r := range rows {
		fmt.Fprintf(b, "| %s | %s |\n", r[0], r[1])
	}
	b.WriteString("\n")
}
