package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/calc"
	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/metrics"
	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/report"
	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/statements"
	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/yahoo"
)

var rootCmd = &cobra.Command{
	Use:   "finmetrics",
	Short: "Financial metrics calculator",
	Long: `Computes ratio, DuPont, Piotroski, Beneish, Altman and market-based
metrics for a ticker and prints them as JSON, a table, or markdown.

Examples:
  finmetrics --ticker AAPL
  finmetrics --ticker MSFT --format table
  finmetrics --ticker GOOGL --verbose
  finmetrics --ticker AAPL --strict
  finmetrics --ticker TEST --input fixtures/test.hjson`,
	RunE: run,
}

func init() {
	f := rootCmd.Flags()
	f.String("ticker", "", "stock ticker symbol (e.g. AAPL, MSFT)")
	f.String("format", "json", "output format: json, table or markdown")
	f.Bool("verbose", false, "include validation and data quality detail")
	f.Bool("dump", false, "dump the full document with sorted keys")
	f.Bool("strict", false, "exit non-zero on computation or validation failure")
	f.String("input", "", "compute from a local HJSON fixture instead of the network")
	rootCmd.MarkFlagRequired("ticker")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// fixtureProvider serves statements from a loaded file and reports no price
// history, so alpha comes out null.
type fixtureProvider struct {
	fx statements.Fixture
}

func (p fixtureProvider) FetchStatements(ctx context.Context, ticker string) (statements.RawStatementSet, error) {
	return p.fx.Set, nil
}

func (p fixtureProvider) MonthlyCloses(ctx context.Context, symbol string, years int) ([]calc.PricePoint, error) {
	return nil, nil
}

func run(cmd *cobra.Command, _ []string) error {
	ticker, _ := cmd.Flags().GetString("ticker")
	format, _ := cmd.Flags().GetString("format")
	verbose, _ := cmd.Flags().GetBool("verbose")
	dump, _ := cmd.Flags().GetBool("dump")
	strict, _ := cmd.Flags().GetBool("strict")
	input, _ := cmd.Flags().GetString("input")

	if format != "json" && format != "table" && format != "markdown" {
		return fmt.Errorf("unknown format %q, want json, table or markdown", format)
	}

	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger().Level(level)

	var svc *metrics.Service
	if input != "" {
		fx, err := statements.LoadFixture(input)
		if err != nil {
			return err
		}
		if fx.Ticker != "" {
			ticker = fx.Ticker
		}
		p := fixtureProvider{fx: fx}
		svc = metrics.NewService(p, p, log)
	} else {
		client := yahoo.NewClient(log)
		svc = metrics.NewService(client, client, log)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	doc := svc.Compute(ctx, ticker)

	if doc.Error != "" {
		if strict {
			return fmt.Errorf("computation failed for %s: %s", ticker, doc.Error)
		}
		fmt.Fprintf(os.Stderr, "Warning: %s\n", doc.Error)
	}

	if strict {
		for period, check := range doc.Validation {
			if !check.OK {
				delta := "N/A"
				if check.Delta != nil {
					delta = fmt.Sprintf("%.4f", *check.Delta)
				}
				return fmt.Errorf("accounting equation check failed for %s: delta=%s", period, delta)
			}
		}
	}

	switch format {
	case "table":
		fmt.Print(report.RenderText(doc))
	case "markdown":
		fmt.Print(report.RenderMarkdown(doc))
	default:
		return printJSON(doc, verbose, dump)
	}
	return nil
}

// simplified is the default JSON projection, dropping validation detail and
// composite reasons a quick caller does not need.
type simplified struct {
	Ticker     string          `json:"ticker"`
	Currency   string          `json:"currency"`
	Years      []string        `json:"years"`
	Ratios     calc.Ratios     `json:"ratios"`
	DuPont     calc.DuPont     `json:"dupont"`
	Piotroski  calc.Piotroski  `json:"piotroski"`
	Beneish    calc.Beneish    `json:"beneish"`
	PriceBased calc.PriceBased `json:"price_based"`
	Dividends  calc.Dividends  `json:"dividends"`
}

func printJSON(doc metrics.Document, verbose, dump bool) error {
	var out any = doc
	if !dump && !verbose {
		out = simplified{
			Ticker:     doc.Ticker,
			Currency:   doc.Currency,
			Years:      doc.Years,
			Ratios:     doc.Ratios,
			DuPont:     doc.DuPont,
			Piotroski:  doc.Piotroski,
			Beneish:    doc.Beneish,
			PriceBased: doc.PriceBased,
			Dividends:  doc.Dividends,
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
