package metrics

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/calc"
	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/statements"
	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/validate"
)

// alphaWindowYears is the trailing window of monthly closes requested for
// the CAPM alpha estimate.
const alphaWindowYears = 3

// StatementProvider supplies the three raw statement tables plus the
// market-info snapshot for a ticker. Tables may be partially populated or
// entirely empty.
type StatementProvider interface {
	FetchStatements(ctx context.Context, ticker string) (statements.RawStatementSet, error)
}

// SeriesProvider supplies monthly closing prices over a trailing window of
// whole years. An empty series is a valid answer.
type SeriesProvider interface {
	MonthlyCloses(ctx context.Context, symbol string, years int) ([]calc.PricePoint, error)
}

// Service is the per-ticker computation pipeline. Every invocation builds
// its tables and document from scratch, so concurrent computations share no
// mutable state.
type Service struct {
	statements StatementProvider
	series     SeriesProvider
	benchmark  string
	log        zerolog.Logger
}

func NewService(sp StatementProvider, series SeriesProvider, log zerolog.Logger) *Service {
	return &Service{statements: sp, series: series, benchmark: calc.BenchmarkSymbol, log: log}
}

// SetBenchmark overrides the market index used for the alpha estimate.
func (s *Service) SetBenchmark(symbol string) {
	if symbol != "" {
		s.benchmark = symbol
	}
}

// Compute runs the full pipeline for one ticker. It never returns an error:
// any terminal fault is converted into the degraded document with the fault
// message preserved.
func (s *Service) Compute(ctx context.Context, ticker string) Document {
	raw, err := s.statements.FetchStatements(ctx, ticker)
	if err != nil {
		s.log.Warn().Str("ticker", ticker).Err(err).Msg("statement fetch failed")
		return Degraded(ticker, err.Error())
	}

	set, dropped := statements.NormalizeSet(raw)
	for _, d := range dropped {
		s.log.Debug().
			Str("ticker", ticker).
			Str("label", d.Label).
			Str("canonical", d.Canonical).
			Msg("dropped duplicate statement row")
	}

	pp, err := statements.SelectPeriods(set)
	if err != nil {
		return Degraded(ticker, err.Error())
	}

	in := calc.ExtractInputs(set, pp)

	doc := Document{
		Ticker:     ticker,
		Currency:   statements.Currency(set.Info),
		Years:      []string{pp.Current, pp.Prior},
		Validation: validate.CheckAccountingEquation(set.Balance, validate.DefaultTolerance),
		Ratios:     calc.CoreRatios(in),
		DuPont:     calc.DuPontAnalysis(in),
		Piotroski:  calc.PiotroskiFScore(in),
		Beneish:    calc.BeneishMScore(in),
		Altman:     calc.AltmanZScore(in),
		PriceBased: calc.PriceMultiples(in),
		Dividends:  calc.DividendMetrics(in),
		Alpha:      calc.RoundPtr(s.alpha(ctx, ticker, in.Beta)),
		Notes:      []string{},
	}

	for _, field := range validate.CollectMissing(set) {
		doc.Notes = append(doc.Notes, "Missing field: "+field)
	}

	return doc
}

// alpha fetches both return series and estimates CAPM alpha. Series
// failures degrade alpha to unknown without affecting the rest of the
// document.
func (s *Service) alpha(ctx context.Context, ticker string, beta float64) float64 {
	if s.series == nil {
		return math.NaN()
	}

	stock, err := s.series.MonthlyCloses(ctx, ticker, alphaWindowYears)
	if err != nil {
		s.log.Warn().Str("ticker", ticker).Err(err).Msg("stock series fetch failed")
		return math.NaN()
	}
	bench, err := s.series.MonthlyCloses(ctx, s.benchmark, alphaWindowYears)
	if err != nil {
		s.log.Warn().Str("ticker", ticker).Err(err).Msg("benchmark series fetch failed")
		return math.NaN()
	}

	return calc.CAPMAlpha(stock, bench, beta)
}

// Diagnostics is the raw-dump companion to Compute: the canonical tables,
// the rows normalization dropped, and the cross-statement linkage check.
// Used by the dump endpoint and the CLI's verbose mode.
type Diagnostics struct {
	Ticker      string                        `json:"ticker"`
	Periods     *statements.PeriodPair        `json:"periods,omitempty"`
	PeriodError string                        `json:"period_error,omitempty"`
	Income      statements.Table              `json:"income"`
	Balance     statements.Table              `json:"balance"`
	CashFlow    statements.Table              `json:"cashflow"`
	Info        statements.Info               `json:"info"`
	Dropped     []statements.DroppedRow       `json:"dropped_rows"`
	Linkage     *validate.RetainedEarningsLink `json:"retained_earnings_linkage,omitempty"`
	Benford     calc.BenfordScreen            `json:"benford"`
	CommonSize  *calc.CommonSize              `json:"common_size,omitempty"`
}

// Inspect normalizes the provider payload without computing metrics.
func (s *Service) Inspect(ctx context.Context, ticker string) (Diagnostics, error) {
	raw, err := s.statements.FetchStatements(ctx, ticker)
	if err != nil {
		return Diagnostics{}, err
	}

	set, dropped := statements.NormalizeSet(raw)
	diag := Diagnostics{
		Ticker:   ticker,
		Income:   set.Income,
		Balance:  set.Balance,
		CashFlow: set.CashFlow,
		Info:     set.Info,
		Dropped:  dropped,
		Benford:  calc.ScanBenford(calc.StatementValues(set)),
	}

	pp, err := statements.SelectPeriods(set)
	if err != nil {
		diag.PeriodError = err.Error()
		return diag, nil
	}
	diag.Periods = &pp
	link := validate.CheckRetainedEarnings(set, pp)
	diag.Linkage = &link
	cs := calc.CommonSizeView(set, pp.Current)
	diag.CommonSize = &cs
	return diag, nil
}
