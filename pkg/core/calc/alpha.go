package calc

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// BenchmarkSymbol is the market proxy used for CAPM alpha.
const BenchmarkSymbol = "SPY"

// minAlphaObservations is the smallest number of overlapping monthly
// returns accepted for an alpha estimate.
const minAlphaObservations = 12

// PricePoint is one monthly close from a price series provider.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// monthKey collapses a timestamp to its calendar month.
func monthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// monthlyReturns converts a close series into percent-change returns keyed
// by calendar month. Points with a non-positive prior close are skipped.
func monthlyReturns(points []PricePoint) map[string]float64 {
	sorted := make([]PricePoint, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	returns := make(map[string]float64)
	for i := 1; i < len(sorted); i++ {
		prev := sorted[i-1].Close
		if prev <= 0 || !Known(prev) || !Known(sorted[i].Close) {
			continue
		}
		returns[monthKey(sorted[i].Date)] = (sorted[i].Close - prev) / prev
	}
	return returns
}

// CAPMAlpha estimates annualized alpha of a stock against a benchmark
// series: alpha = mean(stock returns) - beta * mean(benchmark returns),
// over the months both series cover, times twelve. The risk-free rate is
// taken as zero. Returns NaN when fewer than twelve months overlap or
// beta is unknown.
func CAPMAlpha(stock, benchmark []PricePoint, beta float64) float64 {
	if !Known(beta) {
		beta = 1.0
	}

	stockReturns := monthlyReturns(stock)
	benchReturns := monthlyReturns(benchmark)

	var months []string
	for month := range stockReturns {
		if _, ok := benchReturns[month]; ok {
			months = append(months, month)
		}
	}
	if len(months) < minAlphaObservations {
		return math.NaN()
	}
	sort.Strings(months)

	stockSeries := make([]float64, len(months))
	benchSeries := make([]float64, len(months))
	for i, month := range months {
		stockSeries[i] = stockReturns[month]
		benchSeries[i] = benchReturns[month]
	}

	monthly := stat.Mean(stockSeries, nil) - beta*stat.Mean(benchSeries, nil)
	return monthly * 12
}
