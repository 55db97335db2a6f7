package calc

import (
	"math"
	"testing"
	"time"
)

// monthlySeries builds n+1 monthly closes compounding at the given rate,
// yielding n returns of exactly that rate.
func monthlySeries(start time.Time, n int, rate float64) []PricePoint {
	points := make([]PricePoint, 0, n+1)
	close := 100.0
	for i := 0; i <= n; i++ {
		points = append(points, PricePoint{Date: start.AddDate(0, i, 0), Close: close})
		close *= 1 + rate
	}
	return points
}

func TestCAPMAlpha(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	stock := monthlySeries(start, 24, 0.02)
	bench := monthlySeries(start, 24, 0.01)

	// alpha = (0.02 - 1.0*0.01) * 12 = 0.12
	got := CAPMAlpha(stock, bench, 1.0)
	if math.Abs(got-0.12) > 1e-9 {
		t.Errorf("Expected alpha 0.12, got %f", got)
	}

	// Higher beta scales the benchmark contribution.
	got = CAPMAlpha(stock, bench, 2.0)
	if math.Abs(got-0.0) > 1e-9 {
		t.Errorf("Expected alpha 0 at beta 2, got %f", got)
	}
}

func TestCAPMAlphaUnknownBetaDefaults(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	stock := monthlySeries(start, 24, 0.02)
	bench := monthlySeries(start, 24, 0.01)

	got := CAPMAlpha(stock, bench, math.NaN())
	if math.Abs(got-0.12) > 1e-9 {
		t.Errorf("Expected beta to default to 1, got alpha %f", got)
	}
}

func TestCAPMAlphaInsufficientOverlap(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	stock := monthlySeries(start, 8, 0.02)
	bench := monthlySeries(start, 24, 0.01)

	if got := CAPMAlpha(stock, bench, 1.0); !math.IsNaN(got) {
		t.Errorf("Expected NaN on 8 overlapping months, got %f", got)
	}
}

func TestCAPMAlphaDisjointSeries(t *testing.T) {
	stock := monthlySeries(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), 24, 0.02)
	bench := monthlySeries(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), 24, 0.01)

	if got := CAPMAlpha(stock, bench, 1.0); !math.IsNaN(got) {
		t.Errorf("Expected NaN on disjoint months, got %f", got)
	}
}

func TestMonthlyReturnsSkipBadPoints(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	points := []PricePoint{
		{Date: start, Close: 100},
		{Date: start.AddDate(0, 1, 0), Close: 0},
		{Date: start.AddDate(0, 2, 0), Close: 110},
	}

	returns := monthlyReturns(points)
	// The zero close still prices a -100% month but cannot serve as the
	// base for the month after it.
	if len(returns) != 1 {
		t.Fatalf("Expected a single usable return, got %v", returns)
	}
	if returns["2023-02"] != -1 {
		t.Errorf("Expected -1 for the collapse month, got %v", returns)
	}
}
