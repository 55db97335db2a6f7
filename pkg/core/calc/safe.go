// Package calc provides the deterministic formula library: liquidity,
// leverage and profitability ratios, DuPont decompositions, the Piotroski,
// Beneish and Altman models, price and dividend ratios, and CAPM alpha.
//
// NaN is the in-process "unknown" marker. Every formula routes potentially
// missing operands through the safe primitives below, so unknowns propagate
// instead of panicking or leaking infinities.
package calc

import "math"

// zeroDenominator is the magnitude below which a divisor is treated as zero.
const zeroDenominator = 1e-12

// SafeDiv divides a by b, returning NaN when either operand is unknown or
// non-finite, when |b| < 1e-12, or when the quotient overflows to infinity.
func SafeDiv(a, b float64) float64 {
	if !Known(a) || !Known(b) {
		return math.NaN()
	}
	if math.Abs(b) < zeroDenominator {
		return math.NaN()
	}
	q := a / b
	if math.IsInf(q, 0) {
		return math.NaN()
	}
	return q
}

// Average returns the arithmetic mean of a and b, or NaN when either is
// unknown or non-finite.
func Average(a, b float64) float64 {
	if !Known(a) || !Known(b) {
		return math.NaN()
	}
	return (a + b) / 2
}

// PercentChange returns (newVal-oldVal)/oldVal, or NaN when either operand
// is unknown or oldVal is zero.
func PercentChange(newVal, oldVal float64) float64 {
	if !Known(newVal) || !Known(oldVal) || oldVal == 0 {
		return math.NaN()
	}
	return (newVal - oldVal) / oldVal
}

// Known reports whether v is a finite number, i.e. a real value rather than
// the unknown marker or an overflow artifact.
func Known(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Round4 rounds to 4 decimal places; unknown passes through unchanged.
func Round4(v float64) float64 {
	if !Known(v) {
		return v
	}
	return math.Round(v*10000) / 10000
}

// Ptr converts an in-process value to the serialized representation: a
// pointer that is nil for unknown (JSON null) and never carries a
// non-finite number.
func Ptr(v float64) *float64 {
	if !Known(v) {
		return nil
	}
	return &v
}

// RoundPtr is Ptr after rounding to 4 decimals, the standard treatment for
// every numeric leaf of the output document.
func RoundPtr(v float64) *float64 {
	return Ptr(Round4(v))
}
