package calc

import "math"

// benfordExpected is the Benford's-law frequency of leading digits 1-9.
var benfordExpected = [9]float64{
	0.30103, 0.17609, 0.12494, 0.09691, 0.07918,
	0.06695, 0.05799, 0.05115, 0.04576,
}

// minBenfordSamples is the smallest population the screen will grade.
// Below it the MAD statistic is dominated by noise.
const minBenfordSamples = 30

// BenfordScreen is a first-digit conformity screen over reported statement
// values. Index 0 of Counts and Frequencies corresponds to digit 1.
type BenfordScreen struct {
	Counts      [9]int     `json:"counts"`
	Frequencies [9]float64 `json:"frequencies"`
	Samples     int        `json:"samples"`
	MAD         float64    `json:"mad"`
	Level       string     `json:"level"`
	Flagged     bool       `json:"flagged"`
}

// ScanBenford grades how closely the leading digits of values follow
// Benford's law. NaN, infinite and sub-unit magnitudes are skipped. MAD
// thresholds follow the usual audit heuristics, relaxed slightly because
// annual statements yield small populations.
func ScanBenford(values []float64) BenfordScreen {
	var screen BenfordScreen

	for _, v := range values {
		v = math.Abs(v)
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 1 {
			continue
		}
		for v >= 10 {
			v /= 10
		}
		screen.Counts[int(v)-1]++
		screen.Samples++
	}

	if screen.Samples < minBenfordSamples {
		screen.Level = "insufficient_sample"
		return screen
	}

	var sum float64
	for d := 0; d < 9; d++ {
		screen.Frequencies[d] = float64(screen.Counts[d]) / float64(screen.Samples)
		sum += math.Abs(screen.Frequencies[d] - benfordExpected[d])
	}
	screen.MAD = sum / 9

	switch {
	case screen.MAD > 0.015:
		screen.Level = "nonconforming"
		screen.Flagged = true
	case screen.MAD > 0.010:
		screen.Level = "marginal"
	default:
		screen.Level = "conforming"
	}
	return screen
}
