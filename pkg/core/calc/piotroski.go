package calc

import "fmt"

// Piotroski is the 9-signal F-Score block. Score is nil only in the
// degraded-error document; on the success path it is always an integer in
// [0,9] even when every underlying comparison failed (an unknown signal
// scores 0, matching the comparison-with-unknown-is-false rule).
type Piotroski struct {
	Score   *float64       `json:"score"`
	Display string         `json:"fscore_display"`
	Signals map[string]int `json:"signals"`
}

// PiotroskiFScore evaluates the nine binary signals. Comparisons against an
// unknown operand are false, so a missing input simply fails its signal.
//
// F7 (no share dilution) compares shares outstanding against itself because
// only a single-point share count is available from the market snapshot; it
// therefore scores 1 whenever the count is known at all. Kept as a
// documented placeholder rather than silently redefined.
func PiotroskiFScore(in Inputs) Piotroski {
	roaT := SafeDiv(in.NetIncome, in.Assets)
	roaT1 := SafeDiv(in.NetIncomeT1, in.AssetsT1)

	signals := map[string]int{
		"F1": boolSignal(roaT > 0),
		"F2": boolSignal(in.CFO > 0),
		"F3": boolSignal(roaT > roaT1),
		"F4": boolSignal(in.CFO > in.NetIncome),
		"F5": boolSignal(SafeDiv(in.Liabilities, in.Assets) < SafeDiv(in.LiabilitiesT1, in.AssetsT1)),
		"F6": boolSignal(SafeDiv(in.CurrentAssets, in.CurrentLiabilities) > SafeDiv(in.CurrentAssetsT1, in.CurrentLiabilitiesT1)),
		"F7": boolSignal(in.Shares <= in.Shares),
		"F8": boolSignal(SafeDiv(in.GrossProfit, in.Revenue) > SafeDiv(in.GrossProfitT1, in.RevenueT1)),
		"F9": boolSignal(SafeDiv(in.Revenue, in.Assets) > SafeDiv(in.RevenueT1, in.AssetsT1)),
	}

	score := 0
	for _, v := range signals {
		score += v
	}
	s := float64(score)

	return Piotroski{
		Score:   &s,
		Display: fmt.Sprintf("%.2f/9", s),
		Signals: signals,
	}
}

func boolSignal(cond bool) int {
	if cond {
		return 1
	}
	return 0
}
