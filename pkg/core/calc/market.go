package calc

import "math"

// PriceBased holds the market-multiple ratios.
type PriceBased struct {
	PE  *float64 `json:"pe"`
	PB  *float64 `json:"pb"`
	PS  *float64 `json:"ps"`
	PEG *float64 `json:"peg"`
}

// Dividends holds the dividend sustainability ratios.
type Dividends struct {
	Yield    *float64 `json:"dividend_yield"`
	Payout   *float64 `json:"dividend_payout_ratio"`
	Coverage *float64 `json:"dividend_coverage_ratio"`
}

// perShare divides a statement total by the share count, requiring a
// strictly positive count.
func perShare(total, shares float64) float64 {
	if !Known(shares) || shares <= 0 {
		return math.NaN()
	}
	return SafeDiv(total, shares)
}

// PriceMultiples computes P/E, P/B, P/S and PEG from the current price and
// per-share fundamentals. Book value per share falls back to the provider's
// reported figure when the share count is unavailable. PEG uses one-year
// EPS growth expressed in percent and requires positive growth.
func PriceMultiples(in Inputs) PriceBased {
	eps := perShare(in.NetIncome, in.Shares)
	epsT1 := perShare(in.NetIncomeT1, in.Shares)
	bps := perShare(in.Equity, in.Shares)
	if !Known(in.Shares) || in.Shares <= 0 {
		bps = in.BookValue
	}
	sps := perShare(in.Revenue, in.Shares)

	growthEPS := math.NaN()
	if Known(epsT1) && epsT1 > 0 {
		growthEPS = SafeDiv(eps-epsT1, epsT1)
	}

	pe := SafeDiv(in.Price, eps)
	pb := SafeDiv(in.Price, bps)
	ps := SafeDiv(in.Price, sps)

	peg := math.NaN()
	if Known(pe) && Known(growthEPS) && growthEPS > 0 {
		peg = SafeDiv(pe, 100*growthEPS)
	}

	return PriceBased{
		PE:  RoundPtr(pe),
		PB:  RoundPtr(pb),
		PS:  RoundPtr(ps),
		PEG: RoundPtr(peg),
	}
}

// DividendMetrics computes yield, payout and coverage. Dividends per share
// come from the provider's stated rate when present; otherwise they are
// derived from cash dividends paid, which statements report as an outflow.
func DividendMetrics(in Inputs) Dividends {
	eps := perShare(in.NetIncome, in.Shares)

	divPS := in.DividendRate
	if !Known(divPS) {
		divPS = perShare(-in.DividendsPaid, in.Shares)
	}

	yield := SafeDiv(divPS, in.Price)

	payout := math.NaN()
	if Known(eps) && eps > 0 {
		payout = SafeDiv(divPS, eps)
	}

	coverage := math.NaN()
	if Known(divPS) && divPS > 0 {
		coverage = SafeDiv(eps, divPS)
	}

	return Dividends{
		Yield:    RoundPtr(yield),
		Payout:   RoundPtr(payout),
		Coverage: RoundPtr(coverage),
	}
}
