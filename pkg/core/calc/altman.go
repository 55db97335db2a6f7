package calc

// AltmanComponents carries the five Z-Score ratios:
// A working capital / assets, B retained earnings / assets,
// C EBIT / assets, D equity / liabilities, E revenue / assets.
type AltmanComponents struct {
	A *float64 `json:"a"`
	B *float64 `json:"b"`
	C *float64 `json:"c"`
	D *float64 `json:"d"`
	E *float64 `json:"e"`
}

// Altman is the bankruptcy-risk block. ZPrime is reserved for the private
// company variant and is always null for now.
type Altman struct {
	Z          *float64         `json:"z"`
	ZPrime     *float64         `json:"z_prime"`
	Reason     string           `json:"reason,omitempty"`
	Components AltmanComponents `json:"components"`
}

// AltmanZScore computes Z = 1.2A + 1.4B + 3.3C + 0.6D + 1.0E.
// D uses book equity as a proxy for market value of equity, and C uses
// operating income in place of EBIT. The composite requires every
// component to be known.
func AltmanZScore(in Inputs) Altman {
	workingCapital := in.CurrentAssets - in.CurrentLiabilities

	a := SafeDiv(workingCapital, in.Assets)
	b := SafeDiv(in.RetainedEarnings, in.Assets)
	c := SafeDiv(in.OperatingIncome, in.Assets)
	d := SafeDiv(in.Equity, in.Liabilities)
	e := SafeDiv(in.Revenue, in.Assets)

	result := Altman{
		Components: AltmanComponents{
			A: RoundPtr(a),
			B: RoundPtr(b),
			C: RoundPtr(c),
			D: RoundPtr(d),
			E: RoundPtr(e),
		},
	}

	for _, comp := range []float64{a, b, c, d, e} {
		if !Known(comp) {
			result.Reason = "insufficient_fields: missing working capital, retained earnings, EBIT, equity, or revenue data"
			return result
		}
	}

	z := 1.2*a + 1.4*b + 3.3*c + 0.6*d + 1.0*e
	result.Z = RoundPtr(z)
	return result
}
