package calc

import "strings"

// BeneishComponents holds the eight M-Score inputs. Each leaf is nil when
// the underlying fields were missing; individually computable components
// are still reported even when the composite is not.
type BeneishComponents struct {
	DSRI *float64 `json:"DSRI"`
	GMI  *float64 `json:"GMI"`
	AQI  *float64 `json:"AQI"`
	SGI  *float64 `json:"SGI"`
	DEPI *float64 `json:"DEPI"`
	SGAI *float64 `json:"SGAI"`
	LVGI *float64 `json:"LVGI"`
	TATA *float64 `json:"TATA"`
}

// Beneish is the earnings-manipulation block. The composite M is
// all-or-nothing: if any component is unknown, M is nil and Reason names
// every missing component.
type Beneish struct {
	M          *float64          `json:"m"`
	Reason     string            `json:"reason,omitempty"`
	Components BeneishComponents `json:"components"`
}

// beneishOrder fixes the reporting order of components in Reason strings.
var beneishOrder = []string{"DSRI", "GMI", "AQI", "SGI", "DEPI", "SGAI", "LVGI", "TATA"}

// BeneishMScore computes the eight component indexes and, when all eight are
// known, the composite
//
//	M = -4.84 + 0.92 DSRI + 0.528 GMI + 0.404 AQI + 0.892 SGI
//	    + 0.115 DEPI - 0.172 SGAI + 4.679 TATA - 0.327 LVGI
func BeneishMScore(in Inputs) Beneish {
	dsri := SafeDiv(SafeDiv(in.Receivables, in.Revenue), SafeDiv(in.ReceivablesT1, in.RevenueT1))
	gmi := SafeDiv(SafeDiv(in.GrossProfitT1, in.RevenueT1), SafeDiv(in.GrossProfit, in.Revenue))
	aqi := SafeDiv(
		1-SafeDiv(in.CurrentAssets+in.NetPPE, in.Assets),
		1-SafeDiv(in.CurrentAssetsT1+in.NetPPET1, in.AssetsT1),
	)
	sgi := SafeDiv(in.Revenue, in.RevenueT1)
	depi := SafeDiv(
		SafeDiv(in.DepreciationT1, in.DepreciationT1+in.NetPPET1),
		SafeDiv(in.Depreciation, in.Depreciation+in.NetPPE),
	)
	sgai := SafeDiv(SafeDiv(in.SGA, in.Revenue), SafeDiv(in.SGAT1, in.RevenueT1))
	lvgi := SafeDiv(SafeDiv(in.Liabilities, in.Assets), SafeDiv(in.LiabilitiesT1, in.AssetsT1))
	tata := SafeDiv(in.OperatingIncome-in.CFO, in.Assets)

	components := map[string]float64{
		"DSRI": dsri, "GMI": gmi, "AQI": aqi, "SGI": sgi,
		"DEPI": depi, "SGAI": sgai, "LVGI": lvgi, "TATA": tata,
	}

	var missing []string
	for _, name := range beneishOrder {
		if !Known(components[name]) {
			missing = append(missing, name)
		}
	}

	result := Beneish{
		Components: BeneishComponents{
			DSRI: RoundPtr(dsri),
			GMI:  RoundPtr(gmi),
			AQI:  RoundPtr(aqi),
			SGI:  RoundPtr(sgi),
			DEPI: RoundPtr(depi),
			SGAI: RoundPtr(sgai),
			LVGI: RoundPtr(lvgi),
			TATA: RoundPtr(tata),
		},
	}

	if len(missing) > 0 {
		result.Reason = "insufficient_fields: " + strings.Join(missing, ", ")
		return result
	}

	m := -4.84 +
		0.92*dsri +
		0.528*gmi +
		0.404*aqi +
		0.892*sgi +
		0.115*depi -
		0.172*sgai +
		4.679*tata -
		0.327*lvgi
	result.M = RoundPtr(m)
	return result
}
