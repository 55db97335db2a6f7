package calc

import "math"

// Ratios holds the core liquidity, leverage and profitability ratios.
// Leaves are nil when an input was missing.
type Ratios struct {
	Current      *float64 `json:"current"`
	Quick        *float64 `json:"quick"`
	DebtToEquity *float64 `json:"debt_to_equity"`
	ROE          *float64 `json:"roe"`
	ROA          *float64 `json:"roa"`
	ROEAdjusted  *float64 `json:"roe_adjusted"`
}

// DuPontThreeStep decomposes ROE into margin x turnover x leverage.
type DuPontThreeStep struct {
	NPM              *float64 `json:"npm"`
	AssetTurnover    *float64 `json:"asset_turnover"`
	EquityMultiplier *float64 `json:"equity_multiplier"`
	ROE              *float64 `json:"roe"`
}

// DuPontFiveStep adds the tax and interest burden factors.
type DuPontFiveStep struct {
	TaxBurden        *float64 `json:"tax_burden"`
	InterestBurden   *float64 `json:"interest_burden"`
	OperatingMargin  *float64 `json:"operating_margin"`
	AssetTurnover    *float64 `json:"asset_turnover"`
	EquityMultiplier *float64 `json:"equity_multiplier"`
	ROE              *float64 `json:"roe"`
}

// DuPont bundles both decompositions.
type DuPont struct {
	ThreeStep DuPontThreeStep `json:"roe_3step"`
	FiveStep  DuPontFiveStep  `json:"roe_5step"`
}

// CoreRatios computes the liquidity/leverage/profitability block. ROE and
// ROA use averaged equity and assets over the two periods.
func CoreRatios(in Inputs) Ratios {
	avgAssets := Average(in.Assets, in.AssetsT1)
	avgEquity := Average(in.Equity, in.EquityT1)

	roe3 := roeThreeStepComposite(in, avgAssets)

	return Ratios{
		Current:      RoundPtr(SafeDiv(in.CurrentAssets, in.CurrentLiabilities)),
		Quick:        RoundPtr(SafeDiv(in.CurrentAssets-in.Inventory, in.CurrentLiabilities)),
		DebtToEquity: RoundPtr(SafeDiv(in.Liabilities, in.Equity)),
		ROE:          RoundPtr(SafeDiv(in.NetIncome, avgEquity)),
		ROA:          RoundPtr(SafeDiv(in.NetIncome, avgAssets)),
		ROEAdjusted:  RoundPtr(roe3),
	}
}

// DuPontAnalysis computes the 3-step and 5-step decompositions. Factor
// products propagate unknowns: NaN times anything stays NaN.
func DuPontAnalysis(in Inputs) DuPont {
	avgAssets := Average(in.Assets, in.AssetsT1)

	npm := SafeDiv(in.NetIncome, in.Revenue)
	assetTurnover := SafeDiv(in.Revenue, avgAssets)
	equityMultiplier := SafeDiv(in.Assets, in.Equity)
	roe3 := npm * assetTurnover * equityMultiplier

	taxBurden := SafeDiv(in.NetIncome, in.PretaxIncome)
	interestBurden := SafeDiv(in.PretaxIncome, in.OperatingIncome)
	operatingMargin := SafeDiv(in.OperatingIncome, in.Revenue)
	roe5 := taxBurden * interestBurden * operatingMargin * assetTurnover * equityMultiplier

	return DuPont{
		ThreeStep: DuPontThreeStep{
			NPM:              RoundPtr(npm),
			AssetTurnover:    RoundPtr(assetTurnover),
			EquityMultiplier: RoundPtr(equityMultiplier),
			ROE:              RoundPtr(roe3),
		},
		FiveStep: DuPontFiveStep{
			TaxBurden:        RoundPtr(taxBurden),
			InterestBurden:   RoundPtr(interestBurden),
			OperatingMargin:  RoundPtr(operatingMargin),
			AssetTurnover:    RoundPtr(assetTurnover),
			EquityMultiplier: RoundPtr(equityMultiplier),
			ROE:              RoundPtr(roe5),
		},
	}
}

func roeThreeStepComposite(in Inputs, avgAssets float64) float64 {
	npm := SafeDiv(in.NetIncome, in.Revenue)
	turnover := SafeDiv(in.Revenue, avgAssets)
	multiplier := SafeDiv(in.Assets, in.Equity)
	v := npm * turnover * multiplier
	if !Known(v) {
		return math.NaN()
	}
	return v
}
