package calc

import (
	"math"
	"testing"

	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/statements"
)

func commonSizeSet() statements.CanonicalSet {
	period := "2024-09-30"
	row := func(v float64) map[string]float64 { return map[string]float64{period: v} }
	return statements.CanonicalSet{
		Income: statements.Table{
			statements.TotalRevenue:  row(1000),
			statements.CostOfRevenue: row(600),
			statements.GrossProfit:   row(400),
			statements.NetIncome:     row(100),
		},
		Balance: statements.Table{
			statements.TotalAssets:            row(1500),
			statements.TotalCurrentAssets:     row(500),
			statements.TotalLiabilities:       row(500),
			statements.TotalStockholderEquity: row(1000),
		},
	}
}

func TestCommonSizeView(t *testing.T) {
	cs := CommonSizeView(commonSizeSet(), "2024-09-30")

	if cs.Period != "2024-09-30" {
		t.Errorf("period = %q", cs.Period)
	}
	checks := []struct {
		section map[string]*float64
		field   string
		want    float64
	}{
		{cs.Income, statements.TotalRevenue, 1.0},
		{cs.Income, statements.CostOfRevenue, 0.6},
		{cs.Income, statements.GrossProfit, 0.4},
		{cs.Income, statements.NetIncome, 0.1},
		{cs.Balance, statements.TotalCurrentAssets, 0.3333},
		{cs.Balance, statements.TotalLiabilities, 0.3333},
		{cs.Balance, statements.TotalStockholderEquity, 0.6667},
	}
	for _, c := range checks {
		got, ok := c.section[c.field]
		if !ok || got == nil {
			t.Errorf("%s missing", c.field)
			continue
		}
		if *got != c.want {
			t.Errorf("%s = %v, want %v", c.field, *got, c.want)
		}
	}
}

func TestCommonSizeViewSkipsAbsentFields(t *testing.T) {
	cs := CommonSizeView(commonSizeSet(), "2024-09-30")

	if _, ok := cs.Income[statements.SellingGeneralAdministrative]; ok {
		t.Error("absent field should not appear in view")
	}
}

func TestCommonSizeViewUnknownBase(t *testing.T) {
	set := commonSizeSet()
	delete(set.Balance, statements.TotalAssets)

	cs := CommonSizeView(set, "2024-09-30")
	if v := cs.Balance[statements.TotalLiabilities]; v != nil {
		t.Errorf("liabilities share = %v, want nil without an asset base", *v)
	}
}

func TestStatementValues(t *testing.T) {
	set := commonSizeSet()
	set.Income[statements.OperatingIncome] = map[string]float64{"2024-09-30": math.NaN()}

	values := StatementValues(set)
	if len(values) != 8 {
		t.Errorf("len(values) = %d, want 8", len(values))
	}
	for _, v := range values {
		if !Known(v) {
			t.Errorf("unknown value leaked: %v", v)
		}
	}
}
