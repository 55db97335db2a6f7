package statements

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureBody = `{
  // hand-written statement fixture
  ticker: TEST
  income: {
    "Total Revenue": { "2023-12-31": 1000, "2022-12-31": 900 }
    "Net Income": { "2023-12-31": 100, "2022-12-31": 80 }
  }
  balance: {
    "Total Assets": { "2023-12-31": 1500, "2022-12-31": 1400 }
  }
  cashflow: {
    "Operating Cash Flow": { "2023-12-31": "120" }
  }
  info: {
    currency: USD
    companyName: Test Corp
    price: 42.5
    sharesOutstanding: 50
  }
}`

func writeFixture(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.hjson")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFixture(t *testing.T) {
	fx, err := LoadFixture(writeFixture(t, fixtureBody))
	require.NoError(t, err)

	assert.Equal(t, "TEST", fx.Ticker)
	assert.Equal(t, float64(1000), Coerce(fx.Set.Income["Total Revenue"]["2023-12-31"]))
	assert.Equal(t, float64(1500), Coerce(fx.Set.Balance["Total Assets"]["2023-12-31"]))
	assert.Equal(t, float64(120), Coerce(fx.Set.CashFlow["Operating Cash Flow"]["2023-12-31"]))

	assert.Equal(t, "USD", fx.Set.Info.Currency)
	assert.Equal(t, "Test Corp", fx.Set.Info.CompanyName)
	assert.Equal(t, 42.5, fx.Set.Info.Price)
	assert.Equal(t, 50.0, fx.Set.Info.SharesOutstanding)
	assert.True(t, math.IsNaN(fx.Set.Info.Beta))
}

func TestLoadFixtureNormalizes(t *testing.T) {
	fx, err := LoadFixture(writeFixture(t, fixtureBody))
	require.NoError(t, err)

	set, dropped := NormalizeSet(fx.Set)
	assert.Empty(t, dropped)
	assert.Equal(t, 1000.0, set.Income.Value(TotalRevenue, "2023-12-31"))
	assert.Equal(t, 120.0, set.CashFlow.Value(TotalCashFromOperatingActivities, "2023-12-31"))
}

func TestLoadFixturePlainJSON(t *testing.T) {
	body := `{"ticker":"JSON","income":{"Total Revenue":{"2023-12-31":5}},"balance":{},"cashflow":{},"info":{"currency":"EUR"}}`
	fx, err := LoadFixture(writeFixture(t, body))
	require.NoError(t, err)

	assert.Equal(t, "JSON", fx.Ticker)
	assert.Equal(t, "EUR", fx.Set.Info.Currency)
	assert.Equal(t, float64(5), Coerce(fx.Set.Income["Total Revenue"]["2023-12-31"]))
}

func TestLoadFixtureMissingFile(t *testing.T) {
	_, err := LoadFixture(filepath.Join(t.TempDir(), "nope.hjson"))
	assert.Error(t, err)
}

func TestLoadFixtureBadSyntax(t *testing.T) {
	_, err := LoadFixture(writeFixture(t, "{ income: ["))
	assert.Error(t, err)
}
