package statements

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMapsSynonyms(t *testing.T) {
	raw := RawStatement{
		"Total Revenue": {"2023-12-31": 1000.0},
		"Net Earnings":  {"2023-12-31": 100.0},
		"EBIT":          {"2023-12-31": 250.0},
	}

	table, dropped := Normalize(raw)

	assert.Empty(t, dropped)
	assert.Equal(t, 1000.0, table.Value(TotalRevenue, "2023-12-31"))
	assert.Equal(t, 100.0, table.Value(NetIncome, "2023-12-31"))
	assert.Equal(t, 250.0, table.Value(OperatingIncome, "2023-12-31"))
}

func TestNormalizeUnknownLabelPassesThrough(t *testing.T) {
	raw := RawStatement{
		"Goodwill": {"2023-12-31": 42.0},
	}

	table, dropped := Normalize(raw)

	assert.Empty(t, dropped)
	assert.True(t, table.Has("Goodwill"))
	assert.Equal(t, 42.0, table.Value("Goodwill", "2023-12-31"))
}

func TestNormalizeFirstWinsDedup(t *testing.T) {
	// Both labels collapse onto TotalRevenue. Labels are processed in sorted
	// order, so "Net Sales" wins over "Total Revenue".
	raw := RawStatement{
		"Net Sales":     {"2023-12-31": 900.0},
		"Total Revenue": {"2023-12-31": 1000.0},
	}

	table, dropped := Normalize(raw)

	require.Len(t, dropped, 1)
	assert.Equal(t, "Total Revenue", dropped[0].Label)
	assert.Equal(t, TotalRevenue, dropped[0].Canonical)
	assert.Equal(t, 900.0, table.Value(TotalRevenue, "2023-12-31"))
}

func TestNormalizeDedupIsDeterministic(t *testing.T) {
	raw := RawStatement{
		"Revenue":       {"2023-12-31": 800.0},
		"Net Sales":     {"2023-12-31": 900.0},
		"Total Revenue": {"2023-12-31": 1000.0},
	}

	for i := 0; i < 20; i++ {
		table, dropped := Normalize(raw)
		require.Len(t, dropped, 2)
		assert.Equal(t, 900.0, table.Value(TotalRevenue, "2023-12-31"))
		assert.Equal(t, "Revenue", dropped[0].Label)
		assert.Equal(t, "Total Revenue", dropped[1].Label)
	}
}

func TestNormalizeCoercesValues(t *testing.T) {
	raw := RawStatement{
		"Total Revenue": {
			"2023-12-31": "1,234.5",
			"2022-12-31": nil,
			"2021-12-31": "n/a",
		},
	}

	table, _ := Normalize(raw)

	assert.Equal(t, 1234.5, table.Value(TotalRevenue, "2023-12-31"))
	assert.True(t, math.IsNaN(table.Value(TotalRevenue, "2022-12-31")))
	assert.True(t, math.IsNaN(table.Value(TotalRevenue, "2021-12-31")))
}

func TestNormalizeSetConcatenatesDrops(t *testing.T) {
	raw := RawStatementSet{
		Income: RawStatement{
			"Revenue":       {"2023-12-31": 1.0},
			"Total Revenue": {"2023-12-31": 2.0},
		},
		Balance: RawStatement{
			"Current Assets":       {"2023-12-31": 3.0},
			"Total Current Assets": {"2023-12-31": 4.0},
		},
		CashFlow: RawStatement{},
		Info:     NewInfo(),
	}

	set, dropped := NormalizeSet(raw)

	require.Len(t, dropped, 2)
	assert.Equal(t, "Total Revenue", dropped[0].Label)
	assert.Equal(t, "Total Current Assets", dropped[1].Label)
	assert.Equal(t, 1.0, set.Income.Value(TotalRevenue, "2023-12-31"))
	assert.Equal(t, 3.0, set.Balance.Value(TotalCurrentAssets, "2023-12-31"))
}

func TestCoerce(t *testing.T) {
	assert.Equal(t, 1.5, Coerce(1.5))
	assert.Equal(t, 2.0, Coerce(2))
	assert.Equal(t, 3.0, Coerce(int64(3)))
	assert.Equal(t, 4.5, Coerce(float32(4.5)))
	assert.Equal(t, 1234567.0, Coerce("1,234,567"))
	assert.Equal(t, -12.5, Coerce(" -12.5 "))
	assert.True(t, math.IsNaN(Coerce("")))
	assert.True(t, math.IsNaN(Coerce("abc")))
	assert.True(t, math.IsNaN(Coerce(nil)))
	assert.True(t, math.IsNaN(Coerce(true)))
}

func TestTableValueMissing(t *testing.T) {
	table := Table{TotalRevenue: {"2023-12-31": 1.0}}

	assert.True(t, math.IsNaN(table.Value(TotalRevenue, "2020-12-31")))
	assert.True(t, math.IsNaN(table.Value(NetIncome, "2023-12-31")))
	assert.False(t, table.Has(NetIncome))
}
