// Package metrics runs the per-ticker computation pipeline: normalize the
// provider statements, select the two most recent common fiscal periods,
// evaluate the formula library and assemble the output document.
package metrics

import (
	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/calc"
	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/validate"
)

// Document is the complete per-ticker result. It comes in exactly two
// shapes: a success document with every section populated (individual
// leaves may still be null), or a degraded document with Error set, empty
// sections and a single explanatory note. There is no partial third state.
type Document struct {
	Ticker     string                          `json:"ticker"`
	Error      string                          `json:"error,omitempty"`
	Currency   string                          `json:"currency"`
	Years      []string                        `json:"years"`
	Validation map[string]validate.PeriodCheck `json:"validation"`
	Ratios     calc.Ratios                     `json:"ratios"`
	DuPont     calc.DuPont                     `json:"dupont"`
	Piotroski  calc.Piotroski                  `json:"piotroski"`
	Beneish    calc.Beneish                    `json:"beneish"`
	Altman     calc.Altman                     `json:"altman"`
	PriceBased calc.PriceBased                 `json:"price_based"`
	Dividends  calc.Dividends                  `json:"dividends"`
	Alpha      *float64                        `json:"alpha"`
	Notes      []string                        `json:"notes"`
}

// Degraded builds the fail-soft variant for a terminal fault. The caller
// always receives a well-formed document; the fault message is preserved
// verbatim in Error and echoed as the single note.
func Degraded(ticker, msg string) Document {
	reason := "computation_error: " + msg
	return Document{
		Ticker:     ticker,
		Error:      msg,
		Currency:   "Unknown",
		Years:      []string{},
		Validation: map[string]validate.PeriodCheck{},
		Piotroski: calc.Piotroski{
			Display: "N/A",
			Signals: map[string]int{},
		},
		Beneish: calc.Beneish{Reason: reason},
		Altman:  calc.Altman{Reason: reason},
		Notes:   []string{"Error: " + msg},
	}
}
