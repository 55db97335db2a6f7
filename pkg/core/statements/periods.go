package statements

import (
	"errors"
	"fmt"
	"sort"
)

// DefaultCurrency is used when the provider info snapshot carries no
// currency code.
const DefaultCurrency = "USD"

// ErrInsufficientHistory indicates fewer than two fiscal periods are common
// to all three statements, so no year-over-year analysis is possible.
var ErrInsufficientHistory = errors.New("insufficient common fiscal periods")

// SelectPeriods intersects the period ids of the three canonical statements,
// sorts them descending (period ids are chronologically orderable strings
// such as "2023-12-31"), and returns the two most recent as (current, prior).
func SelectPeriods(set CanonicalSet) (PeriodPair, error) {
	common := intersect(set.Income.Periods(), set.Balance.Periods(), set.CashFlow.Periods())
	if len(common) < 2 {
		return PeriodPair{}, fmt.Errorf("%w: %d found", ErrInsufficientHistory, len(common))
	}
	sort.Sort(sort.Reverse(sort.StringSlice(common)))
	return PeriodPair{Current: common[0], Prior: common[1]}, nil
}

// Currency returns the info snapshot currency, or DefaultCurrency when
// absent.
func Currency(info Info) string {
	if info.Currency == "" {
		return DefaultCurrency
	}
	return info.Currency
}

func intersect(sets ...map[string]struct{}) []string {
	if len(sets) == 0 {
		return nil
	}
	var out []string
	for p := range sets[0] {
		inAll := true
		for _, s := range sets[1:] {
			if _, ok := s[p]; !ok {
				inAll = false
				break
			}
		}
		if inAll {
			out = append(out, p)
		}
	}
	return out
}
