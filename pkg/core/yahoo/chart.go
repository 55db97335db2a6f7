package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/calc"
)

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"chart"`
}

// MonthlyCloses implements metrics.SeriesProvider using the chart endpoint
// with a 1mo granularity over the trailing window.
func (c *Client) MonthlyCloses(ctx context.Context, symbol string, years int) ([]calc.PricePoint, error) {
	u := fmt.Sprintf(c.baseChart, url.PathEscape(symbol)) + fmt.Sprintf("?range=%dy&interval=1mo", years)

	var resp chartResponse
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return nil, err
	}
	if len(resp.Chart.Result) == 0 {
		return nil, fmt.Errorf("no chart data for %s", symbol)
	}
	r := resp.Chart.Result[0]
	if len(r.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no quote series for %s", symbol)
	}

	closes := r.Indicators.Quote[0].Close
	points := make([]calc.PricePoint, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		points = append(points, calc.PricePoint{
			Date:  time.Unix(ts, 0).UTC(),
			Close: *closes[i],
		})
	}
	return points, nil
}
