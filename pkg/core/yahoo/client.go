// Package yahoo implements the statement and time-series providers on top
// of the public Yahoo Finance endpoints (quoteSummary and chart). Responses
// are reshaped into the raw statement vocabulary the normalizer expects;
// no financial interpretation happens here.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	quoteSummaryURL = "https://query1.finance.yahoo.com/v10/finance/quoteSummary/%s"
	chartURL        = "https://query1.finance.yahoo.com/v8/finance/chart/%s"

	// Yahoo rejects requests without a browser-looking agent.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	requestTimeout = 10 * time.Second
)

// Client talks to Yahoo Finance. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseQuote  string
	baseChart  string
	log        zerolog.Logger
}

func NewClient(log zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseQuote:  quoteSummaryURL,
		baseChart:  chartURL,
		log:        log,
	}
}

// NewClientWithBase overrides the endpoint bases, used by tests to point at
// a local server. Both bases must contain one %s verb for the symbol.
func NewClientWithBase(log zerolog.Logger, quoteBase, chartBase string) *Client {
	c := NewClient(log)
	c.baseQuote = quoteBase
	c.baseChart = chartBase
	return c
}

// Options are the configurable knobs of the client. Zero values keep the
// built-in Yahoo endpoints and the default timeout.
type Options struct {
	QuoteBase string
	ChartBase string
	Timeout   time.Duration
}

func NewClientWithOptions(log zerolog.Logger, opts Options) *Client {
	c := NewClient(log)
	if opts.QuoteBase != "" {
		c.baseQuote = opts.QuoteBase
	}
	if opts.ChartBase != "" {
		c.baseChart = opts.ChartBase
	}
	if opts.Timeout > 0 {
		c.httpClient.Timeout = opts.Timeout
	}
	return c
}

// getJSON performs a GET with browser headers and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("yahoo returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w", err)
	}
	return nil
}
