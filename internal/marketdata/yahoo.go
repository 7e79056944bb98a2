package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/guttosm/stockpulse/internal/domain/models"
	"github.com/guttosm/stockpulse/internal/logger"
)

// chartResponse mirrors the Yahoo Finance v8 chart API payload. Only the
// fields the service reads are declared.
type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *chartError   `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Meta struct {
		Symbol             string   `json:"symbol"`
		RegularMarketPrice *float64 `json:"regularMarketPrice"`
		PreviousClose      float64  `json:"previousClose"`
		ChartPreviousClose float64  `json:"chartPreviousClose"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Close []*float64 `json:"close"`
		} `json:"quote"`
	} `json:"indicators"`
}

type chartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// YahooProvider implements Provider against the Yahoo Finance v8 chart API.
//
// Both operations hit the same endpoint:
//
//	GET {baseURL}/v8/finance/chart/{symbol}?range={window}&interval=1d
//
// The current snapshot comes from the meta block of a 1d request; historical
// closes come from indicators.quote[0].close of the window request.
type YahooProvider struct {
	baseURL string
	client  *http.Client
}

// NewYahooProvider builds a provider for the given API root (no trailing
// slash) with a per-call timeout. The base URL is configurable so tests can
// point at a local httptest server.
func NewYahooProvider(baseURL string, timeout time.Duration) *YahooProvider {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: 3 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 10,
		ForceAttemptHTTP2:   true,
		IdleConnTimeout:     90 * time.Second,
	}
	return &YahooProvider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout, Transport: transport},
	}
}

// GetQuote fetches the current snapshot for a symbol.
//
// Returns:
//   - ErrSymbolNotFound (wrapped) when the upstream answers 404 or flags the
//     symbol in chart.error.
//   - any transport/decode failure verbatim; callers treat those as faults.
func (p *YahooProvider) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	res, err := p.fetchChart(ctx, symbol, "1d")
	if err != nil {
		return nil, err
	}

	q := &models.Quote{
		Symbol:             res.Meta.Symbol,
		RegularMarketPrice: res.Meta.RegularMarketPrice,
		PreviousClose:      res.Meta.PreviousClose,
	}
	// Some chart payloads only carry chartPreviousClose.
	if q.PreviousClose == 0 {
		q.PreviousClose = res.Meta.ChartPreviousClose
	}
	return q, nil
}

// GetDailyCloses fetches the ordered daily closing prices for a window.
// Null entries (non-trading gaps in the upstream series) are dropped.
func (p *YahooProvider) GetDailyCloses(ctx context.Context, symbol string, window models.Window) ([]float64, error) {
	res, err := p.fetchChart(ctx, symbol, string(window))
	if err != nil {
		return nil, err
	}

	if len(res.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("chart for %s/%s has no quote indicators", symbol, window)
	}

	raw := res.Indicators.Quote[0].Close
	closes := make([]float64, 0, len(raw))
	for _, c := range raw {
		if c != nil {
			closes = append(closes, *c)
		}
	}
	return closes, nil
}

// Ping checks that the upstream host answers HTTP at all. Used by the
// readiness probe; any response, regardless of status, counts as reachable.
func (p *YahooProvider) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.baseURL, nil)
	if err != nil {
		return err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

// CloseIdleConnections releases pooled upstream connections. Used as the
// application cleanup hook on shutdown.
func (p *YahooProvider) CloseIdleConnections() {
	p.client.CloseIdleConnections()
}

// fetchChart performs one chart API call and unwraps the single result.
func (p *YahooProvider) fetchChart(ctx context.Context, symbol, rng string) (*chartResult, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=1d",
		p.baseURL, url.PathEscape(symbol), url.QueryEscape(rng))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build chart request: %w", err)
	}
	req.Header.Set("User-Agent", "stockpulse/1.0")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chart request for %s: %w", symbol, err)
	}
	defer func() { _ = resp.Body.Close() }()

	log := logger.Component("marketdata")
	log.Debug().
		Str("symbol", symbol).
		Str("range", rng).
		Int("status", resp.StatusCode).
		Msg("chart fetched")

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("chart for %q: %w", symbol, ErrSymbolNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chart request for %s: unexpected status %d", symbol, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read chart response: %w", err)
	}

	var out chartResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode chart response: %w", err)
	}

	if out.Chart.Error != nil {
		return nil, fmt.Errorf("chart for %q: %s: %w", symbol, out.Chart.Error.Code, ErrSymbolNotFound)
	}
	if len(out.Chart.Result) == 0 {
		return nil, fmt.Errorf("chart for %q: empty result: %w", symbol, ErrSymbolNotFound)
	}

	return &out.Chart.Result[0], nil
}
