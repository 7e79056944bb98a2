package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/guttosm/stockpulse/internal/domain/models"
	"github.com/guttosm/stockpulse/internal/marketdata"
)

// ErrInvalidTicker is returned when the provider has no usable current price
// for the requested symbol. Handlers map it to a 400 response.
var ErrInvalidTicker = errors.New("invalid ticker")

// ReportService defines business logic for building stock reports.
// This decouples HTTP handlers from provider access.
type ReportService interface {
	GetStockReport(ctx context.Context, ticker string) (*models.StockReport, error)
}

type reportService struct {
	provider marketdata.Provider
}

func NewReportService(provider marketdata.Provider) ReportService {
	return &reportService{provider: provider}
}

// GetStockReport fetches the current quote and the three historical windows
// for a ticker and computes the percent changes.
//
// Behavior:
//   - An unknown ticker, or a quote without a current price, short-circuits
//     with ErrInvalidTicker before any historical fetch.
//   - The three windows are fetched sequentially; the first failure aborts
//     the whole report. No retries, no partial results.
//   - A previous close or window start price of exactly zero, and an empty
//     close series, are provider faults and abort the report.
func (s *reportService) GetStockReport(ctx context.Context, ticker string) (*models.StockReport, error) {
	quote, err := s.provider.GetQuote(ctx, ticker)
	if err != nil {
		if errors.Is(err, marketdata.ErrSymbolNotFound) {
			return nil, ErrInvalidTicker
		}
		return nil, fmt.Errorf("fetch quote for %s: %w", ticker, err)
	}
	if !quote.HasPrice() {
		return nil, ErrInvalidTicker
	}

	price := *quote.RegularMarketPrice
	if quote.PreviousClose == 0 {
		return nil, fmt.Errorf("quote for %s has zero previous close", ticker)
	}

	report := &models.StockReport{
		Stock:   ticker,
		Price:   round2(price),
		Percent: percentChange(quote.PreviousClose, price),
	}

	for _, w := range models.Windows {
		closes, err := s.provider.GetDailyCloses(ctx, ticker, w)
		if err != nil {
			return nil, fmt.Errorf("fetch %s closes for %s: %w", w, ticker, err)
		}
		if len(closes) == 0 {
			return nil, fmt.Errorf("empty %s close series for %s", w, ticker)
		}

		start, end := closes[0], closes[len(closes)-1]
		if start == 0 {
			return nil, fmt.Errorf("zero start price in %s series for %s", w, ticker)
		}
		report.SetWindowPercent(w, percentChange(start, end))
	}

	return report, nil
}

// percentChange returns the percent move from a base price to a final price,
// rounded to two decimal places.
func percentChange(base, final float64) float64 {
	return round2((final - base) / base * 100)
}

// round2 rounds to two decimal places, halves away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
