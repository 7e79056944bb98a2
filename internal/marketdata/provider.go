package marketdata

import (
	"context"
	"errors"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

// ErrSymbolNotFound is returned when the provider does not recognize a ticker.
// It is the only provider failure the service handles specially; everything
// else surfaces as a generic server error.
var ErrSymbolNotFound = errors.New("symbol not found")

// Provider defines the contract for market-data access.
//
// Abstracting the upstream behind this interface keeps the report computation
// testable against a stub without network access and allows swapping the
// data source without touching business logic.
type Provider interface {
	// GetQuote returns the current snapshot for a symbol. Implementations
	// return ErrSymbolNotFound (possibly wrapped) for unknown tickers.
	GetQuote(ctx context.Context, symbol string) (*models.Quote, error)

	// GetDailyCloses returns the ordered daily closing prices for a symbol
	// over the given lookback window, oldest first.
	GetDailyCloses(ctx context.Context, symbol string, window models.Window) ([]float64, error)
}
