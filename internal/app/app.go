package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockpulse/config"
	"github.com/guttosm/stockpulse/internal/api"
	"github.com/guttosm/stockpulse/internal/marketdata"
	"github.com/guttosm/stockpulse/internal/service"
)

// providerCtor is an indirection for creating the market-data provider;
// tests can override it to avoid real upstream endpoints.
var providerCtor = func(cfg config.Config) *marketdata.YahooProvider {
	return marketdata.NewYahooProvider(
		cfg.Market.BaseURL,
		time.Duration(cfg.Market.TimeoutSeconds)*time.Second,
	)
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the market-data provider from configuration.
//   - Initializes the service layer (report computation).
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to release pooled upstream connections.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Market-data provider (indirection for unit testing)
	provider := providerCtor(cfg)

	// Initialize service layer (business logic)
	svc := service.NewReportService(provider)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(provider.Ping)
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		provider.CloseIdleConnections()
	}

	return router, cleanup, nil
}
