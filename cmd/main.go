package main

//
//  @title           stockpulse API
//  @version         1.0
//  @description     Stock quote & percent-change proxy service.
//  @termsOfService  https://github.com/guttosm/stockpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/stockpulse
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            127.0.0.1:9820
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        stocks
//  @tag.description Endpoints for querying stock price and percent changes
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/stockpulse/config"
	_ "github.com/guttosm/stockpulse/docs" // swagger docs
	"github.com/guttosm/stockpulse/internal/app"
	"github.com/guttosm/stockpulse/internal/logger"
	"github.com/guttosm/stockpulse/internal/logo"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - addr (string): The host:port pair the server will listen on.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, addr string) *http.Server {
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("addr", addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., upstream connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the stockpulse application.
//
// Modes (selected via --mode flag):
//   - api:  Starts the REST API that reports stock price and percent changes.
//   - logo: One-shot fetch of a team logo, resized and written as a .ppm file.
//
// Flags:
//   - --mode:     Execution mode ("api" or "logo"). Default: "api".
//   - --host:     Bind host for API mode. Defaults to value from config (SERVER_HOST).
//   - --port:     Port for API mode. Defaults to value from config (SERVER_PORT).
//   - --division: Team division for logo mode (ncaa, nfl, nba, ...).
//   - --team:     Team identifier for logo mode (as used by the CDN).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or logo")
	host := flag.String("host", config.AppConfig.Server.Host, "Bind host for API mode")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	division := flag.String("division", "", "Team division for logo mode (ncaa, nfl, nba, ...)")
	team := flag.String("team", "", "Team identifier for logo mode")
	flag.Parse()

	switch *mode {
	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *host+":"+*port)
		gracefulShutdown(ctx, server, cleanup)

	case "logo":
		// Logo mode: fetch, resize, and write a single team logo
		if *division == "" || *team == "" {
			logger.L().Fatal().Msg("logo mode requires --division and --team")
		}

		cfg := config.AppConfig.Logo
		fetcher := logo.NewFetcher(cfg.BaseURL, cfg.Size, cfg.OutputDir)

		path, err := fetcher.Fetch(ctx, *division, *team)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("logo fetch failed")
		}
		logger.L().Info().Str("path", path).Msg("logo fetch completed")

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
