package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/tbekker/xscout/internal/adapters/dataset"
	"github.com/tbekker/xscout/internal/adapters/http/api"
	"github.com/tbekker/xscout/internal/adapters/http/docs"
	app "github.com/tbekker/xscout/internal/app"
	"github.com/tbekker/xscout/internal/config"
	"github.com/tbekker/xscout/internal/domain/scoring"
	"github.com/tbekker/xscout/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	loader, err := dataset.New(scoring.NewEngine(),
		dataset.WithPath(cfg.DatasetPath),
		dataset.WithURL(cfg.DatasetURL),
		dataset.WithTimeout(time.Duration(cfg.DatasetTimeoutMS)*time.Millisecond),
		dataset.WithMinMinutes(cfg.MinMinutes),
	)
	if err != nil {
		os.Stderr.WriteString("failed to configure dataset loader: " + err.Error() + "\n")
		return
	}

	svc := app.New(
		app.WithLogger(log),
		app.WithLoader(loader),
		app.WithScoreWorkers(cfg.ScoreWorkers),
	)
	// The dataset load is the session's single asynchronous boundary; a
	// failure here is fatal and never degraded into a partial pool.
	if err := svc.Start(ctx); err != nil {
		os.Stderr.WriteString("failed to start service: " + err.Error() + "\n")
		return
	}
	defer svc.Stop()

	// HTTP mux and routes.
	mux := http.NewServeMux()
	docs.Register(ctx, mux)
	apiServer := api.NewServer(svc, svc, api.Limits{
		MaxLeaderboard: cfg.MaxLeaderboardLimit,
		MaxSimilar:     cfg.MaxSimilarLimit,
	})
	apiServer.Register(ctx, mux)

	// The dashboard is served from its own origin.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	}).Handler(mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           corsHandler,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
		}
	}()

	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}
