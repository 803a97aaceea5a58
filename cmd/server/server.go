// cmd/server/server.go
package main

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/codr1/personafolio/assets"
	"github.com/codr1/personafolio/internal/api"
	"github.com/codr1/personafolio/internal/api/personas"
	"github.com/codr1/personafolio/internal/config"
	"github.com/codr1/personafolio/internal/models"
	"github.com/codr1/personafolio/internal/portfolio"
	"github.com/codr1/personafolio/internal/ratelimit"
	"github.com/codr1/personafolio/internal/scheduler"
	"github.com/codr1/personafolio/internal/theme"
)

const watchdogJobName = "stalled-generation-watchdog"

type app struct {
	server    *http.Server
	scheduler *scheduler.Service
	limiter   *ratelimit.Limiter
}

// newApp wires the persona engine, the page controller and the HTTP server.
// Generations started over HTTP run under ctx, not the request context.
func newApp(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*app, error) {
	catalog, err := models.DefaultCatalog()
	if err != nil {
		return nil, fmt.Errorf("load persona catalog: %w", err)
	}

	engine := theme.NewEngine(catalog, logger)
	document := portfolio.NewMemoryDocument()
	controller := portfolio.NewController(engine, document, &portfolio.Config{
		MinDelay: cfg.Generation.MinDelay.Std(),
		MaxDelay: cfg.Generation.MaxDelay.Std(),
	}, logger)

	controller.Subscribe(func(change portfolio.PhaseChange) {
		event := logger.Debug()
		if change.Err != nil {
			event = logger.Warn().Err(change.Err)
		}
		event.Str("from", string(change.From)).
			Str("to", string(change.To)).
			Str("persona", string(change.Persona)).
			Msg("Portfolio phase changed")
	})

	a := &app{}

	if cfg.Watchdog.Enabled {
		a.scheduler, err = scheduler.New(logger)
		if err != nil {
			return nil, fmt.Errorf("init scheduler: %w", err)
		}
		timeout := cfg.Watchdog.Timeout.Std()
		if _, err := a.scheduler.AddIntervalJob(watchdogJobName, cfg.Watchdog.Interval.Std(), func() {
			if controller.ExpireStalled(timeout) {
				logger.Warn().Dur("timeout", timeout).Msg("Expired stalled generation")
			}
		}); err != nil {
			_ = a.scheduler.Stop()
			return nil, fmt.Errorf("register watchdog: %w", err)
		}
		a.scheduler.Start()
	}

	handlers := personas.New(ctx, catalog, engine, controller, document)
	if cfg.RateLimit.Enabled {
		a.limiter = ratelimit.New(&ratelimit.Config{
			SelectCooldown:   cfg.RateLimit.SelectCooldown.Std(),
			SelectMaxPerHour: cfg.RateLimit.SelectMaxPerHour,
		})
		handlers.WithSelectLimiter(a.limiter, cfg.RateLimit.TrustProxy)
	}

	router := http.NewServeMux()

	// Setup middleware chain
	handler := api.ChainMiddleware(
		router,
		api.WithLogging,
		api.WithRecovery,
		api.WithRequestID,
		api.WithContentType,
	)

	// Register routes
	registerRoutes(router, handlers, cfg.App.StaticDir)

	a.server = &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return a, nil
}

func (a *app) close() {
	if a.scheduler != nil {
		if err := a.scheduler.Stop(); err != nil {
			log.Error().Err(err).Msg("Failed to stop scheduler")
		}
	}
	if a.limiter != nil {
		a.limiter.Close()
	}
}

func registerRoutes(mux *http.ServeMux, handlers *personas.Handlers, staticDir string) {
	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	handlers.Register(mux)

	mux.Handle("GET /static/", http.StripPrefix("/static/", staticHandler(staticDir)))
}

// staticHandler serves staticDir when it exists and the embedded assets otherwise.
func staticHandler(staticDir string) http.Handler {
	if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
		log.Info().Str("static_dir", staticDir).Msg("Serving static files from disk")
		return http.FileServer(http.Dir(staticDir))
	}

	embedded, err := fs.Sub(assets.StaticFS, assets.StaticRoot)
	if err != nil {
		// StaticRoot is a compile-time embed path.
		panic(err)
	}
	log.Info().Str("static_dir", staticDir).Msg("Static directory not found, serving embedded assets")
	return http.FileServer(http.FS(embedded))
}
