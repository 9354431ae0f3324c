package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"valentine_week/internal/config"
	"valentine_week/internal/metrics"
	"valentine_week/internal/middleware"
	"valentine_week/internal/service"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// RouterDeps はルーターが必要とする依存関係です
type RouterDeps struct {
	ProgressService service.ProgressService
	StatusService   service.StatusService
	Pinger          Pinger
	Recorder        metrics.Recorder
	// MetricsHandler が nil の場合 /metrics は公開しない
	MetricsHandler http.Handler
}

// NewRouter はミドルウェアとルートを設定した chi ルーターを返します
func NewRouter(cfg *config.Config, logger *slog.Logger, deps RouterDeps) *chi.Mux {
	if deps.Recorder == nil {
		deps.Recorder = metrics.NoopRecorder{}
	}

	progressHandler := NewProgressHandler(deps.ProgressService, logger)
	statusHandler := NewStatusHandler(deps.StatusService, logger)
	infoHandler := NewInfoHandler(deps.Pinger)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(middleware.MetricsMiddleware(deps.Recorder))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	apiRoutes := func(r chi.Router) {
		r.Get("/", infoHandler.Root)

		r.Post("/status", statusHandler.CreateStatusCheck)
		r.Get("/status", statusHandler.ListStatusChecks)

		r.Route("/progress", func(r chi.Router) {
			r.Get("/", progressHandler.GetProgress)
			r.Post("/complete", progressHandler.CompleteDay)
			r.Post("/reset", progressHandler.ResetProgress)
		})
	}
	if cfg.App.APIPrefix == "" {
		r.Group(apiRoutes)
	} else {
		r.Route(cfg.App.APIPrefix, apiRoutes)
	}

	r.Get("/health", infoHandler.Health)

	if deps.MetricsHandler != nil {
		path := cfg.Metrics.Path
		if path == "" {
			path = config.DefaultMetricsPath
		}
		r.Method(http.MethodGet, path, deps.MetricsHandler)
	}

	return r
}
