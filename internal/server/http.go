package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/quizbank/trivia-api/internal/category"
	"github.com/quizbank/trivia-api/internal/config"
	"github.com/quizbank/trivia-api/internal/question"
	"github.com/quizbank/trivia-api/internal/quiz"
	"github.com/quizbank/trivia-api/pkg/http/apierr"
)

// Handlers groups the per-domain HTTP handlers the router mounts.
type Handlers struct {
	Categories *category.HTTPHandler
	Questions  *question.HTTPHandler
	Quizzes    *quiz.HTTPHandler
}

// NewHTTPServer wires the API routes plus health and metrics endpoints.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, pool *pgxpool.Pool, h Handlers) *http.Server {
	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: NewRouter(cfg, logger, pool, h),
	}
}

// NewRouter builds the chi router. Unknown paths and known paths hit with the
// wrong method both render the standard failure envelope.
func NewRouter(cfg *config.App, logger zerolog.Logger, pool *pgxpool.Pool, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(requestID(logger))
	r.Use(requestMetrics)
	r.Use(recoverer)
	r.Use(cors(cfg.CORS))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		apierr.Respond(w, apierr.NotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		apierr.Respond(w, apierr.MethodNotAllowed)
	})

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if pool != nil {
			if err := pool.Ping(req.Context()); err != nil {
				logger.Error().Err(err).Msg("db ping failed")
				apierr.Respond(w, apierr.Internal)
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/categories", h.Categories.HandleList)
	r.Post("/categories", h.Categories.HandleCreate)
	r.Delete("/categories/{id}", h.Categories.HandleDelete)
	r.Get("/categories/{id}/questions", h.Questions.HandleListByCategory)

	r.Get("/questions", h.Questions.HandleList)
	r.Post("/questions", h.Questions.HandlePost)
	r.Delete("/questions/{id}", h.Questions.HandleDelete)

	r.Post("/quizzes", h.Quizzes.HandleNext)

	return r
}
