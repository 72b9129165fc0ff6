package app

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/quizbank/trivia-api/internal/category"
	"github.com/quizbank/trivia-api/internal/config"
	"github.com/quizbank/trivia-api/internal/db/repository"
	"github.com/quizbank/trivia-api/internal/logging"
	"github.com/quizbank/trivia-api/internal/question"
	"github.com/quizbank/trivia-api/internal/quiz"
	"github.com/quizbank/trivia-api/internal/server"
)

// Application aggregates shared infrastructure (DB, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	pool *pgxpool.Pool
	http *http.Server
}

// New bootstraps config, logger, Postgres and the HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Msg("starting application bootstrap")

	connString := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s pool_max_conns=10",
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.SSLMode)

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	categoryRepo := repository.NewCategoryRepository(pool)
	questionRepo := repository.NewQuestionRepository(pool)

	categorySvc := category.NewService(categoryRepo, logger)
	questionSvc := question.NewService(questionRepo, categoryRepo, logger)
	selector := quiz.NewSelector(questionRepo, rand.Intn, logger)

	handlers := server.Handlers{
		Categories: category.NewHTTPHandler(categorySvc, logger),
		Questions:  question.NewHTTPHandler(questionSvc, logger),
		Quizzes:    quiz.NewHTTPHandler(selector, logger),
	}

	return &Application{
		cfg:    cfg,
		logger: logger,
		pool:   pool,
		http:   server.NewHTTPServer(cfg, logger, pool, handlers),
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	a.pool.Close()

	a.logger.Info().Msg("shutdown complete")
	return nil
}
