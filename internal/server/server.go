// Package server exposes the analytics pipeline over a JSON HTTP API.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/moneystory/moneystory/internal/category"
	"github.com/moneystory/moneystory/internal/model"
	"github.com/moneystory/moneystory/internal/story"
)

// Store is the persistence surface the handlers need.
type Store interface {
	FirstUser(ctx context.Context) (*model.User, error)
	GetUser(ctx context.Context, id int64) (*model.User, error)
	SaveTransactions(ctx context.Context, userID int64, txns []model.Transaction) error
	ListTransactions(ctx context.Context, userID int64, limit int) ([]model.Transaction, error)
	GetTransactionsByRange(ctx context.Context, userID int64, start, end time.Time) ([]model.Transaction, error)
	GetAllTransactions(ctx context.Context, userID int64) ([]model.Transaction, error)
	UpsertBudget(ctx context.Context, userID int64, category string, amount float64) error
	ListBudgets(ctx context.Context, userID int64) ([]model.Budget, error)
}

// Config holds the server settings.
type Config struct {
	Addr            string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

// Server wires storage, categorization and story generation behind the
// HTTP handlers.
type Server struct {
	store     Store
	resolver  *category.Resolver
	generator story.Generator
	logger    *slog.Logger
	cfg       Config
}

// New builds a Server. A nil generator falls back to the local template.
func New(cfg Config, store Store, resolver *category.Resolver, generator story.Generator, logger *slog.Logger) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":8000"
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	if resolver == nil {
		resolver = category.NewResolver(nil)
	}
	if generator == nil {
		generator = story.NewTemplateGenerator()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		store:     store,
		resolver:  resolver,
		generator: generator,
		logger:    logger,
		cfg:       cfg,
	}
}

// Handler returns the full middleware-wrapped route tree.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /transactions", s.handleAddTransactions)
	mux.HandleFunc("GET /transactions", s.handleListTransactions)
	mux.HandleFunc("POST /transactions/import-csv", s.handleImportCSV)
	mux.HandleFunc("GET /summary/monthly", s.handleMonthlySummary)
	mux.HandleFunc("GET /summary/weekly", s.handleWeeklySummary)
	mux.HandleFunc("GET /analysis/monthly-story", s.handleMonthlyStory)
	mux.HandleFunc("GET /analysis/actions-next-month", s.handleActionsNextMonth)
	mux.HandleFunc("GET /analysis/profile", s.handleProfile)
	mux.HandleFunc("GET /analysis/trends", s.handleTrends)
	mux.HandleFunc("GET /budgets", s.handleListBudgets)
	mux.HandleFunc("PUT /budgets", s.handleUpsertBudget)

	c := cors.New(cors.Options{
		AllowedOrigins: s.allowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut},
		AllowedHeaders: []string{"Content-Type"},
	})

	return c.Handler(s.logRequests(mux))
}

func (s *Server) allowedOrigins() []string {
	if len(s.cfg.AllowedOrigins) == 0 {
		return []string{"*"}
	}
	return s.cfg.AllowedOrigins
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.cfg.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	s.logger.Info("server shutting down")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start))
	})
}
