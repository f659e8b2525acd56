// Package httpapi wires the HTTP surface of the reporting service.
// Handlers stay thin: they parse and validate inputs, call the report
// engine, and derive the presentation figures the builders deliberately
// leave to consumers (report totals, display sign flips, balanced checks).
package httpapi

import (
	"log/slog"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/odunsi/books/internal/report"
)

// Server wires handlers and middleware using chi.
type Server struct {
	svc  *report.Service
	repo report.Repo
	log  *slog.Logger
	rt   *chi.Mux
}

// New constructs the HTTP server with routes and middleware.
func New(repo report.Repo, logger *slog.Logger) *Server {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(requestLogger(logger))
	r.Use(recoverer(logger))
	r.Use(metricsMiddleware)

	s := &Server{
		svc:  report.New(repo),
		repo: repo,
		log:  logger,
		rt:   r,
	}
	s.routes()
	return s
}

// Handler exposes the configured http.Handler.
func (s *Server) Handler() http.Handler { return s.rt }

// routes declares the public HTTP API endpoints.
func (s *Server) routes() {
	// Reports (v1)
	s.rt.Get("/v1/reports/trial-balance", s.trialBalance)
	s.rt.Get("/v1/reports/balance-sheet", s.balanceSheet)
	s.rt.Get("/v1/reports/income-statement", s.incomeStatement)
	s.rt.Get("/v1/reports/journal", s.generalJournal)
	s.rt.Get("/v1/reports/ledgers", s.ledgers)
	// Chart of accounts (v1)
	s.rt.Get("/v1/accounts", s.listAccounts)
	s.rt.Get("/v1/main-groups", s.listMainGroups)
	s.rt.Get("/v1/subgroups", s.listSubgroups)
	// Health and metrics (unversioned)
	s.rt.Get("/healthz", s.healthz)
	s.rt.Get("/readyz", s.readyz)
	s.rt.Method(http.MethodGet, "/metrics", metricsHandler())
}
