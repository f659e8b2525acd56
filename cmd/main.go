package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/odunsi/books/internal/chart"
	"github.com/odunsi/books/internal/httpapi"
	"github.com/odunsi/books/internal/ledger"
	"github.com/odunsi/books/internal/report"
	"github.com/odunsi/books/internal/storage/memory"
	pgstore "github.com/odunsi/books/internal/storage/postgres"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Local .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	// Logger (slog to stdout). Level via LOG_LEVEL; format via LOG_FORMAT (json|text, default json)
	logger := buildLoggerFromEnv()
	slog.SetDefault(logger)

	var repo report.Repo
	var closeFn func()

	if dsn := strings.TrimSpace(os.Getenv("DATABASE_URL")); dsn != "" {
		pg, err := pgstore.Open(ctx, dsn)
		if err != nil {
			logger.Error("failed to connect to postgres", "err", err)
			os.Exit(1)
		}
		closeFn = pg.Close
		if devSeedEnabled() {
			if err := pg.SeedDev(ctx); err != nil {
				logger.Error("dev seed failed", "err", err)
			} else {
				logger.Info("DEV seed (postgres): default chart loaded")
			}
		}
		repo = pg
		logger.Info("storage backend: postgres")
	} else {
		store := memory.New()
		if devSeedEnabled() {
			seedMemory(store)
			logger.Info("DEV seed (memory): default chart and sample vouchers loaded")
		}
		repo = store
		logger.Info("storage backend: memory")
	}

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           httpapi.New(repo, logger).Handler(),
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("reporting service listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctxShutdown); err != nil {
			logger.Error("server shutdown error", "err", err)
		}
	case err := <-errCh:
		logger.Error("server error", "err", err)
	}
	if closeFn != nil {
		closeFn()
	}
}

func devSeedEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("DEV_SEED"))) {
	case "1", "true", "yes":
		return true
	}
	return false
}

// seedMemory loads the default chart and a pair of posted vouchers so the
// report endpoints return something out of the box.
func seedMemory(store *memory.Store) {
	groups, subs, accounts := chart.Build()
	for _, g := range groups {
		store.SeedMainGroup(g)
	}
	for _, sg := range subs {
		store.SeedSubgroup(sg)
	}
	byCode := make(map[string]ledger.Account, len(accounts))
	for _, a := range accounts {
		store.SeedAccount(a)
		byCode[a.Code] = a
	}

	d := func(s string) decimal.Decimal { v, _ := decimal.NewFromString(s); return v }
	day := func(s string) time.Time { t, _ := time.Parse("2006-01-02", s); return t }

	store.SeedEntry(ledger.JournalEntry{
		ID:          uuid.New(),
		EntryNo:     store.NextEntryNo(),
		Date:        day("2024-01-05"),
		Description: "Owner capital contribution",
		Status:      ledger.EntryStatusPosted,
		Lines: []ledger.JournalLine{
			{AccountID: byCode["1102"].ID, Debit: d("10000"), LineOrder: 1},
			{AccountID: byCode["3101"].ID, Credit: d("10000"), LineOrder: 2},
		},
	})
	store.SeedEntry(ledger.JournalEntry{
		ID:          uuid.New(),
		EntryNo:     store.NextEntryNo(),
		Date:        day("2024-01-12"),
		Description: "Cash sale",
		Status:      ledger.EntryStatusPosted,
		Lines: []ledger.JournalLine{
			{AccountID: byCode["1101"].ID, Debit: d("1200"), LineOrder: 1},
			{AccountID: byCode["4101"].ID, Credit: d("1200"), LineOrder: 2},
		},
	})
}

// parseLogLevel maps env values to slog.Leveler
func parseLogLevel(s string) slog.Leveler {
	switch s {
	case "DEBUG", "debug":
		return slog.LevelDebug
	case "WARN", "WARNING", "warn", "warning":
		return slog.LevelWarn
	case "ERROR", "ERR", "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func buildLoggerFromEnv() *slog.Logger {
	level := parseLogLevel(os.Getenv("LOG_LEVEL"))
	format := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_FORMAT")))
	if format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	}
	// default to JSON
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
