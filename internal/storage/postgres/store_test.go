package postgres

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/odunsi/books/internal/ledger"
)

func getTestDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping Postgres store tests")
	}
	return dsn
}

func mustOpen(t *testing.T, dsn string) *Store {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s, err := Open(ctx, dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return s
}

func applyInitSQL(t *testing.T, dsn string) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s, err := Open(ctx, dsn)
	if err != nil {
		t.Fatalf("open for init: %v", err)
	}
	defer s.Close()
	// Resolve init SQL path relative to this test file so CWD doesn't matter
	_, thisFile, _, _ := runtime.Caller(0)
	repoRoot := filepath.Clean(filepath.Join(filepath.Dir(thisFile), "../../../"))
	path := filepath.Join(repoRoot, "db", "migrations", "0001_init.sql")
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read init sql: %v", err)
	}
	if _, err := s.pool.Exec(ctx, string(b)); err != nil {
		t.Fatalf("apply init sql: %v", err)
	}
}

func truncateAll(t *testing.T, dsn string) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s, err := Open(ctx, dsn)
	if err != nil {
		t.Fatalf("open for truncate: %v", err)
	}
	defer s.Close()
	_, _ = s.pool.Exec(ctx, `truncate table journal_lines, journal_entries, accounts, subgroups, main_groups cascade`)
}

func accountByCode(t *testing.T, accounts []ledger.Account, code string) ledger.Account {
	t.Helper()
	for _, a := range accounts {
		if a.Code == code {
			return a
		}
	}
	t.Fatalf("no account with code %s", code)
	return ledger.Account{}
}

func TestStore_ChartAndLines(t *testing.T) {
	dsn := getTestDSN(t)
	applyInitSQL(t, dsn)
	truncateAll(t, dsn)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s := mustOpen(t, dsn)
	defer s.Close()

	if err := s.Ready(ctx); err != nil {
		t.Fatalf("ready: %v", err)
	}
	if err := s.SeedDev(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	groups, err := s.ListMainGroups(ctx)
	if err != nil {
		t.Fatalf("list main groups: %v", err)
	}
	if len(groups) != 6 || groups[0].Code != "1000" {
		t.Fatalf("unexpected groups: %+v", groups)
	}

	accounts, err := s.ListAccounts(ctx, ledger.AccountFilter{})
	if err != nil {
		t.Fatalf("list accounts: %v", err)
	}
	if len(accounts) < 10 {
		t.Fatalf("expected the full default chart, got %d accounts", len(accounts))
	}
	filtered, err := s.ListAccounts(ctx, ledger.AccountFilter{MainGroupCode: "1000"})
	if err != nil {
		t.Fatalf("filter accounts: %v", err)
	}
	for _, a := range filtered {
		if a.Code[0] != '1' {
			t.Fatalf("account %s leaked through the main-group filter", a.Code)
		}
	}

	cash := accountByCode(t, accounts, "1101")
	sales := accountByCode(t, accounts, "4101")
	d1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	amt := decimal.NewFromInt(150)
	post := func(no string, d time.Time, status ledger.EntryStatus) {
		e := ledger.JournalEntry{
			ID: uuid.New(), EntryNo: no, Date: d, Description: "Cash sale " + no, Status: status,
			Lines: []ledger.JournalLine{
				{ID: uuid.New(), AccountID: cash.ID, Debit: amt, LineOrder: 1},
				{ID: uuid.New(), AccountID: sales.ID, Credit: amt, LineOrder: 2},
			},
		}
		if err := s.SeedEntry(ctx, e); err != nil {
			t.Fatalf("seed entry %s: %v", no, err)
		}
	}
	post("JE-0001", d1, ledger.EntryStatusPosted)
	post("JE-0002", d2, ledger.EntryStatusPosted)
	post("JE-0003", d2, ledger.EntryStatusDraft)

	lines, err := s.ListJournalLines(ctx, ledger.LineFilter{PostedOnly: true}, ledger.OrderDateAsc)
	if err != nil {
		t.Fatalf("list lines: %v", err)
	}
	if len(lines) != 4 {
		t.Fatalf("posted lines = %d, want 4", len(lines))
	}
	if lines[0].Entry.EntryNo != "JE-0001" || !lines[0].Debit.Equal(amt) {
		t.Fatalf("unexpected first line: %+v", lines[0])
	}

	desc, err := s.ListJournalLines(ctx, ledger.LineFilter{PostedOnly: true}, ledger.OrderDateDescLineOrder)
	if err != nil {
		t.Fatalf("list lines desc: %v", err)
	}
	if desc[0].Entry.EntryNo != "JE-0002" || desc[0].LineOrder != 1 {
		t.Fatalf("unexpected desc head: %+v", desc[0])
	}

	id := sales.ID
	from := d2
	scoped, err := s.ListJournalLines(ctx, ledger.LineFilter{PostedOnly: true, AccountID: &id, From: &from}, ledger.OrderDateAsc)
	if err != nil {
		t.Fatalf("scoped lines: %v", err)
	}
	if len(scoped) != 1 || !scoped[0].Credit.Equal(amt) {
		t.Fatalf("scoped = %+v", scoped)
	}

	search, err := s.ListJournalLines(ctx, ledger.LineFilter{PostedOnly: true, Search: "je-0001"}, ledger.OrderDateAsc)
	if err != nil {
		t.Fatalf("search lines: %v", err)
	}
	if len(search) != 2 {
		t.Fatalf("search = %d lines, want 2", len(search))
	}
}
