package postgres

// Package postgres provides a pgx-backed repository implementation behind
// the same interface the in-memory store satisfies. Migrations creating
// the expected schema live under db/migrations. This package maps between
// domain entities and SQL rows; it holds no report logic.

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/odunsi/books/internal/chart"
	"github.com/odunsi/books/internal/ledger"
)

// Store holds a pgx connection pool. All methods are safe for concurrent
// use.
type Store struct {
	pool *pgxpool.Pool
}

// Open establishes a pgx pool using the provided connection string.
func Open(ctx context.Context, dsn string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &Store{pool: pool}, nil
}

// Close releases the underlying pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ready pings the pool to verify connectivity.
func (s *Store) Ready(ctx context.Context) error { return s.pool.Ping(ctx) }

// ListMainGroups returns the chart's main groups in display order.
func (s *Store) ListMainGroups(ctx context.Context) ([]ledger.MainGroup, error) {
	rows, err := s.pool.Query(ctx, `
		select id, code, name, type, display_order
		from main_groups
		order by display_order, code
	`)
	if err != nil {
		return nil, fmt.Errorf("query main groups: %w", err)
	}
	defer rows.Close()
	out := make([]ledger.MainGroup, 0)
	for rows.Next() {
		var g ledger.MainGroup
		if err := rows.Scan(&g.ID, &g.Code, &g.Name, &g.Type, &g.DisplayOrder); err != nil {
			return nil, fmt.Errorf("scan main group: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// ListSubgroups returns subgroups ordered by code.
func (s *Store) ListSubgroups(ctx context.Context) ([]ledger.Subgroup, error) {
	rows, err := s.pool.Query(ctx, `
		select id, code, name, main_group_id
		from subgroups
		order by code
	`)
	if err != nil {
		return nil, fmt.Errorf("query subgroups: %w", err)
	}
	defer rows.Close()
	out := make([]ledger.Subgroup, 0)
	for rows.Next() {
		var sg ledger.Subgroup
		if err := rows.Scan(&sg.ID, &sg.Code, &sg.Name, &sg.MainGroupID); err != nil {
			return nil, fmt.Errorf("scan subgroup: %w", err)
		}
		out = append(out, sg)
	}
	return out, rows.Err()
}

// ListAccounts returns accounts matching the filter in code order. The
// main-group and subgroup filters join through the hierarchy.
func (s *Store) ListAccounts(ctx context.Context, f ledger.AccountFilter) ([]ledger.Account, error) {
	q := `
		select a.id, a.code, a.name, a.opening_balance, a.subgroup_id
		from accounts a
		join subgroups sg on sg.id = a.subgroup_id
		join main_groups mg on mg.id = sg.main_group_id
		where true`
	args := []any{}
	if f.MainGroupCode != "" {
		args = append(args, f.MainGroupCode)
		q += fmt.Sprintf(" and mg.code = $%d", len(args))
	}
	if f.SubgroupCode != "" {
		args = append(args, f.SubgroupCode)
		q += fmt.Sprintf(" and sg.code = $%d", len(args))
	}
	if f.AccountCode != "" {
		args = append(args, f.AccountCode)
		q += fmt.Sprintf(" and a.code = $%d", len(args))
	}
	q += " order by a.code"

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query accounts: %w", err)
	}
	defer rows.Close()
	out := make([]ledger.Account, 0)
	for rows.Next() {
		var a ledger.Account
		if err := rows.Scan(&a.ID, &a.Code, &a.Name, &a.OpeningBalance, &a.SubgroupID); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// ListJournalLines returns lines joined to their owning entries. The
// date-ascending order breaks ties by insertion (entry id, line id), the
// journal order by (entry date desc, line_order asc).
func (s *Store) ListJournalLines(ctx context.Context, f ledger.LineFilter, order ledger.LineOrder) ([]ledger.JournalLine, error) {
	q := `
		select jl.id, jl.entry_id, jl.account_id, jl.debit, jl.credit,
		       coalesce(jl.description, ''), jl.line_order,
		       je.entry_no, je.entry_date, je.description, je.status
		from journal_lines jl
		join journal_entries je on je.id = jl.entry_id
		where true`
	args := []any{}
	if f.PostedOnly {
		q += " and je.status = 'posted'"
	}
	if f.AccountID != nil {
		args = append(args, *f.AccountID)
		q += fmt.Sprintf(" and jl.account_id = $%d", len(args))
	}
	if f.From != nil {
		args = append(args, *f.From)
		q += fmt.Sprintf(" and je.entry_date >= $%d", len(args))
	}
	if f.To != nil {
		args = append(args, *f.To)
		q += fmt.Sprintf(" and je.entry_date <= $%d", len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		q += fmt.Sprintf(" and (je.entry_no ilike $%d or je.description ilike $%d or jl.description ilike $%d)", n, n, n)
	}
	switch order {
	case ledger.OrderDateDescLineOrder:
		q += " order by je.entry_date desc, jl.line_order asc"
	default:
		q += " order by je.entry_date asc, je.created_at asc, jl.id asc"
	}

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query journal lines: %w", err)
	}
	defer rows.Close()
	out := make([]ledger.JournalLine, 0)
	for rows.Next() {
		var ln ledger.JournalLine
		var status string
		if err := rows.Scan(&ln.ID, &ln.EntryID, &ln.AccountID, &ln.Debit, &ln.Credit,
			&ln.Description, &ln.LineOrder,
			&ln.Entry.EntryNo, &ln.Entry.Date, &ln.Entry.Description, &status); err != nil {
			return nil, fmt.Errorf("scan journal line: %w", err)
		}
		ln.Entry.ID = ln.EntryID
		ln.Entry.Status = ledger.EntryStatus(status)
		out = append(out, ln)
	}
	return out, rows.Err()
}

// SeedDev loads the default chart of accounts. Entries are seeded
// separately via SeedEntry.
func (s *Store) SeedDev(ctx context.Context) error {
	groups, subs, accounts := chart.Build()
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()
	for _, g := range groups {
		if _, err := tx.Exec(ctx, `
			insert into main_groups (id, code, name, type, display_order)
			values ($1,$2,$3,$4,$5)
		`, g.ID, g.Code, g.Name, g.Type, g.DisplayOrder); err != nil {
			return err
		}
	}
	for _, sg := range subs {
		if _, err := tx.Exec(ctx, `
			insert into subgroups (id, code, name, main_group_id)
			values ($1,$2,$3,$4)
		`, sg.ID, sg.Code, sg.Name, sg.MainGroupID); err != nil {
			return err
		}
	}
	for _, a := range accounts {
		if _, err := tx.Exec(ctx, `
			insert into accounts (id, code, name, opening_balance, subgroup_id)
			values ($1,$2,$3,$4,$5)
		`, a.ID, a.Code, a.Name, a.OpeningBalance, a.SubgroupID); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// SeedEntry inserts an entry and its lines in one transaction. Used by
// store tests and the dev seed; the reporting paths never write.
func (s *Store) SeedEntry(ctx context.Context, e ledger.JournalEntry) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()
	if _, err := tx.Exec(ctx, `
		insert into journal_entries (id, entry_no, entry_date, description, status)
		values ($1,$2,$3,$4,$5)
	`, e.ID, e.EntryNo, e.Date, e.Description, e.Status); err != nil {
		return err
	}
	for _, ln := range e.Lines {
		if _, err := tx.Exec(ctx, `
			insert into journal_lines (id, entry_id, account_id, debit, credit, description, line_order)
			values ($1,$2,$3,$4,$5,$6,$7)
		`, ln.ID, e.ID, ln.AccountID, ln.Debit, ln.Credit, ln.Description, ln.LineOrder); err != nil {
			return fmt.Errorf("insert line: %w", err)
		}
	}
	return tx.Commit(ctx)
}
