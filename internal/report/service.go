// Package report is the financial statement aggregation engine. It turns a
// flat ledger of double-entry journal postings into the standard reports:
// general journal listing, trial balance, balance sheet, income statement
// and per-account ledger views with running balances.
//
// The engine is read-only and stateless per call: fetch, aggregate, shape.
// Derived presentation figures (report totals, gross profit, display sign
// flips) belong to the consumer, not to the builders here.
package report

import (
	"context"
	"fmt"

	"github.com/odunsi/books/internal/errs"
	"github.com/odunsi/books/internal/ledger"
)

// Repo defines the read operations the engine needs from storage.
// Implementations must return main groups ordered by display order,
// subgroups and accounts ordered by code.
type Repo interface {
	ListMainGroups(ctx context.Context) ([]ledger.MainGroup, error)
	ListSubgroups(ctx context.Context) ([]ledger.Subgroup, error)
	ListAccounts(ctx context.Context, f ledger.AccountFilter) ([]ledger.Account, error)
	ListJournalLines(ctx context.Context, f ledger.LineFilter, order ledger.LineOrder) ([]ledger.JournalLine, error)
}

// Service builds all reports from a Repo.
type Service struct {
	repo Repo
}

// New constructs the reporting service.
func New(repo Repo) *Service { return &Service{repo: repo} }

// unavailable wraps a repository failure as errs.ErrUnavailable so callers
// can distinguish "data unavailable" from input errors.
func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, errs.ErrUnavailable, err)
}

// resolver loads the hierarchy reference data and builds a Resolver from it.
func (s *Service) resolver(ctx context.Context) (*Resolver, error) {
	groups, err := s.repo.ListMainGroups(ctx)
	if err != nil {
		return nil, unavailable("list main groups", err)
	}
	subs, err := s.repo.ListSubgroups(ctx)
	if err != nil {
		return nil, unavailable("list subgroups", err)
	}
	return NewResolver(groups, subs), nil
}

// linesByAccount fetches posted lines matching the filter and buckets them
// by account. The per-bucket order is the fetch order.
func (s *Service) linesByAccount(ctx context.Context, f ledger.LineFilter) (map[string][]ledger.JournalLine, error) {
	lines, err := s.repo.ListJournalLines(ctx, f, ledger.OrderDateAsc)
	if err != nil {
		return nil, unavailable("list journal lines", err)
	}
	out := make(map[string][]ledger.JournalLine)
	for _, ln := range lines {
		key := ln.AccountID.String()
		out[key] = append(out[key], ln)
	}
	return out, nil
}
