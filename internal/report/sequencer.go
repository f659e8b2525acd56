package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/odunsi/books/internal/ledger"
)

// LedgerParams scope the general-ledger view. The three code filters
// compose as AND, each narrowing independently. From/To bound the posted
// entry dates; the opening-balance row is emitted regardless of the
// window.
type LedgerParams struct {
	MainGroupCode string
	SubgroupCode  string
	AccountCode   string
	From          *time.Time
	To            *time.Time
}

// LedgerRow is one row of the ledgers view: either the synthetic
// opening-balance row of an account or one posted journal line with the
// post-line running balance. Debit and Credit are nil when zero; rendering
// a dash instead of "0" is part of the data shape here, not a renderer
// choice.
type LedgerRow struct {
	AccountCode string
	AccountName string
	Opening     bool
	EntryNo     string
	Date        *time.Time
	Description string
	Debit       *decimal.Decimal
	Credit      *decimal.Decimal
	Balance     decimal.Decimal
}

// Ledgers builds the running-balance transaction list for every matched
// account, concatenated in account-code order. Each account is seeded with
// an opening-balance row, then its posted lines in entry-date order with
// ties left in storage order (deliberately not LineOrder; the journal
// listing is the one that orders within an entry).
//
// The running balance is local to each account's fold, so accounts are
// independent: line fetches run concurrently and output order is restored
// before emission. The result is flat and unpaginated; a later page
// boundary may fall inside an account's transaction list.
func (s *Service) Ledgers(ctx context.Context, p LedgerParams) ([]LedgerRow, error) {
	accounts, err := s.repo.ListAccounts(ctx, ledger.AccountFilter{
		MainGroupCode: p.MainGroupCode,
		SubgroupCode:  p.SubgroupCode,
		AccountCode:   p.AccountCode,
	})
	if err != nil {
		return nil, unavailable("list accounts", err)
	}

	perAccount := make([][]ledger.JournalLine, len(accounts))
	g, gctx := errgroup.WithContext(ctx)
	for i, a := range accounts {
		i, a := i, a
		g.Go(func() error {
			id := a.ID
			lines, err := s.repo.ListJournalLines(gctx, ledger.LineFilter{
				AccountID:  &id,
				PostedOnly: true,
				From:       p.From,
				To:         p.To,
			}, ledger.OrderDateAsc)
			if err != nil {
				return unavailable("list journal lines", err)
			}
			perAccount[i] = lines
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var rows []LedgerRow
	for i, a := range accounts {
		rows = append(rows, openingRow(a))
		balance := a.OpeningBalance
		for _, ln := range perAccount[i] {
			balance = balance.Add(ln.Debit).Sub(ln.Credit)
			date := ln.Entry.Date
			rows = append(rows, LedgerRow{
				AccountCode: a.Code,
				AccountName: a.Name,
				EntryNo:     ln.Entry.EntryNo,
				Date:        &date,
				Description: ln.Narration(),
				Debit:       amountOrNil(ln.Debit),
				Credit:      amountOrNil(ln.Credit),
				Balance:     balance,
			})
		}
	}
	return rows, nil
}

// openingRow seeds an account's ledger: a positive opening balance shows
// on the debit side, a negative one as its magnitude on the credit side.
func openingRow(a ledger.Account) LedgerRow {
	row := LedgerRow{
		AccountCode: a.Code,
		AccountName: a.Name,
		Opening:     true,
		Description: "Opening balance",
		Balance:     a.OpeningBalance,
	}
	switch {
	case a.OpeningBalance.IsPositive():
		v := a.OpeningBalance
		row.Debit = &v
	case a.OpeningBalance.IsNegative():
		v := a.OpeningBalance.Abs()
		row.Credit = &v
	}
	return row
}

func amountOrNil(v decimal.Decimal) *decimal.Decimal {
	if v.IsZero() {
		return nil
	}
	return &v
}
