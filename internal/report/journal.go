package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/odunsi/books/internal/ledger"
)

// JournalParams scope the general journal listing. Search is a free-text
// filter over entry numbers and descriptions.
type JournalParams struct {
	From   *time.Time
	To     *time.Time
	Search string
}

// JournalRow is one posted journal line enriched with its entry header and
// account. Description is the line narration with the entry description as
// fallback.
type JournalRow struct {
	EntryNo     string
	Date        time.Time
	AccountCode string
	AccountName string
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// GeneralJournal lists every posted journal line in the window, newest
// entries first with lines in their voucher order (entry date desc, line
// order asc). This is a generic listing: accounts keep their rows even
// when their main group type is unrecognized or their hierarchy is
// incomplete.
func (s *Service) GeneralJournal(ctx context.Context, p JournalParams) ([]JournalRow, error) {
	accounts, err := s.repo.ListAccounts(ctx, ledger.AccountFilter{})
	if err != nil {
		return nil, unavailable("list accounts", err)
	}
	byID := make(map[string]ledger.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID.String()] = a
	}

	lines, err := s.repo.ListJournalLines(ctx, ledger.LineFilter{
		PostedOnly: true,
		From:       p.From,
		To:         p.To,
		Search:     p.Search,
	}, ledger.OrderDateDescLineOrder)
	if err != nil {
		return nil, unavailable("list journal lines", err)
	}

	rows := make([]JournalRow, 0, len(lines))
	for _, ln := range lines {
		a := byID[ln.AccountID.String()]
		rows = append(rows, JournalRow{
			EntryNo:     ln.Entry.EntryNo,
			Date:        ln.Entry.Date,
			AccountCode: a.Code,
			AccountName: a.Name,
			Description: ln.Narration(),
			Debit:       ln.Debit,
			Credit:      ln.Credit,
		})
	}
	return rows, nil
}
