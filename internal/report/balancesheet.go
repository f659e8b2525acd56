package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/odunsi/books/internal/ledger"
)

// AccountBalance is one itemized account in a balance sheet or income
// statement section.
type AccountBalance struct {
	Code    string
	Name    string
	Balance decimal.Decimal
}

// BalanceSheetReport holds raw type-aware balances as of a date.
// Balances keep their natural sign (opening + debit - credit), so
// liability and equity amounts are normally negative; flipping them for
// display is the consumer's concern.
//
// Assets and liabilities are itemized; equity is collapsed into the single
// OwnerEquity scalar. The asymmetry is intentional and mirrors how the
// report has always been presented.
type BalanceSheetReport struct {
	AsOf        time.Time
	Assets      []AccountBalance
	Liabilities []AccountBalance
	OwnerEquity decimal.Decimal
}

// BalanceSheet builds the balance sheet as of the given date. There is no
// lower date bound: the report is cumulative since inception, with each
// account's opening balance folded in via Balance.
//
// Accounts whose hierarchy is incomplete or whose group type is not
// asset/liability/equity are skipped. An out-of-balance ledger still
// produces a report; verifying the accounting identity is left to the
// caller because a mismatch is a reportable state, not an error.
func (s *Service) BalanceSheet(ctx context.Context, asOf time.Time) (*BalanceSheetReport, error) {
	res, err := s.resolver(ctx)
	if err != nil {
		return nil, err
	}
	accounts, err := s.repo.ListAccounts(ctx, ledger.AccountFilter{})
	if err != nil {
		return nil, unavailable("list accounts", err)
	}
	byAccount, err := s.linesByAccount(ctx, ledger.LineFilter{PostedOnly: true, To: &asOf})
	if err != nil {
		return nil, err
	}

	rep := &BalanceSheetReport{AsOf: asOf}
	for _, a := range accounts {
		t, ok := res.TypeOf(a)
		if !ok {
			continue
		}
		debit, credit := Totals(byAccount[a.ID.String()])
		bal := Balance(t, a.OpeningBalance, debit, credit)
		switch t {
		case ledger.AccountTypeAsset:
			rep.Assets = append(rep.Assets, AccountBalance{Code: a.Code, Name: a.Name, Balance: bal})
		case ledger.AccountTypeLiability:
			rep.Liabilities = append(rep.Liabilities, AccountBalance{Code: a.Code, Name: a.Name, Balance: bal})
		case ledger.AccountTypeEquity:
			rep.OwnerEquity = rep.OwnerEquity.Add(bal)
		}
	}
	return rep, nil
}
