package report

import (
	"context"
	"time"

	"github.com/odunsi/books/internal/ledger"
)

// IncomeStatementReport holds the raw per-account amounts for one period,
// partitioned by account type. Every amount is credit - debit over the
// window; opening balances never apply — these are period accounts.
//
// The builder stops at raw amounts. Gross profit, operating income and net
// income are derived by the consumer from the three lists, along with the
// debit-positive display convention for cost and expense sections.
type IncomeStatementReport struct {
	From    time.Time
	To      time.Time
	Revenue []AccountBalance
	Cost    []AccountBalance
	Expense []AccountBalance
}

// IncomeStatement builds the income statement for the inclusive window.
// Main groups typed revenue, cost (or its "cogs" alias) and expense are
// scanned; accounts outside those partitions, or with incomplete
// hierarchy, are excluded. Sign is preserved: a credit-heavy expense
// account yields a positive raw amount, never clamped.
func (s *Service) IncomeStatement(ctx context.Context, from, to time.Time) (*IncomeStatementReport, error) {
	res, err := s.resolver(ctx)
	if err != nil {
		return nil, err
	}
	accounts, err := s.repo.ListAccounts(ctx, ledger.AccountFilter{})
	if err != nil {
		return nil, unavailable("list accounts", err)
	}
	byAccount, err := s.linesByAccount(ctx, ledger.LineFilter{PostedOnly: true, From: &from, To: &to})
	if err != nil {
		return nil, err
	}

	rep := &IncomeStatementReport{From: from, To: to}
	for _, a := range accounts {
		t, ok := res.TypeOf(a)
		if !ok {
			continue
		}
		debit, credit := Totals(byAccount[a.ID.String()])
		amount := Balance(t, a.OpeningBalance, debit, credit)
		switch t {
		case ledger.AccountTypeRevenue:
			rep.Revenue = append(rep.Revenue, AccountBalance{Code: a.Code, Name: a.Name, Balance: amount})
		case ledger.AccountTypeCost:
			rep.Cost = append(rep.Cost, AccountBalance{Code: a.Code, Name: a.Name, Balance: amount})
		case ledger.AccountTypeExpense:
			rep.Expense = append(rep.Expense, AccountBalance{Code: a.Code, Name: a.Name, Balance: amount})
		}
	}
	return rep, nil
}
