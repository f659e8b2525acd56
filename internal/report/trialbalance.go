package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/odunsi/books/internal/ledger"
)

// TrialBalanceParams scope the trial balance. From/To bound the posted
// entry dates inclusively; Type restricts the report to main groups of one
// accounting type.
type TrialBalanceParams struct {
	From *time.Time
	To   *time.Time
	Type *ledger.AccountType
}

// TrialBalanceRowKind discriminates the three row variants. Keeping the
// kind explicit (rather than optional fields on one shared row) is what
// lets consumers sum leaf rows without double-counting the summaries.
type TrialBalanceRowKind string

const (
	RowKindGroup    TrialBalanceRowKind = "group"
	RowKindSubgroup TrialBalanceRowKind = "subgroup"
	RowKindAccount  TrialBalanceRowKind = "account"
)

// TrialBalanceRow is one output row. Group and subgroup rows carry the
// aggregated debit/credit of their accounts and precede them in document
// order.
type TrialBalanceRow struct {
	Kind   TrialBalanceRowKind
	Code   string
	Name   string
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// TrialBalanceReport is the ordered row list.
type TrialBalanceReport struct {
	From *time.Time
	To   *time.Time
	Rows []TrialBalanceRow
}

// AccountTotals sums debit and credit over account rows only. Group and
// subgroup summary rows must stay out of the balance check; including them
// double-counts every amount.
func (r *TrialBalanceReport) AccountTotals() (debit, credit decimal.Decimal) {
	for _, row := range r.Rows {
		if row.Kind != RowKindAccount {
			continue
		}
		debit = debit.Add(row.Debit)
		credit = credit.Add(row.Credit)
	}
	return debit, credit
}

// TrialBalance builds the trial balance: per account debit/credit totals
// over posted entries in the window, arranged under subgroup and main-group
// summary rows in (display order, subgroup code, account code) order.
//
// Summary totals accumulate in place while accounts are visited; the
// summary rows are appended before their children, so no second pass is
// needed. Without a type filter the report is a generic listing and keeps
// groups whose type string is unrecognized.
func (s *Service) TrialBalance(ctx context.Context, p TrialBalanceParams) (*TrialBalanceReport, error) {
	groups, err := s.repo.ListMainGroups(ctx)
	if err != nil {
		return nil, unavailable("list main groups", err)
	}
	subs, err := s.repo.ListSubgroups(ctx)
	if err != nil {
		return nil, unavailable("list subgroups", err)
	}
	accounts, err := s.repo.ListAccounts(ctx, ledger.AccountFilter{})
	if err != nil {
		return nil, unavailable("list accounts", err)
	}
	byAccount, err := s.linesByAccount(ctx, ledger.LineFilter{PostedOnly: true, From: p.From, To: p.To})
	if err != nil {
		return nil, err
	}

	// Arrange children preserving the repo's code ordering.
	subsByGroup := make(map[uuid.UUID][]ledger.Subgroup)
	for _, sg := range subs {
		subsByGroup[sg.MainGroupID] = append(subsByGroup[sg.MainGroupID], sg)
	}
	accountsBySubgroup := make(map[uuid.UUID][]ledger.Account)
	for _, a := range accounts {
		accountsBySubgroup[a.SubgroupID] = append(accountsBySubgroup[a.SubgroupID], a)
	}

	rep := &TrialBalanceReport{From: p.From, To: p.To}
	for _, g := range groups {
		if p.Type != nil {
			t, ok := ledger.ParseAccountType(g.Type)
			if !ok || t != *p.Type {
				continue
			}
		}
		gi := len(rep.Rows)
		rep.Rows = append(rep.Rows, TrialBalanceRow{Kind: RowKindGroup, Code: g.Code, Name: g.Name})
		for _, sg := range subsByGroup[g.ID] {
			si := len(rep.Rows)
			rep.Rows = append(rep.Rows, TrialBalanceRow{Kind: RowKindSubgroup, Code: sg.Code, Name: sg.Name})
			for _, a := range accountsBySubgroup[sg.ID] {
				debit, credit := Totals(byAccount[a.ID.String()])
				rep.Rows = append(rep.Rows, TrialBalanceRow{
					Kind:   RowKindAccount,
					Code:   a.Code,
					Name:   a.Name,
					Debit:  debit,
					Credit: credit,
				})
				rep.Rows[si].Debit = rep.Rows[si].Debit.Add(debit)
				rep.Rows[si].Credit = rep.Rows[si].Credit.Add(credit)
				rep.Rows[gi].Debit = rep.Rows[gi].Debit.Add(debit)
				rep.Rows[gi].Credit = rep.Rows[gi].Credit.Add(credit)
			}
		}
	}
	return rep, nil
}
