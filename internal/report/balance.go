package report

import (
	"github.com/shopspring/decimal"

	"github.com/odunsi/books/internal/ledger"
)

// Totals reduces a set of journal lines to their debit and credit sums.
func Totals(lines []ledger.JournalLine) (debit, credit decimal.Decimal) {
	for _, ln := range lines {
		debit = debit.Add(ln.Debit)
		credit = credit.Add(ln.Credit)
	}
	return debit, credit
}

// Balance computes the type-aware signed balance for an account.
//
// Balance-sheet accounts (asset, liability, equity) carry the opening
// balance forward: opening + debit - credit. Period accounts (revenue,
// cost, expense) reset each period and ignore the opening balance:
// credit - debit. The two branches are deliberate; collapsing them into
// one formula inverts balance sheet and income statement signs.
//
// Individual line amounts are non-negative, but a balance may be negative
// (contra-asset, expense credit balance). Rendering negatives distinctly
// is the consumer's job.
func Balance(t ledger.AccountType, opening, debit, credit decimal.Decimal) decimal.Decimal {
	if t.IsBalanceSheetType() {
		return opening.Add(debit).Sub(credit)
	}
	return credit.Sub(debit)
}
