package report

import (
	"testing"

	"github.com/odunsi/books/internal/ledger"
)

func TestTotals(t *testing.T) {
	lines := []ledger.JournalLine{
		{Debit: dec(t, "100")},
		{Credit: dec(t, "40")},
		{Debit: dec(t, "0.25")},
	}
	debit, credit := Totals(lines)
	if !debit.Equal(dec(t, "100.25")) || !credit.Equal(dec(t, "40")) {
		t.Fatalf("Totals = (%s, %s), want (100.25, 40)", debit, credit)
	}

	debit, credit = Totals(nil)
	if !debit.IsZero() || !credit.IsZero() {
		t.Fatalf("Totals(nil) = (%s, %s), want zeros", debit, credit)
	}
}

func TestBalanceSignConvention(t *testing.T) {
	opening := dec(t, "1000")
	debit := dec(t, "500")
	credit := dec(t, "200")

	// Balance-sheet types fold the opening balance in.
	for _, typ := range []ledger.AccountType{ledger.AccountTypeAsset, ledger.AccountTypeLiability, ledger.AccountTypeEquity} {
		got := Balance(typ, opening, debit, credit)
		if !got.Equal(dec(t, "1300")) {
			t.Errorf("Balance(%s) = %s, want 1300", typ, got)
		}
	}
	// Period types ignore it and run credit-minus-debit.
	for _, typ := range []ledger.AccountType{ledger.AccountTypeRevenue, ledger.AccountTypeCost, ledger.AccountTypeExpense} {
		got := Balance(typ, opening, debit, credit)
		if !got.Equal(dec(t, "-300")) {
			t.Errorf("Balance(%s) = %s, want -300", typ, got)
		}
	}
}

func TestBalanceMayGoNegative(t *testing.T) {
	// Contra-asset: more credits than debits, opening zero.
	got := Balance(ledger.AccountTypeAsset, dec(t, "0"), dec(t, "100"), dec(t, "250"))
	if !got.Equal(dec(t, "-150")) {
		t.Fatalf("contra-asset balance = %s, want -150", got)
	}
	// Expense credit balance stays positive in raw credit-minus-debit form.
	got = Balance(ledger.AccountTypeExpense, dec(t, "0"), dec(t, "50"), dec(t, "80"))
	if !got.Equal(dec(t, "30")) {
		t.Fatalf("expense credit balance = %s, want 30", got)
	}
}
