package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/odunsi/books/internal/ledger"
	"github.com/odunsi/books/internal/storage/memory"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return v
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return v
}

func dayPtr(t *testing.T, s string) *time.Time {
	t.Helper()
	v := day(t, s)
	return &v
}

// fixture is a small but complete bookkeeping world: the full set of
// account types (with the mixed-case and "COGS" aliases seen in real
// chart data), one unclassifiable suspense group, one orphan account, and
// a handful of posted plus one draft voucher.
type fixture struct {
	store *memory.Store
	acc   map[string]ledger.Account
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.New()
	f := &fixture{store: store, acc: map[string]ledger.Account{}}

	type groupDef struct {
		code, name, typ string
		order           int
	}
	groups := map[string]ledger.MainGroup{}
	for _, g := range []groupDef{
		{"1000", "Assets", "ASSET", 1},
		{"2000", "Liabilities", "Liability", 2},
		{"3000", "Equity", "equity", 3},
		{"4000", "Revenue", "Revenue", 4},
		{"5000", "Cost of Sales", "COGS", 5},
		{"6000", "Expenses", "expense", 6},
		{"9000", "Suspense", "weird", 9},
	} {
		mg := ledger.MainGroup{ID: uuid.New(), Code: g.code, Name: g.name, Type: g.typ, DisplayOrder: g.order}
		groups[g.code] = mg
		store.SeedMainGroup(mg)
	}

	type subDef struct{ code, name, group string }
	subs := map[string]ledger.Subgroup{}
	for _, sd := range []subDef{
		{"1100", "Current Assets", "1000"},
		{"1200", "Fixed Assets", "1000"},
		{"2100", "Current Liabilities", "2000"},
		{"3100", "Owner Equity", "3000"},
		{"4100", "Sales", "4000"},
		{"5100", "Direct Costs", "5000"},
		{"6100", "Operating Expenses", "6000"},
		{"9100", "Unsorted", "9000"},
	} {
		sg := ledger.Subgroup{ID: uuid.New(), Code: sd.code, Name: sd.name, MainGroupID: groups[sd.group].ID}
		subs[sd.code] = sg
		store.SeedSubgroup(sg)
	}

	type accDef struct{ code, name, opening, sub string }
	for _, ad := range []accDef{
		{"A-100", "Cash", "1000", "1100"},
		{"A-110", "Bank", "0", "1100"},
		{"A-200", "Equipment", "0", "1200"},
		{"L-100", "Accounts Payable", "0", "2100"},
		{"Q-100", "Owner Capital", "-1000", "3100"},
		{"R-100", "Sales Revenue", "0", "4100"},
		{"C-100", "Cost of Goods Sold", "0", "5100"},
		{"E-100", "Rent", "0", "6100"},
		{"E-110", "Utilities", "0", "6100"},
		{"X-100", "Suspense Item", "0", "9100"},
	} {
		a := ledger.Account{
			ID:             uuid.New(),
			Code:           ad.code,
			Name:           ad.name,
			OpeningBalance: dec(t, ad.opening),
			SubgroupID:     subs[ad.sub].ID,
		}
		f.acc[ad.code] = a
		store.SeedAccount(a)
	}
	// Orphan: its subgroup was deleted out from under it.
	orphan := ledger.Account{ID: uuid.New(), Code: "Z-999", Name: "Orphan", SubgroupID: uuid.New()}
	f.acc["Z-999"] = orphan
	store.SeedAccount(orphan)

	return f
}

// post seeds a posted two-line voucher: debit account, credit account.
func (f *fixture) post(t *testing.T, date, entryNo, desc, debitCode, creditCode, amount string) ledger.JournalEntry {
	t.Helper()
	return f.seed(t, date, entryNo, desc, debitCode, creditCode, amount, ledger.EntryStatusPosted)
}

func (f *fixture) seed(t *testing.T, date, entryNo, desc, debitCode, creditCode, amount string, status ledger.EntryStatus) ledger.JournalEntry {
	t.Helper()
	amt := dec(t, amount)
	e := ledger.JournalEntry{
		ID:          uuid.New(),
		EntryNo:     entryNo,
		Date:        day(t, date),
		Description: desc,
		Status:      status,
		Lines: []ledger.JournalLine{
			{AccountID: f.acc[debitCode].ID, Debit: amt, LineOrder: 1},
			{AccountID: f.acc[creditCode].ID, Credit: amt, LineOrder: 2},
		},
	}
	if !e.Balanced() {
		t.Fatalf("fixture entry %s is not balanced", entryNo)
	}
	return f.store.SeedEntry(e)
}

// standard posts the baseline voucher set shared by the report tests.
//
//	JE-1 2024-01-05  Cash 500 / Sales 500
//	JE-2 2024-01-10  Rent 200 / Cash 200
//	JE-3 2024-01-15  COGS 300 / Payable 300
//	JE-4 2024-01-20  Utilities 50 / Bank 50
//	JE-5 2024-01-25  Bank 80 / Utilities 80   (expense credited)
//	JE-6 2024-01-28  draft, must stay invisible
func (f *fixture) standard(t *testing.T) {
	t.Helper()
	f.post(t, "2024-01-05", "JE-1", "Cash sale", "A-100", "R-100", "500")
	f.post(t, "2024-01-10", "JE-2", "Office rent", "E-100", "A-100", "200")
	f.post(t, "2024-01-15", "JE-3", "Stock purchase", "C-100", "L-100", "300")
	f.post(t, "2024-01-20", "JE-4", "Utility bill", "E-110", "A-110", "50")
	f.post(t, "2024-01-25", "JE-5", "Utility refund", "A-110", "E-110", "80")
	f.seed(t, "2024-01-28", "JE-6", "Pending voucher", "A-100", "R-100", "999", ledger.EntryStatusDraft)
}

func (f *fixture) svc() *Service { return New(f.store) }
