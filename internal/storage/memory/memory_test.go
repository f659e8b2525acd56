package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/odunsi/books/internal/ledger"
)

func seedWorld(t *testing.T) (*Store, map[string]ledger.Account) {
	t.Helper()
	s := New()

	assets := ledger.MainGroup{ID: uuid.New(), Code: "1000", Name: "Assets", Type: "Asset", DisplayOrder: 2}
	revenue := ledger.MainGroup{ID: uuid.New(), Code: "4000", Name: "Revenue", Type: "Revenue", DisplayOrder: 1}
	s.SeedMainGroup(assets)
	s.SeedMainGroup(revenue)

	current := ledger.Subgroup{ID: uuid.New(), Code: "1100", Name: "Current Assets", MainGroupID: assets.ID}
	sales := ledger.Subgroup{ID: uuid.New(), Code: "4100", Name: "Sales", MainGroupID: revenue.ID}
	s.SeedSubgroup(current)
	s.SeedSubgroup(sales)

	accs := map[string]ledger.Account{}
	for _, def := range []struct {
		code string
		sub  uuid.UUID
	}{
		{"1101", current.ID}, {"1102", current.ID}, {"4101", sales.ID},
	} {
		a := ledger.Account{ID: uuid.New(), Code: def.code, Name: def.code, SubgroupID: def.sub}
		accs[def.code] = a
		s.SeedAccount(a)
	}
	return s, accs
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func entry(no, desc string, d time.Time, status ledger.EntryStatus, debit, credit ledger.Account, amount int64) ledger.JournalEntry {
	amt := decimal.NewFromInt(amount)
	return ledger.JournalEntry{
		EntryNo: no, Date: d, Description: desc, Status: status,
		Lines: []ledger.JournalLine{
			{AccountID: debit.ID, Debit: amt, LineOrder: 1},
			{AccountID: credit.ID, Credit: amt, LineOrder: 2},
		},
	}
}

func TestListMainGroupsOrder(t *testing.T) {
	s, _ := seedWorld(t)
	groups, err := s.ListMainGroups(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	// Display order wins over code order.
	if groups[0].Code != "4000" || groups[1].Code != "1000" {
		t.Fatalf("order = %s, %s, want 4000, 1000", groups[0].Code, groups[1].Code)
	}
}

func TestListAccountsFilters(t *testing.T) {
	s, accs := seedWorld(t)
	ctx := context.Background()

	all, err := s.ListAccounts(ctx, ledger.AccountFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 || all[0].Code != "1101" || all[2].Code != "4101" {
		t.Fatalf("unfiltered = %+v", all)
	}

	got, err := s.ListAccounts(ctx, ledger.AccountFilter{MainGroupCode: "1000"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("main-group filter = %d accounts, want 2", len(got))
	}

	got, _ = s.ListAccounts(ctx, ledger.AccountFilter{SubgroupCode: "4100", AccountCode: "4101"})
	if len(got) != 1 || got[0].ID != accs["4101"].ID {
		t.Fatalf("combined filter = %+v", got)
	}

	// All set fields must match.
	got, _ = s.ListAccounts(ctx, ledger.AccountFilter{MainGroupCode: "1000", AccountCode: "4101"})
	if len(got) != 0 {
		t.Fatalf("contradictory filter = %+v, want none", got)
	}

	// An account whose subgroup is missing matches no hierarchy filter.
	orphan := ledger.Account{ID: uuid.New(), Code: "9999", SubgroupID: uuid.New()}
	s.SeedAccount(orphan)
	got, _ = s.ListAccounts(ctx, ledger.AccountFilter{MainGroupCode: "1000"})
	for _, a := range got {
		if a.Code == "9999" {
			t.Fatal("orphan matched a hierarchy filter")
		}
	}
}

func TestListJournalLinesFilters(t *testing.T) {
	s, accs := seedWorld(t)
	ctx := context.Background()

	s.SeedEntry(entry("JE-1", "First sale", date(t, "2024-03-01"), ledger.EntryStatusPosted, accs["1101"], accs["4101"], 100))
	s.SeedEntry(entry("JE-2", "Second sale", date(t, "2024-03-05"), ledger.EntryStatusPosted, accs["1102"], accs["4101"], 40))
	s.SeedEntry(entry("JE-3", "Draft sale", date(t, "2024-03-07"), ledger.EntryStatusDraft, accs["1101"], accs["4101"], 70))

	lines, err := s.ListJournalLines(ctx, ledger.LineFilter{PostedOnly: true}, ledger.OrderDateAsc)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 4 {
		t.Fatalf("posted lines = %d, want 4", len(lines))
	}
	// Flattened lines carry the entry header but not its line slice.
	if lines[0].Entry.EntryNo != "JE-1" || lines[0].Entry.Lines != nil {
		t.Fatalf("line 0 header = %+v", lines[0].Entry)
	}

	id := accs["4101"].ID
	lines, _ = s.ListJournalLines(ctx, ledger.LineFilter{PostedOnly: true, AccountID: &id}, ledger.OrderDateAsc)
	if len(lines) != 2 || !lines[0].Credit.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("account filter = %+v", lines)
	}

	from := date(t, "2024-03-05")
	lines, _ = s.ListJournalLines(ctx, ledger.LineFilter{PostedOnly: true, From: &from}, ledger.OrderDateAsc)
	if len(lines) != 2 || lines[0].Entry.EntryNo != "JE-2" {
		t.Fatalf("from filter = %+v", lines)
	}

	lines, _ = s.ListJournalLines(ctx, ledger.LineFilter{Search: "second"}, ledger.OrderDateAsc)
	if len(lines) != 2 || lines[0].Entry.EntryNo != "JE-2" {
		t.Fatalf("search = %+v", lines)
	}
}

func TestListJournalLinesOrdering(t *testing.T) {
	s, accs := seedWorld(t)
	ctx := context.Background()

	// Same-day entries seeded out of voucher-number order.
	s.SeedEntry(entry("JE-2", "Later voucher", date(t, "2024-03-01"), ledger.EntryStatusPosted, accs["1101"], accs["4101"], 10))
	s.SeedEntry(entry("JE-1", "Earlier voucher", date(t, "2024-03-01"), ledger.EntryStatusPosted, accs["1101"], accs["4101"], 20))
	s.SeedEntry(entry("JE-3", "Next day", date(t, "2024-03-02"), ledger.EntryStatusPosted, accs["1101"], accs["4101"], 30))

	// Ascending order keeps insertion order on equal dates.
	lines, err := s.ListJournalLines(ctx, ledger.LineFilter{}, ledger.OrderDateAsc)
	if err != nil {
		t.Fatal(err)
	}
	got := []string{lines[0].Entry.EntryNo, lines[2].Entry.EntryNo, lines[4].Entry.EntryNo}
	if got[0] != "JE-2" || got[1] != "JE-1" || got[2] != "JE-3" {
		t.Fatalf("asc order = %v, want [JE-2 JE-1 JE-3]", got)
	}

	// Descending order puts newest first with voucher line order inside.
	lines, _ = s.ListJournalLines(ctx, ledger.LineFilter{}, ledger.OrderDateDescLineOrder)
	if lines[0].Entry.EntryNo != "JE-3" || lines[0].LineOrder != 1 || lines[1].LineOrder != 2 {
		t.Fatalf("desc head = %+v", lines[0])
	}
}

func TestNextEntryNoAndReset(t *testing.T) {
	s := New()
	if got := s.NextEntryNo(); got != "JE-0001" {
		t.Fatalf("first entry no = %s", got)
	}
	if got := s.NextEntryNo(); got != "JE-0002" {
		t.Fatalf("second entry no = %s", got)
	}

	s.SeedMainGroup(ledger.MainGroup{ID: uuid.New(), Code: "1000"})
	s.Reset()
	groups, _ := s.ListMainGroups(context.Background())
	if len(groups) != 0 {
		t.Fatal("reset must clear groups")
	}
}
