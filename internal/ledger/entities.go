package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType classifies a main group of the chart of accounts. The type
// drives the balance-sign convention: asset/liability/equity balances carry
// the opening balance forward, revenue/cost/expense are period accounts.
type AccountType string

const (
	// AccountTypeAsset increases on the debit side and holds owned resources.
	AccountTypeAsset AccountType = "asset"
	// AccountTypeLiability increases on the credit side and tracks obligations.
	AccountTypeLiability AccountType = "liability"
	// AccountTypeEquity captures the owner's residual interest.
	AccountTypeEquity AccountType = "equity"
	// AccountTypeRevenue represents inflows that increase equity.
	AccountTypeRevenue AccountType = "revenue"
	// AccountTypeCost represents the direct cost of goods or services sold.
	AccountTypeCost AccountType = "cost"
	// AccountTypeExpense represents operating outflows that decrease equity.
	AccountTypeExpense AccountType = "expense"
)

// ParseAccountType normalizes a raw main-group type string to a canonical
// AccountType. Matching is case-insensitive and "cogs" is accepted as an
// alias for cost. Unrecognized strings report ok=false; such groups are
// excluded from type-scoped reports but remain legal in generic listings.
func ParseAccountType(raw string) (AccountType, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "asset":
		return AccountTypeAsset, true
	case "liability":
		return AccountTypeLiability, true
	case "equity":
		return AccountTypeEquity, true
	case "revenue":
		return AccountTypeRevenue, true
	case "cost", "cogs":
		return AccountTypeCost, true
	case "expense":
		return AccountTypeExpense, true
	}
	return "", false
}

// IsBalanceSheetType reports whether accounts of this type carry their
// opening balance forward (asset, liability, equity).
func (t AccountType) IsBalanceSheetType() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity:
		return true
	}
	return false
}

// EntryStatus marks the lifecycle state of a journal entry.
type EntryStatus string

const (
	// EntryStatusDraft entries are invisible to every report.
	EntryStatusDraft EntryStatus = "draft"
	// EntryStatusPosted entries are finalized and participate in reporting.
	EntryStatusPosted EntryStatus = "posted"
)

// MainGroup is the top level of the chart-of-accounts hierarchy.
// Type is kept as the raw stored string; use ParseAccountType to classify.
type MainGroup struct {
	ID           uuid.UUID
	Code         string
	Name         string
	Type         string
	DisplayOrder int
}

// Subgroup is the middle level; it belongs to exactly one MainGroup.
type Subgroup struct {
	ID          uuid.UUID
	Code        string
	Name        string
	MainGroupID uuid.UUID
}

// Account is a postable leaf of the hierarchy, owned by exactly one Subgroup.
// OpeningBalance is signed: positive means a debit opening, negative a
// credit opening.
type Account struct {
	ID             uuid.UUID
	Code           string
	Name           string
	OpeningBalance decimal.Decimal
	SubgroupID     uuid.UUID
}

// JournalEntry is a voucher: a dated, numbered set of balancing lines.
// Entries are immutable once posted; the reporting engine never writes them.
type JournalEntry struct {
	ID          uuid.UUID
	EntryNo     string
	Date        time.Time
	Description string
	Status      EntryStatus
	Lines       []JournalLine
}

// Balanced reports whether the entry's lines net to zero
// (sum of debits equals sum of credits).
func (e JournalEntry) Balanced() bool {
	var debit, credit decimal.Decimal
	for _, ln := range e.Lines {
		debit = debit.Add(ln.Debit)
		credit = credit.Add(ln.Credit)
	}
	return debit.Equal(credit)
}

// JournalLine is one leg of a journal entry. Exactly one of Debit/Credit is
// nonzero and both are non-negative. Description, when set, overrides the
// entry description in listings. LineOrder is the tie-break for lines of the
// same entry.
type JournalLine struct {
	ID          uuid.UUID
	EntryID     uuid.UUID
	AccountID   uuid.UUID
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Description string
	LineOrder   int
	// Entry carries the owning journal entry on read paths so report
	// builders need no second lookup. Its Lines field is left empty.
	Entry JournalEntry
}

// Narration returns the line description, falling back to the owning
// entry's description when the line has none.
func (l JournalLine) Narration() string {
	if l.Description != "" {
		return l.Description
	}
	return l.Entry.Description
}
