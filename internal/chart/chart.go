package chart

// Package chart carries the curated default chart of accounts used by the
// dev seed and by storage tests. Group type strings are stored the way
// setup screens historically saved them (mixed case, "COGS"); the
// reporting engine normalizes them at the boundary.

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/odunsi/books/internal/ledger"
)

// GroupDef describes a default main group.
type GroupDef struct {
	Code         string
	Name         string
	Type         string
	DisplayOrder int
}

// SubgroupDef describes a default subgroup under a main group.
type SubgroupDef struct {
	Code      string
	Name      string
	GroupCode string
}

// AccountDef describes a default account under a subgroup.
type AccountDef struct {
	Code         string
	Name         string
	SubgroupCode string
	Opening      string
}

var MainGroups = []GroupDef{
	{Code: "1000", Name: "Assets", Type: "Asset", DisplayOrder: 1},
	{Code: "2000", Name: "Liabilities", Type: "Liability", DisplayOrder: 2},
	{Code: "3000", Name: "Equity", Type: "Equity", DisplayOrder: 3},
	{Code: "4000", Name: "Revenue", Type: "Revenue", DisplayOrder: 4},
	{Code: "5000", Name: "Cost of Sales", Type: "COGS", DisplayOrder: 5},
	{Code: "6000", Name: "Expenses", Type: "Expense", DisplayOrder: 6},
}

var Subgroups = []SubgroupDef{
	{Code: "1100", Name: "Current Assets", GroupCode: "1000"},
	{Code: "1200", Name: "Fixed Assets", GroupCode: "1000"},
	{Code: "2100", Name: "Current Liabilities", GroupCode: "2000"},
	{Code: "3100", Name: "Owner Equity", GroupCode: "3000"},
	{Code: "4100", Name: "Sales", GroupCode: "4000"},
	{Code: "5100", Name: "Direct Costs", GroupCode: "5000"},
	{Code: "6100", Name: "Operating Expenses", GroupCode: "6000"},
}

var Accounts = []AccountDef{
	{Code: "1101", Name: "Cash", SubgroupCode: "1100", Opening: "0"},
	{Code: "1102", Name: "Bank", SubgroupCode: "1100", Opening: "0"},
	{Code: "1103", Name: "Accounts Receivable", SubgroupCode: "1100", Opening: "0"},
	{Code: "1201", Name: "Equipment", SubgroupCode: "1200", Opening: "0"},
	{Code: "2101", Name: "Accounts Payable", SubgroupCode: "2100", Opening: "0"},
	{Code: "3101", Name: "Owner Capital", SubgroupCode: "3100", Opening: "0"},
	{Code: "4101", Name: "Sales Revenue", SubgroupCode: "4100", Opening: "0"},
	{Code: "5101", Name: "Cost of Goods Sold", SubgroupCode: "5100", Opening: "0"},
	{Code: "6101", Name: "Rent", SubgroupCode: "6100", Opening: "0"},
	{Code: "6102", Name: "Utilities", SubgroupCode: "6100", Opening: "0"},
}

// Build materializes the default chart into domain entities with fresh IDs
// and resolved ownership references.
func Build() ([]ledger.MainGroup, []ledger.Subgroup, []ledger.Account) {
	groups := make([]ledger.MainGroup, 0, len(MainGroups))
	groupIDs := make(map[string]uuid.UUID, len(MainGroups))
	for _, d := range MainGroups {
		g := ledger.MainGroup{ID: uuid.New(), Code: d.Code, Name: d.Name, Type: d.Type, DisplayOrder: d.DisplayOrder}
		groupIDs[d.Code] = g.ID
		groups = append(groups, g)
	}
	subs := make([]ledger.Subgroup, 0, len(Subgroups))
	subIDs := make(map[string]uuid.UUID, len(Subgroups))
	for _, d := range Subgroups {
		sg := ledger.Subgroup{ID: uuid.New(), Code: d.Code, Name: d.Name, MainGroupID: groupIDs[d.GroupCode]}
		subIDs[d.Code] = sg.ID
		subs = append(subs, sg)
	}
	accounts := make([]ledger.Account, 0, len(Accounts))
	for _, d := range Accounts {
		opening, _ := decimal.NewFromString(d.Opening)
		accounts = append(accounts, ledger.Account{
			ID:             uuid.New(),
			Code:           d.Code,
			Name:           d.Name,
			OpeningBalance: opening,
			SubgroupID:     subIDs[d.SubgroupCode],
		})
	}
	return groups, subs, accounts
}
