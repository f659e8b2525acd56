package httpapi

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/odunsi/books/internal/report"
)

// dateLayout is the wire format for report dates.
const dateLayout = "2006-01-02"

type trialBalanceRowDTO struct {
	Kind   report.TrialBalanceRowKind `json:"kind"`
	Code   string                     `json:"code"`
	Name   string                     `json:"name"`
	Debit  decimal.Decimal            `json:"debit"`
	Credit decimal.Decimal            `json:"credit"`
}

type trialBalanceResponse struct {
	From *string `json:"from,omitempty"`
	To   *string `json:"to,omitempty"`
	// Rows tagged group/subgroup/account in document order.
	Rows []trialBalanceRowDTO `json:"rows"`
	// Totals sum account rows only; summary rows are excluded so the
	// balance check is not double-counted.
	TotalDebit  decimal.Decimal    `json:"totalDebit"`
	TotalCredit decimal.Decimal    `json:"totalCredit"`
	Balanced    bool               `json:"balanced"`
	Pagination  *report.Pagination `json:"pagination,omitempty"`
}

type accountLineDTO struct {
	Code    string          `json:"code"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// balanceSheetResponse shows liabilities and equity in their credit-normal
// display sign (positive = normal balance). Balanced is informational; an
// out-of-balance ledger is a legitimate report, not an error.
type balanceSheetResponse struct {
	AsOf             string           `json:"asOf"`
	Assets           []accountLineDTO `json:"assets"`
	Liabilities      []accountLineDTO `json:"liabilities"`
	OwnerEquity      decimal.Decimal  `json:"ownerEquity"`
	TotalAssets      decimal.Decimal  `json:"totalAssets"`
	TotalLiabilities decimal.Decimal  `json:"totalLiabilities"`
	Balanced         bool             `json:"balanced"`
	Discrepancy      decimal.Decimal  `json:"discrepancy"`
}

// incomeStatementResponse shows cost and expense amounts debit-positive
// (cost incurred), so a credit-heavy expense account is negative here.
type incomeStatementResponse struct {
	From         string           `json:"from"`
	To           string           `json:"to"`
	Revenue      []accountLineDTO `json:"revenue"`
	Cost         []accountLineDTO `json:"cost"`
	Expense      []accountLineDTO `json:"expense"`
	TotalRevenue decimal.Decimal  `json:"totalRevenue"`
	TotalCost    decimal.Decimal  `json:"totalCost"`
	TotalExpense decimal.Decimal  `json:"totalExpense"`
	GrossProfit  decimal.Decimal  `json:"grossProfit"`
	NetIncome    decimal.Decimal  `json:"netIncome"`
}

type journalRowDTO struct {
	EntryNo     string          `json:"entryNo"`
	Date        string          `json:"date"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

type ledgerRowDTO struct {
	AccountCode string           `json:"accountCode"`
	AccountName string           `json:"accountName"`
	Opening     bool             `json:"opening"`
	EntryNo     string           `json:"entryNo,omitempty"`
	Date        *string          `json:"date,omitempty"`
	Description string           `json:"description"`
	Debit       *decimal.Decimal `json:"debit"`
	Credit      *decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal  `json:"balance"`
}

func toJournalRowDTO(r report.JournalRow) journalRowDTO {
	return journalRowDTO{
		EntryNo:     r.EntryNo,
		Date:        r.Date.Format(dateLayout),
		AccountCode: r.AccountCode,
		AccountName: r.AccountName,
		Description: r.Description,
		Debit:       r.Debit,
		Credit:      r.Credit,
	}
}

func toLedgerRowDTO(r report.LedgerRow) ledgerRowDTO {
	dto := ledgerRowDTO{
		AccountCode: r.AccountCode,
		AccountName: r.AccountName,
		Opening:     r.Opening,
		EntryNo:     r.EntryNo,
		Description: r.Description,
		Debit:       r.Debit,
		Credit:      r.Credit,
		Balance:     r.Balance,
	}
	if r.Date != nil {
		d := r.Date.Format(dateLayout)
		dto.Date = &d
	}
	return dto
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
