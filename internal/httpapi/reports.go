package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/odunsi/books/internal/ledger"
	"github.com/odunsi/books/internal/report"
)

// parseDateParam reads an optional YYYY-MM-DD query parameter. A malformed
// date is an error, never a silent default: swallowing it would quietly
// change the report scope. Upper bounds advance to the end of the day so
// the range stays date-inclusive for intra-day timestamps.
func parseDateParam(r *http.Request, name string, endOfDay bool) (*time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, false
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, true
}

// parsePaging reads page/limit with defaults 1/50. Values below 1 are
// rejected rather than clamped.
func parsePaging(r *http.Request) (page, limit int, ok bool) {
	page, limit = 1, 50
	if raw := r.URL.Query().Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return 0, 0, false
		}
		page = n
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return 0, 0, false
		}
		limit = n
	}
	return page, limit, true
}

// GET /v1/reports/trial-balance?from=&to=&type=&page=&limit=
func (s *Server) trialBalance(w http.ResponseWriter, r *http.Request) {
	from, ok := parseDateParam(r, "from", false)
	if !ok {
		badRequest(w, "invalid from date")
		return
	}
	to, ok := parseDateParam(r, "to", true)
	if !ok {
		badRequest(w, "invalid to date")
		return
	}
	params := report.TrialBalanceParams{From: from, To: to}
	if raw := r.URL.Query().Get("type"); raw != "" {
		t, ok := ledger.ParseAccountType(raw)
		if !ok {
			badRequest(w, "unknown account type")
			return
		}
		params.Type = &t
	}

	rep, err := s.svc.TrialBalance(r.Context(), params)
	if err != nil {
		writeReportErr(w, err)
		return
	}
	totalDebit, totalCredit := rep.AccountTotals()
	resp := trialBalanceResponse{
		From:        formatDatePtr(from),
		To:          formatDatePtr(to),
		Rows:        make([]trialBalanceRowDTO, 0, len(rep.Rows)),
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		Balanced:    totalDebit.Equal(totalCredit),
	}
	for _, row := range rep.Rows {
		resp.Rows = append(resp.Rows, trialBalanceRowDTO(row))
	}
	if r.URL.Query().Get("page") != "" || r.URL.Query().Get("limit") != "" {
		page, limit, ok := parsePaging(r)
		if !ok {
			badRequest(w, "page and limit must be positive integers")
			return
		}
		paged := report.Paginate(resp.Rows, page, limit)
		resp.Rows = paged.Data
		resp.Pagination = &paged.Pagination
	}
	toJSON(w, http.StatusOK, resp)
}

// GET /v1/reports/balance-sheet?as_of=
// The engine returns raw signed balances; this handler applies the
// credit-normal display convention to liabilities and equity and runs the
// accounting-identity check. A discrepancy is reported, never rejected.
func (s *Server) balanceSheet(w http.ResponseWriter, r *http.Request) {
	asOfPtr, ok := parseDateParam(r, "as_of", true)
	if !ok {
		badRequest(w, "invalid as_of date")
		return
	}
	asOf := time.Now().UTC()
	if asOfPtr != nil {
		asOf = *asOfPtr
	}

	rep, err := s.svc.BalanceSheet(r.Context(), asOf)
	if err != nil {
		writeReportErr(w, err)
		return
	}
	resp := balanceSheetResponse{
		AsOf:        asOf.Format(dateLayout),
		Assets:      make([]accountLineDTO, 0, len(rep.Assets)),
		Liabilities: make([]accountLineDTO, 0, len(rep.Liabilities)),
		OwnerEquity: rep.OwnerEquity.Neg(),
	}
	for _, a := range rep.Assets {
		resp.Assets = append(resp.Assets, accountLineDTO(a))
		resp.TotalAssets = resp.TotalAssets.Add(a.Balance)
	}
	for _, l := range rep.Liabilities {
		bal := l.Balance.Neg()
		resp.Liabilities = append(resp.Liabilities, accountLineDTO{Code: l.Code, Name: l.Name, Balance: bal})
		resp.TotalLiabilities = resp.TotalLiabilities.Add(bal)
	}
	resp.Discrepancy = resp.TotalAssets.Sub(resp.TotalLiabilities.Add(resp.OwnerEquity))
	resp.Balanced = resp.Discrepancy.IsZero()
	toJSON(w, http.StatusOK, resp)
}

// GET /v1/reports/income-statement?from=&to=
// Raw builder amounts are credit-minus-debit; cost and expense sections
// are displayed debit-positive and the derived figures follow from the
// displayed totals.
func (s *Server) incomeStatement(w http.ResponseWriter, r *http.Request) {
	from, ok := parseDateParam(r, "from", false)
	if !ok || from == nil {
		badRequest(w, "from date is required (YYYY-MM-DD)")
		return
	}
	to, ok := parseDateParam(r, "to", true)
	if !ok || to == nil {
		badRequest(w, "to date is required (YYYY-MM-DD)")
		return
	}

	rep, err := s.svc.IncomeStatement(r.Context(), *from, *to)
	if err != nil {
		writeReportErr(w, err)
		return
	}
	resp := incomeStatementResponse{
		From:    from.Format(dateLayout),
		To:      to.Format(dateLayout),
		Revenue: make([]accountLineDTO, 0, len(rep.Revenue)),
		Cost:    make([]accountLineDTO, 0, len(rep.Cost)),
		Expense: make([]accountLineDTO, 0, len(rep.Expense)),
	}
	for _, a := range rep.Revenue {
		resp.Revenue = append(resp.Revenue, accountLineDTO(a))
		resp.TotalRevenue = resp.TotalRevenue.Add(a.Balance)
	}
	resp.TotalCost = appendNegated(&resp.Cost, rep.Cost)
	resp.TotalExpense = appendNegated(&resp.Expense, rep.Expense)
	resp.GrossProfit = resp.TotalRevenue.Sub(resp.TotalCost)
	resp.NetIncome = resp.GrossProfit.Sub(resp.TotalExpense)
	toJSON(w, http.StatusOK, resp)
}

// appendNegated flips a period section to its debit-positive display sign
// and returns the section total. Sign is preserved: a credit-heavy expense
// account comes out negative.
func appendNegated(dst *[]accountLineDTO, src []report.AccountBalance) decimal.Decimal {
	var total decimal.Decimal
	for _, a := range src {
		bal := a.Balance.Neg()
		*dst = append(*dst, accountLineDTO{Code: a.Code, Name: a.Name, Balance: bal})
		total = total.Add(bal)
	}
	return total
}

// GET /v1/reports/journal?from=&to=&q=&page=&limit=
func (s *Server) generalJournal(w http.ResponseWriter, r *http.Request) {
	from, ok := parseDateParam(r, "from", false)
	if !ok {
		badRequest(w, "invalid from date")
		return
	}
	to, ok := parseDateParam(r, "to", true)
	if !ok {
		badRequest(w, "invalid to date")
		return
	}
	page, limit, ok := parsePaging(r)
	if !ok {
		badRequest(w, "page and limit must be positive integers")
		return
	}

	rows, err := s.svc.GeneralJournal(r.Context(), report.JournalParams{
		From:   from,
		To:     to,
		Search: r.URL.Query().Get("q"),
	})
	if err != nil {
		writeReportErr(w, err)
		return
	}
	dtos := make([]journalRowDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, toJournalRowDTO(row))
	}
	toJSON(w, http.StatusOK, report.Paginate(dtos, page, limit))
}

// GET /v1/reports/ledgers?main_group=&subgroup=&account=&from=&to=&page=&limit=
func (s *Server) ledgers(w http.ResponseWriter, r *http.Request) {
	from, ok := parseDateParam(r, "from", false)
	if !ok {
		badRequest(w, "invalid from date")
		return
	}
	to, ok := parseDateParam(r, "to", true)
	if !ok {
		badRequest(w, "invalid to date")
		return
	}
	page, limit, ok := parsePaging(r)
	if !ok {
		badRequest(w, "page and limit must be positive integers")
		return
	}

	rows, err := s.svc.Ledgers(r.Context(), report.LedgerParams{
		MainGroupCode: r.URL.Query().Get("main_group"),
		SubgroupCode:  r.URL.Query().Get("subgroup"),
		AccountCode:   r.URL.Query().Get("account"),
		From:          from,
		To:            to,
	})
	if err != nil {
		writeReportErr(w, err)
		return
	}
	dtos := make([]ledgerRowDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, toLedgerRowDTO(row))
	}
	// Pagination slices the flat sequence; a page boundary may fall inside
	// one account's transaction list.
	toJSON(w, http.StatusOK, report.Paginate(dtos, page, limit))
}
