package httpapi

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/odunsi/books/internal/ledger"
	"github.com/odunsi/books/internal/report"
)

type accountDTO struct {
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	SubgroupCode   string          `json:"subgroupCode,omitempty"`
	MainGroupCode  string          `json:"mainGroupCode,omitempty"`
	Type           string          `json:"type,omitempty"`
}

type groupDTO struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Type         string `json:"type,omitempty"`
	DisplayOrder int    `json:"displayOrder,omitempty"`
	GroupCode    string `json:"mainGroupCode,omitempty"`
}

// GET /v1/accounts?main_group=&subgroup=&account=
// Accounts are listed with their resolved hierarchy; accounts with
// incomplete setup data keep their row with the hierarchy fields empty.
func (s *Server) listAccounts(w http.ResponseWriter, r *http.Request) {
	f := ledger.AccountFilter{
		MainGroupCode: r.URL.Query().Get("main_group"),
		SubgroupCode:  r.URL.Query().Get("subgroup"),
		AccountCode:   r.URL.Query().Get("account"),
	}
	accounts, err := s.repo.ListAccounts(r.Context(), f)
	if err != nil {
		writeReportErr(w, err)
		return
	}
	groups, err := s.repo.ListMainGroups(r.Context())
	if err != nil {
		writeReportErr(w, err)
		return
	}
	subs, err := s.repo.ListSubgroups(r.Context())
	if err != nil {
		writeReportErr(w, err)
		return
	}
	res := report.NewResolver(groups, subs)

	out := make([]accountDTO, 0, len(accounts))
	for _, a := range accounts {
		dto := accountDTO{Code: a.Code, Name: a.Name, OpeningBalance: a.OpeningBalance}
		if sg, g, ok := res.Resolve(a); ok {
			dto.SubgroupCode = sg.Code
			dto.MainGroupCode = g.Code
			if t, ok := ledger.ParseAccountType(g.Type); ok {
				dto.Type = string(t)
			}
		}
		out = append(out, dto)
	}
	toJSON(w, http.StatusOK, out)
}

// GET /v1/main-groups
func (s *Server) listMainGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := s.repo.ListMainGroups(r.Context())
	if err != nil {
		writeReportErr(w, err)
		return
	}
	out := make([]groupDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, groupDTO{Code: g.Code, Name: g.Name, Type: g.Type, DisplayOrder: g.DisplayOrder})
	}
	toJSON(w, http.StatusOK, out)
}

// GET /v1/subgroups
func (s *Server) listSubgroups(w http.ResponseWriter, r *http.Request) {
	subs, err := s.repo.ListSubgroups(r.Context())
	if err != nil {
		writeReportErr(w, err)
		return
	}
	groups, err := s.repo.ListMainGroups(r.Context())
	if err != nil {
		writeReportErr(w, err)
		return
	}
	codeByID := make(map[string]string, len(groups))
	for _, g := range groups {
		codeByID[g.ID.String()] = g.Code
	}
	out := make([]groupDTO, 0, len(subs))
	for _, sg := range subs {
		out = append(out, groupDTO{Code: sg.Code, Name: sg.Name, GroupCode: codeByID[sg.MainGroupID.String()]})
	}
	toJSON(w, http.StatusOK, out)
}
