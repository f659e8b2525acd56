package report

import (
	"github.com/google/uuid"

	"github.com/odunsi/books/internal/ledger"
)

// Resolver maps an account to its subgroup and main group in one lookup
// pass. It is built once per report from the flat reference lists so group
// rollups stay a plain fold; there is no class hierarchy behind accounts.
//
// Resolution fails silently (ok=false) rather than erroring: chart data is
// externally validated, but reports must degrade gracefully on partial
// setup data by excluding unresolvable accounts.
type Resolver struct {
	subgroups map[uuid.UUID]ledger.Subgroup
	groups    map[uuid.UUID]ledger.MainGroup
}

// NewResolver indexes the given main groups and subgroups.
func NewResolver(groups []ledger.MainGroup, subs []ledger.Subgroup) *Resolver {
	r := &Resolver{
		subgroups: make(map[uuid.UUID]ledger.Subgroup, len(subs)),
		groups:    make(map[uuid.UUID]ledger.MainGroup, len(groups)),
	}
	for _, g := range groups {
		r.groups[g.ID] = g
	}
	for _, sg := range subs {
		r.subgroups[sg.ID] = sg
	}
	return r
}

// Resolve returns the subgroup and main group owning the account.
// ok is false when either level is missing.
func (r *Resolver) Resolve(a ledger.Account) (ledger.Subgroup, ledger.MainGroup, bool) {
	sg, ok := r.subgroups[a.SubgroupID]
	if !ok {
		return ledger.Subgroup{}, ledger.MainGroup{}, false
	}
	g, ok := r.groups[sg.MainGroupID]
	if !ok {
		return ledger.Subgroup{}, ledger.MainGroup{}, false
	}
	return sg, g, true
}

// TypeOf resolves the account's hierarchy and classifies its main group.
// ok is false when the hierarchy is incomplete or the group type string is
// unrecognized; such accounts are excluded from type-scoped reports.
func (r *Resolver) TypeOf(a ledger.Account) (ledger.AccountType, bool) {
	_, g, ok := r.Resolve(a)
	if !ok {
		return "", false
	}
	return ledger.ParseAccountType(g.Type)
}
