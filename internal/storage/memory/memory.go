package memory

// Package memory provides a simple in-memory repository used for
// development and tests. It keeps code paths easy to follow while allowing
// a real database to be plugged in behind the same interface.

import (
	"context"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/odunsi/books/internal/ledger"
)

// Store is an in-memory implementation of report.Repo. It is guarded by an
// RWMutex for concurrent reads; entries keep their insertion order, which
// is the "natural storage order" tie-break of the ledgers view.
type Store struct {
	mu         sync.RWMutex
	mainGroups map[uuid.UUID]ledger.MainGroup
	subgroups  map[uuid.UUID]ledger.Subgroup
	accounts   map[uuid.UUID]ledger.Account
	entries    []ledger.JournalEntry
	entrySeq   atomic.Int64
}

// New constructs an empty in-memory store.
func New() *Store {
	return &Store{
		mainGroups: make(map[uuid.UUID]ledger.MainGroup),
		subgroups:  make(map[uuid.UUID]ledger.Subgroup),
		accounts:   make(map[uuid.UUID]ledger.Account),
	}
}

// Seed helpers for local dev/tests.

func (s *Store) SeedMainGroup(g ledger.MainGroup) {
	s.mu.Lock()
	s.mainGroups[g.ID] = g
	s.mu.Unlock()
}

func (s *Store) SeedSubgroup(sg ledger.Subgroup) {
	s.mu.Lock()
	s.subgroups[sg.ID] = sg
	s.mu.Unlock()
}

func (s *Store) SeedAccount(a ledger.Account) {
	s.mu.Lock()
	s.accounts[a.ID] = a
	s.mu.Unlock()
}

// SeedEntry appends a journal entry. Line IDs and entry references are
// filled in when missing so fixtures stay terse.
func (s *Store) SeedEntry(e ledger.JournalEntry) ledger.JournalEntry {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	for i := range e.Lines {
		if e.Lines[i].ID == uuid.Nil {
			e.Lines[i].ID = uuid.New()
		}
		e.Lines[i].EntryID = e.ID
	}
	s.mu.Lock()
	s.entries = append(s.entries, e)
	s.mu.Unlock()
	return e
}

// NextEntryNo hands out sequential voucher numbers for seeds.
func (s *Store) NextEntryNo() string {
	n := s.entrySeq.Add(1)
	return "JE-" + pad4(n)
}

// Reset clears all data.
func (s *Store) Reset() {
	s.mu.Lock()
	s.mainGroups = map[uuid.UUID]ledger.MainGroup{}
	s.subgroups = map[uuid.UUID]ledger.Subgroup{}
	s.accounts = map[uuid.UUID]ledger.Account{}
	s.entries = nil
	s.mu.Unlock()
}

// ListMainGroups returns main groups ordered by display order, then code.
func (s *Store) ListMainGroups(_ context.Context) ([]ledger.MainGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ledger.MainGroup, 0, len(s.mainGroups))
	for _, g := range s.mainGroups {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].Code < out[j].Code
	})
	return out, nil
}

// ListSubgroups returns subgroups ordered by code.
func (s *Store) ListSubgroups(_ context.Context) ([]ledger.Subgroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ledger.Subgroup, 0, len(s.subgroups))
	for _, sg := range s.subgroups {
		out = append(out, sg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

// ListAccounts returns accounts matching the filter, ordered by code. The
// main-group and subgroup code filters are resolved through the hierarchy
// joins; all set fields must match.
func (s *Store) ListAccounts(_ context.Context, f ledger.AccountFilter) ([]ledger.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ledger.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		if f.AccountCode != "" && a.Code != f.AccountCode {
			continue
		}
		if f.SubgroupCode != "" || f.MainGroupCode != "" {
			sg, ok := s.subgroups[a.SubgroupID]
			if !ok {
				continue
			}
			if f.SubgroupCode != "" && sg.Code != f.SubgroupCode {
				continue
			}
			if f.MainGroupCode != "" {
				g, ok := s.mainGroups[sg.MainGroupID]
				if !ok || g.Code != f.MainGroupCode {
					continue
				}
			}
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

// ListJournalLines flattens matching entries into lines, each carrying its
// owning entry header. OrderDateAsc keeps insertion order on equal dates;
// OrderDateDescLineOrder orders within an entry by line order.
func (s *Store) ListJournalLines(_ context.Context, f ledger.LineFilter, order ledger.LineOrder) ([]ledger.JournalLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []ledger.JournalLine
	for _, e := range s.entries {
		if f.PostedOnly && e.Status != ledger.EntryStatusPosted {
			continue
		}
		if f.From != nil && e.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && e.Date.After(*f.To) {
			continue
		}
		header := e
		header.Lines = nil
		for _, ln := range e.Lines {
			if f.AccountID != nil && ln.AccountID != *f.AccountID {
				continue
			}
			if f.Search != "" && !matchesSearch(e, ln, f.Search) {
				continue
			}
			ln.Entry = header
			out = append(out, ln)
		}
	}
	switch order {
	case ledger.OrderDateDescLineOrder:
		sort.SliceStable(out, func(i, j int) bool {
			if !out[i].Entry.Date.Equal(out[j].Entry.Date) {
				return out[i].Entry.Date.After(out[j].Entry.Date)
			}
			return out[i].LineOrder < out[j].LineOrder
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Entry.Date.Before(out[j].Entry.Date)
		})
	}
	return out, nil
}

// matchesSearch is a case-insensitive contains over the entry number and
// both description fields.
func matchesSearch(e ledger.JournalEntry, ln ledger.JournalLine, q string) bool {
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(e.EntryNo), q) ||
		strings.Contains(strings.ToLower(e.Description), q) ||
		strings.Contains(strings.ToLower(ln.Description), q)
}

func pad4(n int64) string {
	var buf [4]byte
	for i := 3; i >= 0; i-- {
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[:])
}
