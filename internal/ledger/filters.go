package ledger

import (
	"time"

	"github.com/google/uuid"
)

// AccountFilter narrows an account listing. Non-empty fields compose as AND:
// selecting a subgroup does not require its main group to also be selected.
type AccountFilter struct {
	MainGroupCode string
	SubgroupCode  string
	AccountCode   string
}

// LineFilter narrows a journal-line listing. From/To bound the owning
// entry's date inclusively. Search is a case-insensitive free-text match
// against the entry number, the entry description and the line description.
type LineFilter struct {
	AccountID  *uuid.UUID
	PostedOnly bool
	From       *time.Time
	To         *time.Time
	Search     string
}

// LineOrder selects the ordering of a journal-line listing.
type LineOrder int

const (
	// OrderDateAsc sorts by entry date ascending; ties keep the natural
	// storage order. This is the general-ledger ordering: it deliberately
	// does not fall back to LineOrder.
	OrderDateAsc LineOrder = iota
	// OrderDateDescLineOrder sorts by entry date descending, then by the
	// line's LineOrder ascending. This is the general-journal ordering.
	OrderDateDescLineOrder
)
