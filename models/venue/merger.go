package venue

import "strings"

// Merger accumulates venue records keyed by display name. Records that share
// a name are one venue: the first record's fields win, later records only
// fill fields that are still empty, and sessions are concatenated.
//
// Nothing added to a Merger is aliased by the venues it returns.
type Merger struct {
	order  []string
	drafts map[string]*Venue
}

// NewMerger returns an empty Merger.
func NewMerger() *Merger {
	return &Merger{drafts: make(map[string]*Venue)}
}

// MergeKey is the de-duplication key for a venue name.
func MergeKey(name string) string {
	return strings.TrimSpace(name)
}

// Add folds v into the accumulated set.
func (m *Merger) Add(v Venue) {
	key := MergeKey(v.Name)
	draft, ok := m.drafts[key]
	if !ok {
		c := v.Clone()
		m.drafts[key] = &c
		m.order = append(m.order, key)
		return
	}

	if draft.ID == "" {
		draft.ID = v.ID
	}
	if draft.Address == "" {
		draft.Address = v.Address
	}
	if draft.Website == "" {
		draft.Website = v.Website
	}
	if draft.Phone == "" {
		draft.Phone = v.Phone
	}
	if draft.Distance == "" {
		draft.Distance = v.Distance
	}
	if draft.Coordinates == "" {
		draft.Coordinates = v.Coordinates
	}
	if draft.DropInFee == nil && v.DropInFee != nil {
		fee := *v.DropInFee
		draft.DropInFee = &fee
	}
	if draft.LastUpdated == nil && v.LastUpdated != nil {
		date := *v.LastUpdated
		draft.LastUpdated = &date
	}
	draft.Sessions = append(draft.Sessions, v.Sessions...)
}

// Venues finalizes the accumulated set in first-seen order, with each
// venue's sessions in business-week order.
func (m *Merger) Venues() []Venue {
	out := make([]Venue, 0, len(m.order))
	for _, key := range m.order {
		v := m.drafts[key].Clone()
		v.Sessions = SortSessions(v.Sessions)
		out = append(out, v)
	}
	return out
}
