package query

import "openmat-server/models/venue"

// MergeByName collapses venues sharing a display name into one, concatenating
// their sessions and re-sorting them in business-week order. Applying it to
// its own output changes nothing.
func MergeByName(venues []venue.Venue) []venue.Venue {
	m := venue.NewMerger()
	for _, v := range venues {
		m.Add(v)
	}
	return m.Venues()
}

func cloneAll(venues []venue.Venue) []venue.Venue {
	out := make([]venue.Venue, len(venues))
	for i, v := range venues {
		out[i] = v.Clone()
	}
	return out
}
