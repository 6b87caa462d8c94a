package query

import (
	"sort"
	"time"

	"openmat-server/models/venue"
)

// NoSessionsRank is the rank of a venue without any sessions. It is larger
// than any real rank so such venues sort last.
const NoSessionsRank = 8

// NextOccurrenceRank is the number of days from now until v's next session,
// 0 through 7. A session earlier today, or starting right now, counts as next
// week's (7).
func NextOccurrenceRank(v venue.Venue, now time.Time) int {
	today := now.Weekday()
	nowMinutes := now.Hour()*60 + now.Minute()

	rank := NoSessionsRank
	for _, s := range v.Sessions {
		wd, ok := s.Day.TimeWeekday()
		if !ok {
			continue
		}
		offset := (int(wd) - int(today) + 7) % 7
		if offset == 0 && s.StartMinutes() <= nowMinutes {
			offset = 7
		}
		if offset < rank {
			rank = offset
		}
	}
	return rank
}

// SortByNextOccurrence orders venues by NextOccurrenceRank, ascending. Venues
// with equal rank keep their input order.
func SortByNextOccurrence(venues []venue.Venue, now time.Time) []venue.Venue {
	out := cloneAll(venues)
	ranks := make([]int, len(out))
	for i := range out {
		ranks[i] = NextOccurrenceRank(out[i], now)
	}
	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return ranks[idx[a]] < ranks[idx[b]]
	})

	sorted := make([]venue.Venue, len(out))
	for i, j := range idx {
		sorted[i] = out[j]
	}
	return sorted
}
