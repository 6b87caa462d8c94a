package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openmat-server/models/venue"
)

// 2026-10-12 is a Monday.
var mondayTenAM = time.Date(2026, 10, 12, 10, 0, 0, 0, time.UTC)

func TestNextOccurrenceRank(t *testing.T) {
	cases := []struct {
		name     string
		sessions []venue.Session
		want     int
	}{
		{"earlier today wraps to next week", []venue.Session{{Day: venue.Monday, Time: "9am", Type: venue.Gi}}, 7},
		{"starting now wraps to next week", []venue.Session{{Day: venue.Monday, Time: "10:00 AM", Type: venue.Gi}}, 7},
		{"later today", []venue.Session{{Day: venue.Monday, Time: "6pm", Type: venue.Gi}}, 0},
		{"later today as a range", []venue.Session{{Day: venue.Monday, Time: "6:30 - 7:30 PM", Type: venue.Gi}}, 0},
		{"tomorrow", []venue.Session{{Day: venue.Tuesday, Time: "6am", Type: venue.Gi}}, 1},
		{"yesterday", []venue.Session{{Day: venue.Sunday, Time: "11am", Type: venue.Gi}}, 6},
		{"minimum over sessions", []venue.Session{
			{Day: venue.Saturday, Time: "11am", Type: venue.Gi},
			{Day: venue.Wednesday, Time: "7pm", Type: venue.NoGi},
		}, 2},
		{"no sessions", nil, NoSessionsRank},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := venue.Venue{Name: "Gym", Sessions: tc.sessions}
			assert.Equal(t, tc.want, NextOccurrenceRank(v, mondayTenAM))
		})
	}
}

func TestSortByNextOccurrence(t *testing.T) {
	venues := []venue.Venue{
		{Name: "Empty"},
		{Name: "Thursday", Sessions: []venue.Session{{Day: venue.Thursday, Time: "6pm", Type: venue.Gi}}},
		{Name: "Tonight", Sessions: []venue.Session{{Day: venue.Monday, Time: "7pm", Type: venue.Gi}}},
		{Name: "Also Thursday", Sessions: []venue.Session{{Day: venue.Thursday, Time: "7am", Type: venue.Gi}}},
		{Name: "This Morning", Sessions: []venue.Session{{Day: venue.Monday, Time: "6am", Type: venue.Gi}}},
	}

	got := SortByNextOccurrence(venues, mondayTenAM)

	require.Len(t, got, 5)
	assert.Equal(t, []string{"Tonight", "Thursday", "Also Thursday", "This Morning", "Empty"}, names(got))
	assert.Equal(t, "Empty", venues[0].Name, "input order untouched")

	again := SortByNextOccurrence(got, mondayTenAM)
	assert.Equal(t, names(got), names(again))
}

func names(venues []venue.Venue) []string {
	out := make([]string, len(venues))
	for i, v := range venues {
		out[i] = v.Name
	}
	return out
}
