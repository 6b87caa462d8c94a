package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openmat-server/models/venue"
)

func TestMergeByName(t *testing.T) {
	venues := []venue.Venue{
		{ID: "a", Name: "Gym", Sessions: []venue.Session{{Day: venue.Monday, Time: "6pm", Type: venue.Gi}}},
		{ID: "b", Name: "Other"},
		{ID: "c", Name: "Gym", Phone: "555-0100", Sessions: []venue.Session{{Day: venue.Saturday, Time: "11am", Type: venue.NoGi}}},
	}

	got := MergeByName(venues)

	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "555-0100", got[0].Phone)
	assert.Equal(t, []venue.Session{
		{Day: venue.Saturday, Time: "11am", Type: venue.NoGi},
		{Day: venue.Monday, Time: "6pm", Type: venue.Gi},
	}, got[0].Sessions)
	assert.Equal(t, got, MergeByName(got))
}

func TestGroupByDay(t *testing.T) {
	venues := []venue.Venue{
		{ID: "1", Name: "One", Sessions: []venue.Session{
			{Day: venue.Monday, Time: "7pm", Type: venue.Gi},
			{Day: venue.Friday, Time: "6pm", Type: venue.NoGi},
		}},
		{ID: "2", Name: "Two", Sessions: []venue.Session{
			{Day: venue.Monday, Time: "6am", Type: venue.Both},
		}},
	}

	got := GroupByDay(venues)

	require.Len(t, got, 2)
	assert.Equal(t, venue.Friday, got[0].Day)
	assert.Equal(t, venue.Monday, got[1].Day)
	require.Len(t, got[1].Sessions, 2)
	assert.Equal(t, "Two", got[1].Sessions[0].VenueName)
	assert.Equal(t, "One", got[1].Sessions[1].VenueName)
}
