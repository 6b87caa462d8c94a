package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openmat-server/models"
	"openmat-server/models/venue"
)

func filterFixture() []venue.Venue {
	dropIn := 20.0
	return []venue.Venue{
		{ID: "1", Name: "Gi Only", Fee: 0, Coordinates: "27.9600,-82.4500", Sessions: []venue.Session{
			{Day: venue.Friday, Time: "6pm", Type: venue.Gi},
			{Day: venue.Saturday, Time: "11am", Type: venue.MMA},
		}},
		{ID: "2", Name: "Mixed", Fee: 15, DropInFee: &dropIn, Coordinates: "28.5383,-81.3792", Sessions: []venue.Session{
			{Day: venue.Friday, Time: "7pm", Type: venue.NoGi},
			{Day: venue.Sunday, Time: "10am", Type: venue.Both},
		}},
		{ID: "3", Name: "No Coordinates", Fee: 0, Sessions: []venue.Session{
			{Day: venue.Monday, Time: "6pm", Type: venue.NoGi},
		}},
		{ID: "4", Name: "Striking", Fee: 0, Sessions: []venue.Session{
			{Day: venue.Monday, Time: "6pm", Type: venue.MMA},
		}},
	}
}

func TestFilter_ZeroCriteriaKeepsEverything(t *testing.T) {
	in := filterFixture()
	got := Filter(in, models.FilterCriteria{})
	assert.Equal(t, in, got)
}

func TestFilter_FreeOnly(t *testing.T) {
	got := Filter(filterFixture(), models.FilterCriteria{FreeOnly: true})

	assert.Equal(t, []string{"Gi Only", "No Coordinates", "Striking"}, names(got))
	for _, v := range got {
		assert.Equal(t, 0.0, v.Fee)
	}
}

func TestFilter_GiNarrowsSessions(t *testing.T) {
	got := Filter(filterFixture(), models.FilterCriteria{Gi: true})

	require.Equal(t, []string{"Gi Only", "Mixed"}, names(got))
	assert.Equal(t, []venue.Session{{Day: venue.Friday, Time: "6pm", Type: venue.Gi}}, got[0].Sessions)
	assert.Equal(t, []venue.Session{{Day: venue.Sunday, Time: "10am", Type: venue.Both}}, got[1].Sessions)
}

func TestFilter_NoGi(t *testing.T) {
	got := Filter(filterFixture(), models.FilterCriteria{NoGi: true})

	require.Equal(t, []string{"Mixed", "No Coordinates"}, names(got))
	assert.Len(t, got[0].Sessions, 2)
}

func TestFilter_GiAndNoGi(t *testing.T) {
	got := Filter(filterFixture(), models.FilterCriteria{Gi: true, NoGi: true})

	require.Equal(t, []string{"Gi Only", "Mixed", "No Coordinates"}, names(got))
	assert.Equal(t, []venue.Session{{Day: venue.Friday, Time: "6pm", Type: venue.Gi}}, got[0].Sessions)
}

func TestFilter_Radius(t *testing.T) {
	radius := 5.0

	got := Filter(filterFixture(), models.FilterCriteria{RadiusMiles: &radius, Origin: &downtownTampa})
	assert.Equal(t, []string{"Gi Only"}, names(got))

	got = Filter(filterFixture(), models.FilterCriteria{RadiusMiles: &radius})
	assert.Len(t, got, 4, "radius without origin is inactive")
}

func TestFilter_RadiusExcludesNaNCoordinates(t *testing.T) {
	radius := 5.0
	in := append(filterFixture(), venue.Venue{ID: "5", Name: "Broken Pin", Coordinates: "NaN,NaN", Sessions: []venue.Session{
		{Day: venue.Monday, Time: "6pm", Type: venue.Gi},
	}})

	got := Filter(in, models.FilterCriteria{RadiusMiles: &radius, Origin: &downtownTampa})

	assert.Equal(t, []string{"Gi Only"}, names(got))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	in := filterFixture()
	before := filterFixture()

	got := Filter(in, models.FilterCriteria{Gi: true})
	got[0].Sessions[0].Time = "changed"

	assert.Equal(t, before, in)
}
