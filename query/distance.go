package query

import (
	"math"
	"sort"

	"openmat-server/models"
	"openmat-server/models/venue"
)

// EarthRadiusMiles is the sphere radius used for distances.
const EarthRadiusMiles = 3959.0

// Distance returns the haversine great-circle distance between two points in
// miles, rounded to one decimal place.
func Distance(origin, point models.Coordinates) float64 {
	lat1 := toRadians(origin.Lat)
	lat2 := toRadians(point.Lat)
	dLat := toRadians(point.Lat - origin.Lat)
	dLng := toRadians(point.Lng - origin.Lng)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(EarthRadiusMiles*c*10) / 10
}

// DistanceTo measures from origin to v. The second return is false when v
// has no usable coordinates.
func DistanceTo(v venue.Venue, origin models.Coordinates) (float64, bool) {
	if v.Coordinates == "" {
		return 0, false
	}
	point, err := models.ParseCoordinates(v.Coordinates)
	if err != nil {
		return 0, false
	}
	return Distance(origin, point), true
}

// SortByDistance orders venues nearest first. Venues whose distance cannot
// be measured go last, in input order.
func SortByDistance(venues []venue.Venue, origin models.Coordinates) []venue.Venue {
	type measured struct {
		v    venue.Venue
		dist float64
		ok   bool
	}
	items := make([]measured, len(venues))
	for i, v := range venues {
		d, ok := DistanceTo(v, origin)
		items[i] = measured{v: v.Clone(), dist: d, ok: ok}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].ok != items[j].ok {
			return items[i].ok
		}
		return items[i].ok && items[i].dist < items[j].dist
	})

	out := make([]venue.Venue, len(items))
	for i, it := range items {
		out[i] = it.v
	}
	return out
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
