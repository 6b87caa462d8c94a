package models

// FilterCriteria selects venues from a schedule. Zero value matches
// everything.
type FilterCriteria struct {
	Gi          bool
	NoGi        bool
	FreeOnly    bool
	RadiusMiles *float64
	Origin      *Coordinates
}
