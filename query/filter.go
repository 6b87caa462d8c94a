package query

import (
	"openmat-server/models"
	"openmat-server/models/venue"
)

// Filter keeps the venues matching every active criterion.
//
// With the gi and/or no-gi flag set, a venue needs at least one session of a
// requested type or a "both" session, and its sessions are narrowed to those.
// FreeOnly keeps venues with a zero base fee. The radius filter applies only
// when both a radius and an origin are given, and then drops venues whose
// coordinates are missing or unreadable.
func Filter(venues []venue.Venue, criteria models.FilterCriteria) []venue.Venue {
	radiusActive := criteria.RadiusMiles != nil && criteria.Origin != nil

	out := make([]venue.Venue, 0, len(venues))
	for _, v := range venues {
		if criteria.FreeOnly && !v.IsFree() {
			continue
		}
		if radiusActive {
			d, ok := DistanceTo(v, *criteria.Origin)
			if !ok || d > *criteria.RadiusMiles {
				continue
			}
		}

		kept := v.Clone()
		if criteria.Gi || criteria.NoGi {
			kept.Sessions = matchingSessions(v.Sessions, criteria.Gi, criteria.NoGi)
			if len(kept.Sessions) == 0 {
				continue
			}
		}
		out = append(out, kept)
	}
	return out
}

func matchingSessions(sessions []venue.Session, gi, nogi bool) []venue.Session {
	var out []venue.Session
	for _, s := range sessions {
		switch s.Type {
		case venue.Both:
			out = append(out, s)
		case venue.Gi:
			if gi {
				out = append(out, s)
			}
		case venue.NoGi:
			if nogi {
				out = append(out, s)
			}
		}
	}
	return out
}
