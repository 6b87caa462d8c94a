package query

import (
	"sort"

	"openmat-server/models/venue"
)

// DaySession is one session with the venue offering it.
type DaySession struct {
	VenueID   string        `json:"venue_id"`
	VenueName string        `json:"venue_name"`
	Session   venue.Session `json:"session"`
}

// DayGroup is every session on one weekday.
type DayGroup struct {
	Day      venue.Weekday `json:"day"`
	Sessions []DaySession  `json:"sessions"`
}

// GroupByDay lists sessions day by day in business-week order, earliest
// start first within a day. Days without sessions are left out.
func GroupByDay(venues []venue.Venue) []DayGroup {
	byDay := make(map[venue.Weekday][]DaySession)
	for _, v := range venues {
		for _, s := range v.Sessions {
			byDay[s.Day] = append(byDay[s.Day], DaySession{VenueID: v.ID, VenueName: v.Name, Session: s})
		}
	}

	var groups []DayGroup
	for _, day := range venue.BusinessWeek {
		sessions := byDay[day]
		if len(sessions) == 0 {
			continue
		}
		sortDaySessions(sessions)
		groups = append(groups, DayGroup{Day: day, Sessions: sessions})
	}
	return groups
}

func sortDaySessions(sessions []DaySession) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Session.StartMinutes() < sessions[j].Session.StartMinutes()
	})
}
