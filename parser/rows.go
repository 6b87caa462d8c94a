package parser

import (
	"strings"

	"openmat-server/models/venue"
)

// scheduleRow is one decoded sheet row: a LongFormatRow or a WideFormatRow.
type scheduleRow interface {
	lineNumber() int
	toVenue() venue.Venue
}

// venueFields are the per-venue columns both variants share.
type venueFields struct {
	ID          string
	Name        string
	Address     string
	Distance    string
	Fee         float64
	DropInFee   *float64
	Website     string
	Phone       string
	Coordinates string
	LastUpdated *string
}

func (f venueFields) build(sessions []venue.Session) venue.Venue {
	return venue.Venue{
		ID:          f.ID,
		Name:        f.Name,
		Address:     f.Address,
		Website:     f.Website,
		Phone:       f.Phone,
		Distance:    f.Distance,
		Fee:         f.Fee,
		DropInFee:   f.DropInFee,
		Coordinates: f.Coordinates,
		LastUpdated: f.LastUpdated,
		Sessions:    sessions,
	}
}

// LongFormatRow holds one session occurrence.
type LongFormatRow struct {
	Line int
	venueFields
	Session venue.Session
}

func (r LongFormatRow) lineNumber() int { return r.Line }

func (r LongFormatRow) toVenue() venue.Venue {
	return r.build([]venue.Session{r.Session})
}

// WideFormatRow holds a whole venue with its sessions for every weekday.
type WideFormatRow struct {
	Line int
	venueFields
	Sessions []venue.Session
}

func (r WideFormatRow) lineNumber() int { return r.Line }

func (r WideFormatRow) toVenue() venue.Venue {
	return r.build(append([]venue.Session(nil), r.Sessions...))
}

// rowDecoder turns split fields into a row. A nil row means the row is
// skipped; the returned errors explain why, or list cells dropped from a
// kept row.
type rowDecoder func(line int, fields []string, cols columnIndex) (scheduleRow, []*RowError)

func decodeVenueFields(line int, fields []string, cols columnIndex) (venueFields, *RowError) {
	f := venueFields{
		ID:          cols.get(fields, colID),
		Name:        cols.get(fields, colName),
		Address:     cols.get(fields, colAddress),
		Distance:    cols.get(fields, colDistance),
		Fee:         baseFee(cols.get(fields, colFee)),
		DropInFee:   dropInFee(cols.get(fields, colDropInFee)),
		Website:     cols.get(fields, colWebsite),
		Phone:       cols.get(fields, colPhone),
		Coordinates: cols.get(fields, colCoordinates),
		LastUpdated: ParseLastUpdated(cols.get(fields, colLastUpdated)),
	}
	switch {
	case f.ID == "":
		return f, &RowError{Line: line, Field: colID, Reason: "missing venue id"}
	case f.Name == "":
		return f, &RowError{Line: line, Field: colName, Reason: "missing venue name"}
	}
	return f, nil
}

func decodeLongRow(line int, fields []string, cols columnIndex) (scheduleRow, []*RowError) {
	vf, rowErr := decodeVenueFields(line, fields, cols)
	if rowErr != nil {
		return nil, []*RowError{rowErr}
	}

	dayText := cols.get(fields, colDay)
	day, ok := venue.ParseWeekday(dayText)
	if !ok {
		return nil, []*RowError{{Line: line, Field: colDay, Value: dayText, Reason: "unrecognized day"}}
	}

	return LongFormatRow{
		Line:        line,
		venueFields: vf,
		Session: venue.Session{
			Day:  day,
			Time: cols.get(fields, colTime),
			Type: venue.NormalizeSessionType(cols.get(fields, colType)),
		},
	}, nil
}

const wideTypeSeparator = " - "

func decodeWideRow(line int, fields []string, cols columnIndex) (scheduleRow, []*RowError) {
	vf, rowErr := decodeVenueFields(line, fields, cols)
	if rowErr != nil {
		return nil, []*RowError{rowErr}
	}

	var sessions []venue.Session
	var dropped []*RowError
	for _, wc := range cols.weekdays {
		for _, token := range strings.Split(cell(fields, wc.index), ",") {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			session, ok := parseWideToken(wc.day, token)
			if !ok {
				dropped = append(dropped, &RowError{
					Line: line, Field: strings.ToLower(string(wc.day)), Value: token,
					Reason: `expected "<time> - <type>"`,
				})
				continue
			}
			sessions = append(sessions, session)
		}
	}

	return WideFormatRow{Line: line, venueFields: vf, Sessions: sessions}, dropped
}

// parseWideToken splits "<time> - <type>". The time may itself be a range,
// so the type is always the last segment. A last segment that reads as a
// time means the type is missing.
func parseWideToken(day venue.Weekday, token string) (venue.Session, bool) {
	i := strings.LastIndex(token, wideTypeSeparator)
	if i < 0 {
		return venue.Session{}, false
	}
	timeText := strings.TrimSpace(token[:i])
	typeText := strings.TrimSpace(token[i+len(wideTypeSeparator):])
	if timeText == "" || typeText == "" {
		return venue.Session{}, false
	}
	if _, isTime := venue.TimeToMinutes(typeText); isTime {
		return venue.Session{}, false
	}
	return venue.Session{Day: day, Time: timeText, Type: venue.NormalizeSessionType(typeText)}, true
}
