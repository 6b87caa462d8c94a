package parser

import (
	"strings"

	"openmat-server/models/venue"
)

// Column names, matched case-insensitively against the header row.
const (
	colID          = "id"
	colName        = "name"
	colAddress     = "address"
	colDistance    = "distance"
	colFee         = "fee"
	colDropInFee   = "drop_in_fee"
	colDay         = "day"
	colTime        = "time"
	colType        = "type"
	colWebsite     = "website"
	colPhone       = "phone"
	colCoordinates = "coordinates"
	colLastUpdated = "last_updated"
)

var venueColumns = []string{colID, colName, colAddress, colDistance, colFee, colDropInFee}

type columnIndex struct {
	byName   map[string]int
	weekdays []weekdayColumn
}

type weekdayColumn struct {
	day   venue.Weekday
	index int
}

func newColumnIndex(header []string) columnIndex {
	idx := columnIndex{byName: make(map[string]int, len(header))}
	for i, h := range header {
		name := normalizeHeader(h)
		if _, dup := idx.byName[name]; dup {
			continue
		}
		idx.byName[name] = i
		if day, ok := venue.ParseWeekday(name); ok {
			idx.weekdays = append(idx.weekdays, weekdayColumn{day: day, index: i})
		}
	}
	return idx
}

func normalizeHeader(h string) string {
	name := strings.ToLower(strings.TrimSpace(h))
	return strings.Join(strings.FieldsFunc(name, func(r rune) bool {
		return r == ' ' || r == '-'
	}), "_")
}

func (c columnIndex) missing(required []string) []string {
	var out []string
	for _, name := range required {
		if _, ok := c.byName[name]; !ok {
			out = append(out, name)
		}
	}
	return out
}

// get returns the trimmed cell for column name, or "" when the column or the
// cell is absent.
func (c columnIndex) get(fields []string, name string) string {
	i, ok := c.byName[name]
	if !ok || i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}

func cell(fields []string, i int) string {
	if i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}
