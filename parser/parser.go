package parser

import (
	"fmt"

	"openmat-server/models"
	"openmat-server/models/venue"
)

type schemaSpec struct {
	required []string
	decode   rowDecoder
}

var schemas = map[models.SchemaVariant]schemaSpec{
	models.SchemaLong: {
		required: append(append([]string(nil), venueColumns...), colDay, colTime, colType),
		decode:   decodeLongRow,
	},
	models.SchemaWide: {
		required: venueColumns,
		decode:   decodeWideRow,
	},
}

// ParseReport records what a parse recovered from.
type ParseReport struct {
	Rows          int         // data rows read
	SkippedRows   []*RowError // rows left out entirely
	DroppedTokens []*RowError // session cells left out of kept rows
	DuplicateIDs  []string    // ids shared by venues with different names
}

// Parse converts a schedule sheet in the given variant into venues. Rows
// sharing a venue name are merged and every venue's sessions come back in
// business-week order. Malformed rows are skipped and reported; only missing
// required columns fail the parse, with a *SchemaError.
func Parse(variant models.SchemaVariant, raw string) ([]venue.Venue, ParseReport, error) {
	var report ParseReport

	spec, ok := schemas[variant]
	if !ok {
		return nil, report, fmt.Errorf("unsupported schema variant %q", variant)
	}

	lines := splitLines(raw)
	if len(lines) == 0 {
		return nil, report, &SchemaError{Variant: variant, Missing: spec.required}
	}

	cols := newColumnIndex(SplitFields(lines[0].text))
	if missing := cols.missing(spec.required); len(missing) > 0 {
		return nil, report, &SchemaError{Variant: variant, Missing: missing}
	}

	merger := venue.NewMerger()
	namesByID := make(map[string]string)
	for _, line := range lines[1:] {
		report.Rows++
		row, rowErrs := spec.decode(line.number, SplitFields(line.text), cols)
		if row == nil {
			report.SkippedRows = append(report.SkippedRows, rowErrs...)
			continue
		}
		report.DroppedTokens = append(report.DroppedTokens, rowErrs...)

		v := row.toVenue()
		name := venue.MergeKey(v.Name)
		if other, seen := namesByID[v.ID]; seen && other != name {
			report.DuplicateIDs = append(report.DuplicateIDs, v.ID)
		} else if !seen {
			namesByID[v.ID] = name
		}
		merger.Add(v)
	}

	return merger.Venues(), report, nil
}
