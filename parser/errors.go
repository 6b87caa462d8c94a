package parser

import (
	"fmt"
	"strings"

	"openmat-server/models"
)

// SchemaError means the sheet is missing required columns. The whole fetch
// is unusable.
type SchemaError struct {
	Variant models.SchemaVariant
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s schedule is missing required columns: %s", e.Variant, strings.Join(e.Missing, ", "))
}

// RowError describes one malformed row or cell. It never fails a parse.
type RowError struct {
	Line   int
	Field  string
	Value  string
	Reason string
}

func (e *RowError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("line %d: %s %q: %s", e.Line, e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}
