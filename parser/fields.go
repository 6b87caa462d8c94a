package parser

import "strings"

const quoteChar = '"'

// SplitFields splits one CSV line on commas. A quote character toggles an
// inside-quotes state in which commas do not split; quote characters
// themselves are dropped.
func SplitFields(line string) []string {
	var fields []string
	var field strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == quoteChar:
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}
	return append(fields, field.String())
}

// splitLines breaks raw text into numbered, non-blank lines.
func splitLines(raw string) []numberedLine {
	raw = strings.TrimPrefix(raw, "\ufeff")
	var lines []numberedLine
	for i, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, numberedLine{number: i + 1, text: line})
	}
	return lines
}

type numberedLine struct {
	number int
	text   string
}
