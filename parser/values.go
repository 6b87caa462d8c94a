package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var lastUpdatedPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseLastUpdated accepts only YYYY-MM-DD. Anything else, including
// "Contact", "N/A" and blanks, means no date.
func ParseLastUpdated(s string) *string {
	s = strings.TrimSpace(s)
	if !lastUpdatedPattern.MatchString(s) {
		return nil
	}
	return &s
}

// parseFee reads a money cell such as "20", "$20.00" or "free".
func parseFee(s string) (float64, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "free" {
		return 0, true
	}
	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// baseFee treats an empty or unreadable base fee as free.
func baseFee(s string) float64 {
	f, _ := parseFee(s)
	return f
}

func dropInFee(s string) *float64 {
	f, ok := parseFee(s)
	if !ok {
		return nil
	}
	return &f
}
