// Package format normalizes raw resume field values (dates, region names)
// into their display form. Every function is total: unrecognized input is
// returned unchanged rather than failing.
package format

import (
	"strings"
	"time"
)

// displayLayout is the canonical display form for month-level dates.
const displayLayout = "January 2006"

// fullDateLayouts are tried, in order, when a date string matches none of
// the documented shapes.
var fullDateLayouts = []string{
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"01/02/2006",
}

// FormatDate normalizes a date string to "Month YYYY". Recognized shapes, in
// priority order: "Mon YYYY" (three-letter month), "YYYY-MM", a bare 4-digit
// year (returned unchanged), and finally any full date it can make sense of.
// Anything else comes back unchanged, so callers can pass values like
// "Present" straight through.
func FormatDate(dateStr string) string {
	s := strings.TrimSpace(dateStr)
	if s == "" {
		return dateStr
	}

	if t, err := time.Parse("Jan 2006", s); err == nil {
		return t.Format(displayLayout)
	}
	if t, err := time.Parse("2006-01", s); err == nil {
		return t.Format(displayLayout)
	}
	if isYear(s) {
		return s
	}
	for _, layout := range fullDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(displayLayout)
		}
	}

	return dateStr
}

func isYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
