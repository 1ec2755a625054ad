package usecase

import (
	"regexp"
	"strings"
	"time"
)

var weekdayNames = []string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// "20th" -> "20", anywhere in the string
var ordinalSuffix = regexp.MustCompile(`(?i)(\d)(st|nd|rd|th)\b`)

// Layouts tried in order. Humans write these on sign-up forms; anything else
// is treated as unparseable rather than an error.
var looseDateLayouts = []string{
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
}

// ParseLooseDate best-effort parses a human date string like
// "Tuesday, January 20th, 2026". A leading weekday name (with optional
// comma) and ordinal suffixes are stripped before parsing. The second
// return is false when no layout matched.
//
// No timezone is applied: the parsed date is taken at face value, same as
// the workshop dates it gets compared against.
func ParseLooseDate(raw string) (time.Time, bool) {
	cleaned := strings.TrimSpace(raw)

	lower := strings.ToLower(cleaned)
	for _, day := range weekdayNames {
		if strings.HasPrefix(lower, day) {
			cleaned = cleaned[len(day):]
			cleaned = strings.TrimLeft(cleaned, ", ")
			break
		}
	}

	cleaned = ordinalSuffix.ReplaceAllString(cleaned, "$1")
	cleaned = strings.TrimSpace(cleaned)

	for _, layout := range looseDateLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SameCalendarDay compares year/month/day only, ignoring clock time.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
