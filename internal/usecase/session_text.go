package usecase

import "strings"

// WorkshopSessionInfo is what we manage to pull out of the free-text
// "workshop joined" field of a sign-up form.
type WorkshopSessionInfo struct {
	Title      string `json:"title"`
	Location   string `json:"location"`
	DateString string `json:"dateString"`
	Time       string `json:"time"`
}

// ParseWorkshopSession parses a descriptor shaped like
//
//	"<Title> - <Location> - <Weekday>, <Month> <Day><suffix>, <Year> at <Start> – <End>"
//
// Returns nil when the text doesn't have at least three " - " segments; we
// can't reliably separate title, location and date below that. Only the
// first two delimiters split; the rest of the segments are rejoined so a
// date tail containing a hyphen survives intact.
func ParseWorkshopSession(raw string) *WorkshopSessionInfo {
	segments := strings.Split(raw, " - ")
	if len(segments) < 3 {
		return nil
	}

	info := &WorkshopSessionInfo{
		Title:    strings.TrimSpace(segments[0]),
		Location: strings.TrimSpace(segments[1]),
	}

	tail := strings.Join(segments[2:], " - ")

	// "<date> at <time range>"; sem " at ", o tail inteiro é a data
	if idx := strings.Index(tail, " at "); idx >= 0 {
		info.DateString = strings.TrimSpace(tail[:idx])
		info.Time = strings.TrimSpace(tail[idx+len(" at "):])
	} else {
		info.DateString = strings.TrimSpace(tail)
	}

	return info
}
