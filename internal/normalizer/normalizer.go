// Package normalizer rewrites canonical date tokens into relative display
// strings ("Today", "Tomorrow", "5 Days (Tue 6th)"). It never fails outward:
// values it cannot interpret pass through verbatim, and any internal failure
// returns the input untouched.
package normalizer

import (
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"BinDay/internal/models"
)

// tokenPattern matches the canonical token produced by the extractor,
// e.g. "Tuesday, 6th JAN".
var tokenPattern = regexp.MustCompile(`(\w+),\s+(\d{1,2})(st|nd|rd|th)\s+(\w+)`)

// rolloverWindow: a date more than this many days in the past is assumed to
// mean next year (a "6th JAN" token read in December).
const rolloverWindow = 30

// Normalize converts every value of the collection into a relative display
// string against the current date.
func Normalize(c models.Collection) models.Collection {
	return normalizeAt(c, time.Now())
}

// normalizeAt is Normalize with a pinned clock, split out for tests.
func normalizeAt(c models.Collection, now time.Time) (out models.Collection) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Normalization panicked, returning input unchanged: %v", r)
			out = c
		}
	}()

	if c == nil {
		return c
	}

	out = make(models.Collection, len(c))
	for key, value := range c {
		out[key] = relativeDate(value, now)
	}
	return out
}

// relativeDate rewrites one token. Unrecognized values come back unchanged,
// so already-formatted strings ("Tomorrow", "5 Days (Tue 6th)") are stable
// under repeated normalization.
func relativeDate(value string, now time.Time) string {
	text := strings.TrimSpace(value)
	if strings.EqualFold(text, "today") {
		return "Today"
	}

	m := tokenPattern.FindStringSubmatch(text)
	if m == nil {
		return value
	}
	weekday, dayStr, suffix, month := m[1], m[2], m[3], m[4]

	target, ok := buildDate(dayStr, month, now.Year())
	if !ok {
		return value
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	diff := daysBetween(today, target)

	// Year rollover: a token far in the past actually refers to next year.
	if diff < -rolloverWindow {
		target = target.AddDate(1, 0, 0)
		diff = daysBetween(today, target)
	}

	switch diff {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return fmt.Sprintf("%d Days (%s %s%s)", diff, weekday[:3], dayStr, suffix)
	}
}

// buildDate resolves day + month name (abbreviated or full) in the given
// year. The token's weekday is display-only and never validated.
func buildDate(dayStr, month string, year int) (time.Time, bool) {
	monthName := strings.ToUpper(month[:1]) + strings.ToLower(month[1:])
	for _, layout := range []string{"2 Jan 2006", "2 January 2006"} {
		t, err := time.Parse(layout, fmt.Sprintf("%s %s %d", dayStr, monthName, year))
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
