package normalizer

import (
	"testing"
	"time"

	"BinDay/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 30, 0, 0, time.UTC)
}

func TestRelativeDate(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		value    string
		expected string
	}{
		{
			name:     "token for the current day",
			now:      date(2026, time.January, 6),
			value:    "Tuesday, 6th JAN",
			expected: "Today",
		},
		{
			name:     "token for the next day",
			now:      date(2026, time.January, 6),
			value:    "Wednesday, 7th JAN",
			expected: "Tomorrow",
		},
		{
			name:     "token five days out",
			now:      date(2026, time.January, 1),
			value:    "Tuesday, 6th JAN",
			expected: "5 Days (Tue 6th)",
		},
		{
			name:     "year rollover across December",
			now:      date(2025, time.December, 20),
			value:    "Saturday, 3rd JAN",
			expected: "14 Days (Sat 3rd)",
		},
		{
			name:     "recent past stays in the current year",
			now:      date(2026, time.January, 10),
			value:    "Tuesday, 6th JAN",
			expected: "-4 Days (Tue 6th)",
		},
		{
			name:     "full month name accepted",
			now:      date(2026, time.January, 1),
			value:    "Tuesday, 6th January",
			expected: "5 Days (Tue 6th)",
		},
		{
			name:     "today literal, case-insensitive",
			now:      date(2026, time.January, 6),
			value:    "  toDAY ",
			expected: "Today",
		},
		// Already-relative and unrecognized values pass through verbatim.
		{
			name:     "Today is idempotent",
			now:      date(2026, time.January, 6),
			value:    "Today",
			expected: "Today",
		},
		{
			name:     "Tomorrow is idempotent",
			now:      date(2026, time.January, 6),
			value:    "Tomorrow",
			expected: "Tomorrow",
		},
		{
			name:     "already formatted relative string",
			now:      date(2026, time.January, 6),
			value:    "5 Days (Tue 6th)",
			expected: "5 Days (Tue 6th)",
		},
		{
			name:     "unrecognized value",
			now:      date(2026, time.January, 6),
			value:    "check council website",
			expected: "check council website",
		},
		{
			name:     "nonsense month passes through",
			now:      date(2026, time.January, 6),
			value:    "Tuesday, 6th XYZ",
			expected: "Tuesday, 6th XYZ",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := models.Collection{models.Rubbish: tc.value}
			out := normalizeAt(in, tc.now)
			if got := out[models.Rubbish]; got != tc.expected {
				t.Errorf("normalizeAt(%q) = %q, want %q", tc.value, got, tc.expected)
			}
		})
	}
}

func TestNormalizeAllCategories(t *testing.T) {
	now := date(2026, time.January, 6)
	in := models.Collection{
		models.Rubbish:   "Tuesday, 6th JAN",
		models.Recycling: "Wednesday, 7th JAN",
		models.Food:      "Sunday, 11th JAN",
	}
	out := normalizeAt(in, now)

	want := models.Collection{
		models.Rubbish:   "Today",
		models.Recycling: "Tomorrow",
		models.Food:      "5 Days (Sun 11th)",
	}
	for k, v := range want {
		if out[k] != v {
			t.Errorf("out[%s] = %q, want %q", k, out[k], v)
		}
	}
	// The input collection is never mutated.
	if in[models.Rubbish] != "Tuesday, 6th JAN" {
		t.Error("input collection was mutated")
	}
}

func TestNormalizeNilCollection(t *testing.T) {
	if out := normalizeAt(nil, date(2026, time.January, 6)); out != nil {
		t.Errorf("normalizeAt(nil) = %v, want nil", out)
	}
}

func TestNormalizePublicEntryPoint(t *testing.T) {
	// Only passthrough values, so the real clock cannot change the result.
	in := models.Collection{models.Rubbish: "Tomorrow"}
	out := Normalize(in)
	if out[models.Rubbish] != "Tomorrow" {
		t.Errorf("Normalize passthrough = %q, want %q", out[models.Rubbish], "Tomorrow")
	}
}
