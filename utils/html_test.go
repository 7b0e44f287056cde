package utils

import "testing"

func TestInnerText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"simple fragment",
			`<div><b>Friday</b> 23 January</div>`,
			"Friday 23 January",
		},
		{
			"nested with noise whitespace",
			"<div>\n  Your next rubbish collection day is\n  <div> Friday 23 January </div>\n</div>",
			"Your next rubbish collection day is Friday 23 January",
		},
		{
			"plain text",
			"no markup here",
			"no markup here",
		},
		{
			"empty",
			"",
			"",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := InnerText(tc.input); got != tc.expected {
				t.Errorf("InnerText(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}
