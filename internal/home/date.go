package home

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// isoLayouts covers the ISO-8601 shapes the portal emits: full timestamps
// with or without offset/fraction, and calendar dates.
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// IsValidDate reports whether text parses as a well-formed ISO-8601 date or
// timestamp.
func IsValidDate(text string) bool {
	_, ok := parseISO(text)
	return ok
}

// IsValidDateWithFormat reports whether text parses under the given explicit
// format pattern. Patterns use Unicode date field symbols ("yyyy-MM-dd",
// "dd.MM.yyyy HH:mm"), the notation the portal's templates use.
func IsValidDateWithFormat(text, format string) bool {
	layout, ok := layoutFromPattern(format)
	if !ok {
		return false
	}
	_, err := time.Parse(layout, text)
	return err == nil
}

// RelativeTime renders a human-relative phrase ("3 hours ago") for an ISO
// timestamp. Malformed input renders as the empty string.
func RelativeTime(timestamp string) string {
	t, ok := parseISO(timestamp)
	if !ok {
		return ""
	}
	return humanize.Time(t)
}

func parseISO(text string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// patternTokens maps Unicode date pattern fields to Go reference layout
// fragments, longest token first so the scan below stays greedy.
var patternTokens = []struct {
	pattern string
	layout  string
}{
	{"yyyy", "2006"},
	{"MMMM", "January"},
	{"EEEE", "Monday"},
	{"SSS", "000"},
	{"MMM", "Jan"},
	{"EEE", "Mon"},
	{"yy", "06"},
	{"MM", "01"},
	{"dd", "02"},
	{"HH", "15"},
	{"hh", "03"},
	{"mm", "04"},
	{"ss", "05"},
	{"ZZ", "-07:00"},
	{"M", "1"},
	{"d", "2"},
	{"h", "3"},
	{"m", "4"},
	{"s", "5"},
	{"a", "PM"},
	{"Z", "-0700"},
}

// layoutFromPattern converts a Unicode-style date pattern into a Go
// reference layout. Returns false for patterns containing no known fields.
func layoutFromPattern(pattern string) (string, bool) {
	var b strings.Builder
	matched := false

	for i := 0; i < len(pattern); {
		token := false
		for _, t := range patternTokens {
			if strings.HasPrefix(pattern[i:], t.pattern) {
				b.WriteString(t.layout)
				i += len(t.pattern)
				token = true
				matched = true
				break
			}
		}
		if !token {
			b.WriteByte(pattern[i])
			i++
		}
	}
	return b.String(), matched
}
