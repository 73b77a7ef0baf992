package pedigree

import (
	"regexp"
	"strings"
)

// UnitLetter reduces an age unit to its single-letter form. Unrecognized or
// empty units default to years.
func UnitLetter(unit string) string {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "m", "month", "months", "mo", "mos":
		return "m"
	case "d", "day", "days":
		return "d"
	case "w", "week", "weeks", "wk", "wks":
		return "w"
	default:
		return "y"
	}
}

// bareNumber matches an age value that is just a number.
var bareNumber = regexp.MustCompile(`^\d+(\.\d+)?$`)

// SuffixAge appends the unit letter to a bare numeric age value ("48" ->
// "48y"). Values that already carry a trailing unit letter, or that start
// with the "d.", "b.", "LMP" or "EDD" markers, pass through unchanged, as
// does anything non-numeric.
func SuffixAge(value, unit string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return ""
	}
	lower := strings.ToLower(v)
	for _, prefix := range []string{"d.", "b.", "lmp", "edd"} {
		if strings.HasPrefix(lower, prefix) {
			return v
		}
	}
	switch lower[len(lower)-1] {
	case 'y', 'm', 'd', 'w':
		return v
	}
	if bareNumber.MatchString(v) {
		return v + UnitLetter(unit)
	}
	return v
}

// ageExprRules rewrites written-out age expressions to the unit-suffixed
// short form. Order matters within each alternation: the longest variant is
// listed first.
var ageExprRules = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`(?i)\b(\d+)\s*(?:years?\s+old|years?|yrs?|y[./]?o)\b`), "${1}y"},
	{regexp.MustCompile(`(?i)\b(\d+)\s*(?:months?\s+old|months?|mos?)\b`), "${1}m"},
	{regexp.MustCompile(`(?i)\b(\d+)\s*(?:weeks?|wks?)\b`), "${1}w"},
	{regexp.MustCompile(`(?i)\b(\d+)\s*days?\b`), "${1}d"},
}

// NormalizeAgeText rewrites age expressions inside free text to the
// unit-suffixed short form ("45 years old" -> "45y", "6 months" -> "6m").
// Everything else is left as written.
func NormalizeAgeText(s string) string {
	out := s
	for _, rule := range ageExprRules {
		out = rule.re.ReplaceAllString(out, rule.repl)
	}
	return out
}
