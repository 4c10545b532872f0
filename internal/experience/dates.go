package experience

import (
	"regexp"
	"strings"
	"time"
)

const monthPattern = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\.?`

var (
	reDateRange = regexp.MustCompile(`(?i)\b(` + monthPattern + `\s+\d{4}|\d{1,2}/\d{4}|\d{4})\s*(?:-|–|—|to)\s*(` + monthPattern + `\s+\d{4}|\d{1,2}/\d{4}|\d{4}|present|current|now|till date|ongoing)`)

	rePresent = regexp.MustCompile(`(?i)^(present|current|now|till date|ongoing)$`)
)

// DateRange is one parsed date-range line.
type DateRange struct {
	StartToken string
	EndToken   string
	IsCurrent  bool
}

// MatchDateRange parses a "<start> - <end-or-present>" line. Present-like
// end tokens are canonicalized to the literal "Present" and set IsCurrent.
func MatchDateRange(line string) (DateRange, bool) {
	m := reDateRange.FindStringSubmatch(line)
	if m == nil {
		return DateRange{}, false
	}
	r := DateRange{
		StartToken: strings.TrimSpace(m[1]),
		EndToken:   strings.TrimSpace(m[2]),
	}
	if rePresent.MatchString(r.EndToken) {
		r.EndToken = "Present"
		r.IsCurrent = true
	}
	return r, true
}

var dateLayouts = []string{"Jan 2006", "January 2006", "Jan. 2006", "01/2006", "1/2006", "2006"}

// ParseDateToken parses one side of a date range. "Present"-like tokens
// resolve to now. A year-only token resolves to January of that year.
func ParseDateToken(token string, now time.Time) (time.Time, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return time.Time{}, false
	}
	if rePresent.MatchString(token) {
		return now, true
	}
	normalized := normalizeMonthToken(token)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// normalizeMonthToken folds "OCTOBER 2024" / "oct 2024" / "Sept 2021" into
// a form the fixed layouts accept.
func normalizeMonthToken(token string) string {
	fields := strings.Fields(token)
	if len(fields) != 2 {
		return token
	}
	m := strings.TrimSuffix(strings.ToLower(fields[0]), ".")
	if m == "sept" {
		m = "sep"
	}
	if len(m) > 3 {
		// Full month names parse with the "January 2006" layout.
		return strings.ToUpper(m[:1]) + m[1:] + " " + fields[1]
	}
	if len(m) == 3 {
		return strings.ToUpper(m[:1]) + m[1:] + " " + fields[1]
	}
	return token
}

// DurationMonths derives whole months between a parsed start and end.
// Returns 0 when either token is unparseable or start is after end.
func DurationMonths(startToken, endToken string, now time.Time) int {
	start, ok := ParseDateToken(startToken, now)
	if !ok {
		return 0
	}
	end, ok := ParseDateToken(endToken, now)
	if !ok {
		return 0
	}
	if start.After(end) {
		return 0
	}
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months < 0 {
		return 0
	}
	return months
}
