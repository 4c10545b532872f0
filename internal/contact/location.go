package contact

import (
	"regexp"
	"strings"
)

var (
	reLocationLabel = regexp.MustCompile(`(?i)^\s*(?:location|address|city|based in)\s*[:\-]\s*(.+)$`)
	reCityState     = regexp.MustCompile(`^([A-Z][A-Za-z .]+),\s*([A-Z][A-Za-z .]+)$`)
)

// cityHints is a small list of city/region tokens accepted as single-word
// location candidates.
var cityHints = map[string]bool{
	"mumbai": true, "delhi": true, "bangalore": true, "bengaluru": true,
	"pune": true, "hyderabad": true, "chennai": true, "kolkata": true,
	"ahmedabad": true, "navi mumbai": true, "thane": true, "ghansoli": true,
	"noida": true, "gurgaon": true, "gurugram": true, "jaipur": true,
	"london": true, "dubai": true, "singapore": true, "toronto": true,
	"sydney": true, "berlin": true, "amsterdam": true, "remote": true,
	"new york": true, "san francisco": true, "seattle": true, "austin": true,
}

// locationNoiseWords reject narrative text masquerading as a location.
var locationNoiseWords = map[string]bool{
	"working": true, "worked": true, "managed": true, "developed": true,
	"responsible": true, "experience": true, "education": true, "email": true,
	"phone": true, "summary": true, "seeking": true, "objective": true,
	"engineer": true, "developer": true, "manager": true, "resume": true,
}

const locationHeaderLines = 15

// ExtractLocation prefers header-region lines over narrative text: explicit
// "Location: X" labels, "City, State" shapes, then single hinted tokens.
func ExtractLocation(lines []string) string {
	limit := len(lines)
	if limit > locationHeaderLines {
		limit = locationHeaderLines
	}
	header := lines[:limit]

	for _, ln := range header {
		if m := reLocationLabel.FindStringSubmatch(ln); m != nil {
			if loc := sanitizeLocation(m[1]); loc != "" {
				return loc
			}
		}
	}
	for _, ln := range header {
		// Pipe-delimited header lines often carry "Name | City, State | phone".
		for _, part := range strings.Split(ln, "|") {
			part = strings.TrimSpace(part)
			if reCityState.MatchString(part) {
				if loc := sanitizeLocation(part); loc != "" {
					return loc
				}
			}
		}
	}
	for _, ln := range header {
		for _, part := range strings.Split(ln, "|") {
			part = strings.TrimSpace(part)
			if cityHints[strings.ToLower(part)] {
				return part
			}
		}
	}

	// Fall back to labeled lines anywhere in the document.
	for _, ln := range lines[limit:] {
		if m := reLocationLabel.FindStringSubmatch(ln); m != nil {
			if loc := sanitizeLocation(m[1]); loc != "" {
				return loc
			}
		}
	}
	return ""
}

// sanitizeLocation applies the reject rules: no noise words, at most six
// tokens, not digit-heavy, and single words only when hinted or
// comma-adjoined.
func sanitizeLocation(raw string) string {
	loc := strings.TrimSpace(strings.Trim(raw, ".,;"))
	if loc == "" {
		return ""
	}
	words := strings.Fields(loc)
	if len(words) > 6 {
		return ""
	}
	digits := 0
	for _, r := range loc {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits > 2 {
		return ""
	}
	for _, w := range words {
		if locationNoiseWords[strings.ToLower(strings.Trim(w, ".,"))] {
			return ""
		}
	}
	if len(words) == 1 && !cityHints[strings.ToLower(loc)] && !strings.Contains(raw, ",") {
		return ""
	}
	return loc
}
