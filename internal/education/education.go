package education

import (
	"regexp"
	"strings"
)

// Entry is one education record.
type Entry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	Year        string `json:"year,omitempty"`
	GPA         string `json:"gpa,omitempty"`
}

var (
	reDegree = regexp.MustCompile(`(?i)\b(b\.?\s?tech|m\.?\s?tech|b\.?e\b|m\.?e\b|b\.?sc|m\.?sc|bca|mca|mba|bba|pgdm|ph\.?d|bachelor(?:'s)?|master(?:'s)?|diploma|b\.?com|m\.?com|b\.?a\b|m\.?a\b|ssc|hsc|12th|10th)\.?`)

	reInstitution = regexp.MustCompile(`(?i)\b(university|college|institute|institution|school|academy|polytechnic|iit|nit|iim)\b`)

	reEduYear = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

	reGPA = regexp.MustCompile(`(?i)\b(?:cgpa|gpa|sgpa)\s*[:\-]?\s*(\d{1,2}(?:\.\d+)?)`)

	reFieldOf = regexp.MustCompile(`(?i)\bin\s+([a-zA-Z][a-zA-Z&\s]{2,40}?)(?:\s+from\b|,|\(|$)`)

	reBulletPrefix = regexp.MustCompile(`^[-•*]\s+`)
)

// Extract builds education entries from the education section. A degree
// mention opens an entry; the institution is taken from the same line or
// the nearest neighbouring line that carries an institution keyword.
func Extract(lines []string) []Entry {
	var entries []Entry
	for i, raw := range lines {
		line := clean(raw)
		if line == "" {
			continue
		}
		m := reDegree.FindString(line)
		if m == "" {
			continue
		}
		e := Entry{Degree: strings.TrimRight(m, ".")}
		if f := reFieldOf.FindStringSubmatch(line); f != nil {
			e.Field = strings.TrimSpace(f[1])
		}
		e.Institution = findInstitution(lines, i)
		e.Year = findNear(lines, i, reEduYear)
		if g := reGPA.FindStringSubmatch(contextOf(lines, i)); g != nil {
			e.GPA = g[1]
		}
		if !duplicate(entries, e) {
			entries = append(entries, e)
		}
	}
	return entries
}

// findInstitution prefers the degree line itself, then the line below,
// then the line above.
func findInstitution(lines []string, i int) string {
	for _, j := range []int{i, i + 1, i - 1} {
		if j < 0 || j >= len(lines) {
			continue
		}
		line := clean(lines[j])
		if !reInstitution.MatchString(line) {
			continue
		}
		return institutionSegment(line)
	}
	return ""
}

// institutionSegment isolates the institution when the line mixes it
// with the degree or dates, splitting on separators first.
func institutionSegment(line string) string {
	for _, part := range strings.FieldsFunc(line, func(r rune) bool { return r == '|' || r == ',' }) {
		part = strings.TrimSpace(part)
		if reInstitution.MatchString(part) {
			part = reEduYear.ReplaceAllString(part, "")
			return strings.Trim(part, " -–—")
		}
	}
	return strings.TrimSpace(reEduYear.ReplaceAllString(line, ""))
}

func findNear(lines []string, i int, re *regexp.Regexp) string {
	for _, j := range []int{i, i + 1, i - 1} {
		if j < 0 || j >= len(lines) {
			continue
		}
		if m := re.FindString(lines[j]); m != "" {
			return m
		}
	}
	return ""
}

// contextOf joins the degree line with its close neighbours; GPA and
// year usually sit one or two lines below the degree.
func contextOf(lines []string, i int) string {
	var parts []string
	for j := i - 1; j <= i+2; j++ {
		if j >= 0 && j < len(lines) {
			parts = append(parts, lines[j])
		}
	}
	return strings.Join(parts, " ")
}

func clean(line string) string {
	return strings.TrimSpace(reBulletPrefix.ReplaceAllString(strings.TrimSpace(line), ""))
}

func duplicate(entries []Entry, e Entry) bool {
	for _, x := range entries {
		if strings.EqualFold(x.Degree, e.Degree) && strings.EqualFold(x.Institution, e.Institution) {
			return true
		}
	}
	return false
}
