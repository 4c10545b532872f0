package experience

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Entry is one work-experience position.
type Entry struct {
	Company          string   `json:"company"`
	Role             string   `json:"role"`
	Location         string   `json:"location,omitempty"`
	StartDate        string   `json:"start_date"`
	EndDate          string   `json:"end_date"`
	IsCurrent        bool     `json:"is_current"`
	Months           int      `json:"months"`
	Description      string   `json:"description,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Technologies     []string `json:"technologies,omitempty"`
}

const descriptionLookahead = 8

var (
	reCompanyIndicator = regexp.MustCompile(`(?i)\b(pvt|ltd|llp|llc|inc|corp|corporation|limited|technologies|solutions|systems|services|consulting|consultancy|labs|group|software|infotech|communications)\b\.?`)

	reTitleIndicator = regexp.MustCompile(`(?i)\b(engineer|developer|manager|analyst|consultant|designer|architect|lead|administrator|specialist|executive|officer|intern|trainee|associate|coordinator|scientist|head)\b`)

	reBullet = regexp.MustCompile(`^[-•*]\s+`)

	reAssociated = regexp.MustCompile(`(?i)associated with\s+([^,.]+?)\s+as\s+(?:an?\s+)?([^,.]+)`)
	reClientRole = regexp.MustCompile(`(?i)client\s*:\s*([^,.]+).*?working as\s+(?:an?\s+)?([^,.]+)`)

	reStatedYears = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*\+?\s*years?\s+of\s+(?:[\w-]+\s+){0,2}experience`)
)

// Extract walks the lines and assembles one entry per date-range anchor.
// The two lines above an anchor carry the company and role in either
// order, so both are classified rather than read positionally. When no
// anchor is found at all a single best-effort current position is
// synthesized from company and title lines elsewhere in the text. The
// second return value carries warnings about repaired input, such as a
// reversed date range.
func Extract(lines []string, now time.Time) ([]Entry, []string) {
	var entries []Entry
	var warnings []string
	seen := map[string]bool{}

	anchors := dateAnchors(lines)
	for idx, anchor := range anchors {
		e := buildEntry(lines, anchor, nextAnchor(anchors, idx), now)
		if w := repairReversedRange(&e, now); w != "" {
			warnings = append(warnings, w)
		}
		key := dedupKey(e)
		if e.Company == "" && e.Role == "" {
			continue
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		entries = append(entries, e)
	}

	if len(entries) == 0 {
		if e, ok := synthesize(lines); ok {
			entries = append(entries, e)
		}
	}
	return entries, warnings
}

// repairReversedRange swaps a range whose start parses to a later date
// than its end, so every emitted entry starts before it ends. Returns a
// warning describing the repair, "" when nothing was wrong.
func repairReversedRange(e *Entry, now time.Time) string {
	if e.IsCurrent {
		return ""
	}
	start, okS := ParseDateToken(e.StartDate, now)
	end, okE := ParseDateToken(e.EndDate, now)
	if !okS || !okE || !start.After(end) {
		return ""
	}
	reversed := e.StartDate + " - " + e.EndDate
	e.StartDate, e.EndDate = e.EndDate, e.StartDate
	e.Months = DurationMonths(e.StartDate, e.EndDate, now)
	return fmt.Sprintf("reversed date range %q, swapped", reversed)
}

type anchor struct {
	line  int
	r     DateRange
	extra string // non-date text on the anchor line
}

func dateAnchors(lines []string) []anchor {
	var out []anchor
	for i, line := range lines {
		r, ok := MatchDateRange(line)
		if !ok {
			continue
		}
		extra := strings.TrimSpace(reDateRange.ReplaceAllString(line, ""))
		extra = strings.Trim(extra, "|,-–— ")
		out = append(out, anchor{line: i, r: r, extra: extra})
	}
	return out
}

func nextAnchor(anchors []anchor, idx int) int {
	if idx+1 < len(anchors) {
		return anchors[idx+1].line
	}
	return -1
}

func buildEntry(lines []string, a anchor, nextLine int, now time.Time) Entry {
	e := Entry{
		StartDate: a.r.StartToken,
		EndDate:   a.r.EndToken,
		IsCurrent: a.r.IsCurrent,
		Months:    DurationMonths(a.r.StartToken, a.r.EndToken, now),
	}

	above1 := headerLine(lines, a.line-1)
	above2 := headerLine(lines, a.line-2)
	assignHeader(&e, above1, above2)

	if a.extra != "" && (e.Company == "" || e.Role == "") {
		classifyPart(&e, a.extra)
	}

	end := a.line + 1 + descriptionLookahead
	if nextLine >= 0 && nextLine < end {
		// Leave room for the next entry's own header lines.
		end = nextLine - 2
	}
	if end > len(lines) {
		end = len(lines)
	}
	var desc []string
	for i := a.line + 1; i < end; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if reBullet.MatchString(line) {
			e.Responsibilities = append(e.Responsibilities, reBullet.ReplaceAllString(line, ""))
			continue
		}
		desc = append(desc, line)
	}
	e.Description = strings.Join(desc, " ")

	if e.Role == "" {
		narrative := e.Description + " " + strings.Join(e.Responsibilities, " ")
		fillFromNarrative(&e, narrative)
	}
	return e
}

func headerLine(lines []string, i int) string {
	if i < 0 || i >= len(lines) {
		return ""
	}
	line := strings.TrimSpace(lines[i])
	if reBullet.MatchString(line) {
		return ""
	}
	if _, ok := MatchDateRange(line); ok {
		return ""
	}
	return line
}

// assignHeader classifies the two lines above a date anchor. A line
// carrying a company suffix wins the company slot regardless of position.
func assignHeader(e *Entry, above1, above2 string) {
	switch {
	case looksLikeCompany(above1):
		setCompany(e, above1)
		if looksLikeRole(above2) {
			e.Role = above2
		}
	case looksLikeCompany(above2):
		setCompany(e, above2)
		if looksLikeRole(above1) {
			e.Role = above1
		}
	default:
		if looksLikeRole(above2) {
			e.Role = above2
		}
		if e.Role == "" && looksLikeRole(above1) {
			e.Role = above1
		} else if above1 != "" && above1 != e.Role && plausibleHeader(above1) {
			setCompany(e, above1)
		}
	}
}

// setCompany splits a pipe-delimited header at the first pipe, keeping
// the left part as the company and the right as its location.
func setCompany(e *Entry, line string) {
	company, rest, found := strings.Cut(line, "|")
	e.Company = strings.TrimSpace(company)
	if found {
		e.Location = strings.TrimSpace(rest)
	}
}

func classifyPart(e *Entry, part string) {
	for _, p := range strings.Split(part, "|") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		switch {
		case e.Company == "" && looksLikeCompany(p):
			e.Company = p
		case e.Role == "" && looksLikeRole(p):
			e.Role = p
		case e.Company == "" && plausibleHeader(p):
			e.Company = p
		}
	}
}

// fillFromNarrative runs only when the positional heuristic found no
// role; a successful secondary pattern also replaces a positional
// company guess that never looked like a company in the first place.
func fillFromNarrative(e *Entry, text string) {
	for _, re := range []*regexp.Regexp{reAssociated, reClientRole} {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if e.Company == "" || !looksLikeCompany(e.Company) {
			e.Company = strings.TrimSpace(m[1])
		}
		e.Role = strings.TrimSpace(m[2])
		return
	}
}

func looksLikeCompany(line string) bool {
	return plausibleHeader(line) && reCompanyIndicator.MatchString(line)
}

func looksLikeRole(line string) bool {
	return plausibleHeader(line) && reTitleIndicator.MatchString(line) && !reCompanyIndicator.MatchString(line)
}

func plausibleHeader(line string) bool {
	if line == "" || len(line) > 80 {
		return false
	}
	if strings.ContainsAny(line, "@") {
		return false
	}
	if len(strings.Fields(line)) > 10 {
		return false
	}
	return strings.IndexFunc(line, unicode.IsLetter) >= 0
}

func dedupKey(e Entry) string {
	return strings.ToLower(e.Company) + "|" + strings.ToLower(e.Role) + "|" + e.StartDate + "|" + e.EndDate
}

// synthesize builds a minimal current-position entry when no date-range
// anchor exists anywhere in the document.
func synthesize(lines []string) (Entry, bool) {
	var e Entry
	for _, line := range lines {
		line = strings.TrimSpace(reBullet.ReplaceAllString(line, ""))
		if e.Company == "" && looksLikeCompany(line) {
			setCompany(&e, line)
		}
		if e.Role == "" && looksLikeRole(line) {
			e.Role = line
		}
		if e.Company != "" && e.Role != "" {
			break
		}
	}
	if e.Company == "" && e.Role == "" {
		return Entry{}, false
	}
	e.EndDate = "Present"
	e.IsCurrent = true
	return e, true
}

// StatedYears finds an explicitly written "N years of experience"
// figure. Returns 0 when none is stated.
func StatedYears(text string) float64 {
	m := reStatedYears.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	years, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return years
}
