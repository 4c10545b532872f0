package education

import (
	"regexp"
	"strings"
)

// Certification is one professional certification line.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Year   string `json:"year,omitempty"`
}

var (
	reCertIssuer = regexp.MustCompile(`(?i)\b(?:by|from|issued by)\s+(.+)$`)
	reCertSep    = regexp.MustCompile(`\s+[-–—|]\s+`)
)

// Certifications turns each nonempty line of the certifications section
// into one record. The year and issuer are peeled off the name when an
// obvious separator or "by <issuer>" tail is present.
func Certifications(lines []string) []Certification {
	var out []Certification
	seen := map[string]bool{}
	for _, raw := range lines {
		line := clean(raw)
		if line == "" || len(line) > 120 {
			continue
		}
		c := Certification{Name: line}
		if y := reEduYear.FindString(line); y != "" {
			c.Year = y
			c.Name = strings.Trim(strings.ReplaceAll(c.Name, y, ""), " -–—(),")
		}
		if m := reCertIssuer.FindStringSubmatch(c.Name); m != nil {
			c.Issuer = strings.TrimSpace(m[1])
			c.Name = strings.TrimSpace(reCertIssuer.ReplaceAllString(c.Name, ""))
		} else if parts := reCertSep.Split(c.Name, 2); len(parts) == 2 {
			c.Name = strings.TrimSpace(parts[0])
			c.Issuer = strings.TrimSpace(parts[1])
		}
		if c.Name == "" {
			continue
		}
		key := strings.ToLower(c.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}
