package education

import (
	"regexp"
	"strings"
)

// Project is one personal or professional project.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

var (
	reProjectTech = regexp.MustCompile(`(?i)^(?:technologies|tech stack|stack|tools|built with)\s*[:\-]\s*(.+)$`)
	reTechSplit   = regexp.MustCompile(`\s*[,;|/]\s*`)
)

const maxProjectNameWords = 8

// Projects segments the projects section. A short un-bulleted line opens
// a project; bullet and narrative lines below it form the description,
// and an explicit "Technologies:" line feeds the technology list.
func Projects(lines []string) []Project {
	var out []Project
	var cur *Project
	flush := func() {
		if cur != nil && cur.Name != "" {
			out = append(out, *cur)
		}
		cur = nil
	}
	for _, raw := range lines {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		if m := reProjectTech.FindStringSubmatch(clean(trimmed)); m != nil && cur != nil {
			for _, t := range reTechSplit.Split(m[1], -1) {
				if t = strings.TrimSpace(t); t != "" {
					cur.Technologies = append(cur.Technologies, t)
				}
			}
			continue
		}
		if isProjectHeader(trimmed) {
			flush()
			name := strings.TrimRight(clean(trimmed), ":")
			cur = &Project{Name: name}
			continue
		}
		if cur != nil {
			body := clean(trimmed)
			if cur.Description == "" {
				cur.Description = body
			} else {
				cur.Description += " " + body
			}
		}
	}
	flush()
	return out
}

func isProjectHeader(line string) bool {
	if reBulletPrefix.MatchString(line) {
		return false
	}
	words := strings.Fields(line)
	if len(words) == 0 || len(words) > maxProjectNameWords {
		return false
	}
	// Narrative sentences end with a period; headers do not.
	return !strings.HasSuffix(line, ".")
}
