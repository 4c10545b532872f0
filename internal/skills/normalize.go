package skills

import (
	"regexp"
	"strings"
)

var (
	reSkillPunct  = regexp.MustCompile(`[(),.:;!?"']+`)
	reSkillSpaces = regexp.MustCompile(`\s+`)
	reYear        = regexp.MustCompile(`^(19|20)\d{2}$`)
	reNumeric     = regexp.MustCompile(`^[\d.+%\s-]+$`)
)

// NormalizeSkill folds a raw phrase to its lookup key: lowercase, "&" to
// "and", punctuation dropped, slashes spaced, whitespace collapsed.
// Idempotent by construction.
func NormalizeSkill(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "/", " / ")
	s = reSkillPunct.ReplaceAllString(s, " ")
	s = reSkillSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// stopwords are function words a skill phrase cannot consist of.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "of": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "with": true,
	"by": true, "from": true, "as": true, "is": true, "are": true, "was": true,
	"be": true, "been": true, "have": true, "has": true, "had": true,
	"will": true, "etc": true, "other": true, "others": true, "various": true,
	"using": true, "used": true, "including": true, "knowledge": true,
	"good": true, "excellent": true, "strong": true, "basic": true,
	"working": true, "skills": true, "skill": true, "tools": true,
	"identifying": true, "ability": true, "proficient": true, "familiar": true,
}

var monthTokens = map[string]bool{
	"jan": true, "feb": true, "mar": true, "apr": true, "may": true,
	"jun": true, "jul": true, "aug": true, "sep": true, "sept": true,
	"oct": true, "nov": true, "dec": true,
	"january": true, "february": true, "march": true, "april": true,
	"june": true, "july": true, "august": true, "september": true,
	"october": true, "november": true, "december": true,
}

// locationHintTokens reject place-ish noise phrases picked up from contact
// lines and travel sections.
var locationHintTokens = map[string]bool{
	"travel": true, "relocate": true, "relocation": true, "remote": true,
	"onsite": true, "location": true, "mumbai": true, "delhi": true,
	"bangalore": true, "pune": true, "india": true, "usa": true, "uk": true,
}

const (
	maxSkillWords = 6
	maxSkillChars = 40
)

// RejectSkill filters obvious non-skills: stopword-only phrases, pure
// years/numbers, month tokens, location hints, and oversized phrases.
func RejectSkill(key string) bool {
	if key == "" {
		return true
	}
	if len(key) > maxSkillChars {
		return true
	}
	words := strings.Fields(key)
	if len(words) > maxSkillWords {
		return true
	}
	if reYear.MatchString(key) || reNumeric.MatchString(key) {
		return true
	}
	if len(words) == 1 {
		if monthTokens[key] || locationHintTokens[key] || stopwords[key] {
			return true
		}
		return false
	}
	allStop := true
	for _, w := range words {
		if !stopwords[w] {
			allStop = false
			break
		}
	}
	return allStop
}

// domainSuffixes are the trailing words that let an unmatched two-to-four
// word phrase pass as a capitalized compound skill.
var domainSuffixes = map[string]bool{
	"management": true, "processing": true, "compliance": true,
	"administration": true, "engineering": true, "analysis": true,
	"analytics": true, "development": true, "testing": true, "design": true,
	"operations": true, "migration": true, "integration": true,
	"reporting": true, "planning": true, "modeling": true, "modelling": true,
	"automation": true, "support": true, "architecture": true,
	"documentation": true, "assurance": true, "governance": true,
}

// CompoundSkill reports whether an unmatched phrase qualifies under the
// domain-suffix rule and returns its title-cased display form.
func CompoundSkill(key string) (string, bool) {
	words := strings.Fields(key)
	if len(words) < 2 || len(words) > 4 {
		return "", false
	}
	if !domainSuffixes[words[len(words)-1]] {
		return "", false
	}
	for _, w := range words {
		if stopwords[w] && !domainSuffixes[w] {
			return "", false
		}
	}
	display := make([]string, len(words))
	for i, w := range words {
		display[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(display, " "), true
}
