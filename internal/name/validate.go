package name

import (
	"strings"
	"unicode"
)

// titleKeywords reject candidate lines that are really job titles, section
// headers, or company names.
var titleKeywords = []string{
	"engineer", "developer", "manager", "consultant", "analyst", "architect",
	"designer", "director", "executive", "specialist", "administrator",
	"intern", "lead", "officer", "accountant", "recruiter", "technician",
	"resume", "curriculum", "vitae", "profile", "summary", "objective",
	"experience", "education", "skills", "certification", "project",
	"email", "phone", "mobile", "contact", "address", "linkedin", "github",
}

// companyIndicators mark organization names rather than people.
var companyIndicators = []string{
	"ltd", "pvt", "inc", "llc", "llp", "corp", "corporation", "company",
	"technologies", "solutions", "services", "systems", "consulting",
	"university", "college", "institute", "school", "academy",
	"communications", "enterprises", "industries", "infotech", "labs",
}

// IsLikelyName is the shared validity predicate every strategy's candidates
// must pass before entering the vote.
func IsLikelyName(candidate, knownEmail string) bool {
	c := strings.TrimSpace(candidate)
	if len(c) < 2 || len(c) > 60 {
		return false
	}
	if strings.ContainsAny(c, "@/:,") {
		return false
	}
	for _, r := range c {
		if unicode.IsDigit(r) {
			return false
		}
	}

	words := strings.Fields(c)
	if len(words) > 4 {
		return false
	}
	if len(words) >= 4 {
		// Sentence-like: four words where any single word runs long.
		for _, w := range words {
			if len(w) > 15 {
				return false
			}
		}
	}

	lower := strings.ToLower(c)
	for _, kw := range titleKeywords {
		if containsWord(lower, kw) {
			return false
		}
	}
	for _, kw := range companyIndicators {
		if containsWord(lower, kw) {
			return false
		}
	}

	if len(words) == 1 {
		if !unicode.IsUpper(firstRune(words[0])) {
			return false
		}
		if knownEmail != "" {
			return sharesChars(strings.ToLower(words[0]), emailLocalPart(knownEmail), 3)
		}
		return true
	}

	// Multi-word candidates use sentence capitalization or all caps.
	return isSentenceCase(words) || isAllCaps(c)
}

func isSentenceCase(words []string) bool {
	for _, w := range words {
		r := firstRune(w)
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func isAllCaps(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func containsWord(haystack, word string) bool {
	for _, f := range strings.FieldsFunc(haystack, func(r rune) bool {
		return !unicode.IsLetter(r)
	}) {
		if f == word {
			return true
		}
	}
	return false
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func emailLocalPart(email string) string {
	if i := strings.LastIndex(email, "@"); i > 0 {
		return strings.ToLower(email[:i])
	}
	return strings.ToLower(email)
}

// sharesChars reports whether a and b have at least n characters in common.
func sharesChars(a, b string, n int) bool {
	seen := make(map[rune]bool)
	for _, r := range b {
		seen[r] = true
	}
	count := 0
	for _, r := range a {
		if seen[r] {
			count++
			seen[r] = false
		}
	}
	return count >= n
}
