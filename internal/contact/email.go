// Package contact extracts email, phone, location and social links from
// normalized resume text.
package contact

import (
	"regexp"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// "[at]" / "[dot]" obfuscation that survived normalization.
	reEmailObfuscated = regexp.MustCompile(`(?i)([A-Za-z0-9._%+-]+)\s*\[\s*at\s*\]\s*([A-Za-z0-9.-]+)\s*\[\s*dot\s*\]\s*([A-Za-z]{2,})`)

	reLeadingDigits = regexp.MustCompile(`^\d{2,}`)

	// Greeting or country prefixes OCR sometimes glues onto the local part.
	emailNoisePrefixes = []string{"mailto.", "mailto:", "email.", "email:", "e.", "mail."}
)

// ExtractEmail returns the best-scoring email address in the text, or "".
// Candidates with short, alphabetic local parts beat noisy ones.
func ExtractEmail(text string) string {
	var candidates []string
	candidates = append(candidates, reEmail.FindAllString(text, -1)...)
	for _, m := range reEmailObfuscated.FindAllStringSubmatch(text, -1) {
		candidates = append(candidates, m[1]+"@"+m[2]+"."+m[3])
	}
	if len(candidates) == 0 {
		return ""
	}

	best := ""
	bestScore := -1.0
	for _, c := range candidates {
		s := SanitizeEmail(c)
		if s == "" {
			continue
		}
		if score := emailScore(s); score > bestScore {
			best, bestScore = s, score
		}
	}
	return best
}

// SanitizeEmail repairs a raw email candidate: lowercases the domain, strips
// greeting prefixes and truncated leading digit runs from the local part.
func SanitizeEmail(raw string) string {
	raw = strings.TrimSpace(strings.Trim(raw, ".,;:"))
	at := strings.LastIndex(raw, "@")
	if at <= 0 || at == len(raw)-1 {
		return ""
	}
	local, domain := raw[:at], strings.ToLower(raw[at+1:])

	lower := strings.ToLower(local)
	for _, p := range emailNoisePrefixes {
		if strings.HasPrefix(lower, p) && len(local) > len(p) {
			local = local[len(p):]
			lower = lower[len(p):]
		}
	}

	// A long run of leading digits is usually a phone number glued on by the
	// text layer; keep the remainder when it still looks like a local part.
	if m := reLeadingDigits.FindString(local); m != "" && len(m) >= 4 {
		if rest := local[len(m):]; len(rest) >= 3 {
			local = rest
		}
	}

	if local == "" || !strings.Contains(domain, ".") {
		return ""
	}
	return local + "@" + domain
}

// emailScore prefers short, mostly-alphabetic local parts.
func emailScore(email string) float64 {
	local := email[:strings.LastIndex(email, "@")]
	if local == "" {
		return -1
	}
	var alpha int
	for _, r := range local {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			alpha++
		}
	}
	return float64(alpha)/float64(len(local)) - 0.01*float64(len(local))
}
