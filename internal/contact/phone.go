package contact

import (
	"regexp"
	"strings"
)

var rePhone = regexp.MustCompile(`(?:\+\d{1,3}[-.\s]?)?(?:\(\d{2,4}\)[-.\s]?)?\d{2,5}(?:[-.\s]?\d{2,5}){1,3}`)

// Phones holds the primary and, when present, one alternate phone number.
type Phones struct {
	Primary   string
	Alternate string
}

// ExtractPhones scans for phone-shaped digit groups, keeps candidates with
// 10-15 digits, and formats them E.164-style where possible. The second
// distinct match becomes the alternate.
func ExtractPhones(text string) Phones {
	var out Phones
	seen := make(map[string]bool)
	for _, m := range rePhone.FindAllString(text, -1) {
		formatted, ok := FormatPhone(m)
		if !ok || seen[formatted] {
			continue
		}
		seen[formatted] = true
		if out.Primary == "" {
			out.Primary = formatted
		} else if out.Alternate == "" {
			out.Alternate = formatted
			break
		}
	}
	return out
}

// FormatPhone validates the digit count (10-15) and renders a canonical
// +<country><number> form. Ten-digit numbers starting 6-9 are treated as
// Indian mobiles, other ten-digit numbers as North American.
func FormatPhone(raw string) (string, bool) {
	hasPlus := strings.HasPrefix(strings.TrimSpace(raw), "+")
	digits := digitsOnly(raw)
	if len(digits) < 10 || len(digits) > 15 {
		return "", false
	}

	switch {
	case hasPlus:
		return "+" + digits, true
	case len(digits) == 10 && digits[0] >= '6':
		return "+91" + digits, true
	case len(digits) == 10:
		return "+1" + digits, true
	case len(digits) == 11 && digits[0] == '1':
		return "+" + digits, true
	case len(digits) == 12 && strings.HasPrefix(digits, "91"):
		return "+" + digits, true
	default:
		return "+" + digits, true
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
