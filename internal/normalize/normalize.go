// Package normalize cleans extracted resume text into a canonical form the
// downstream extractors can rely on. Normalize is idempotent: running it over
// already-normalized text is a no-op.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(` {2,}`)
	reBullet     = regexp.MustCompile(`(?m)^[\x{2022}\x{2023}\x{25AA}\x{25CF}\x{00B7}\x{2219}*\x{2043}]\s*`)

	// OCR frequently renders "user (at) host (dot) com" or spaces out the "@".
	reAtWord  = regexp.MustCompile(`(?i)([a-z0-9._%+-])\s*[\(\[]\s*at\s*[\)\]]\s*([a-z0-9])`)
	reDotWord = regexp.MustCompile(`(?i)([a-z0-9_%+-])\s*[\(\[]\s*dot\s*[\)\]]\s*([a-z])`)
	reSpacedAt = regexp.MustCompile(`([a-zA-Z0-9._%+-]) @ ([a-zA-Z0-9])`)

	// Long runs of single digits separated by spaces are OCR-mangled phone
	// numbers; collapse the spaces.
	reSpacedDigits = regexp.MustCompile(`\b\d(?: \d){6,}\b`)

	// A pipe wedged between letters inside a word is a misread "l"
	// ("Linked|n"). Pipes used as delimiters keep their surrounding spaces
	// and are left alone.
	rePipeForL = regexp.MustCompile(`([A-Za-z])\|([a-z])`)
)

// Normalize applies unicode NFC, line-ending unification, OCR artifact
// repair, whitespace collapsing, and blank-line removal.
func Normalize(s string) string {
	if s == "" {
		return s
	}

	s = norm.NFC.String(s)
	s = reCRLF.ReplaceAllString(s, "\n")
	s = strings.ReplaceAll(s, "\f", "\n")
	s = strings.ReplaceAll(s, " ", " ")
	s = stripControl(s)
	s = reTabs.ReplaceAllString(s, " ")
	s = reBullet.ReplaceAllString(s, "- ")

	s = reAtWord.ReplaceAllString(s, "$1@$2")
	s = reDotWord.ReplaceAllString(s, "$1.$2")
	s = reSpacedAt.ReplaceAllString(s, "$1@$2")
	s = reSpacedDigits.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ReplaceAll(m, " ", "")
	})
	s = rePipeForL.ReplaceAllString(s, "${1}l$2")

	s = reMultiSpace.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, ln := range lines {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		out = append(out, ln)
	}
	return strings.Join(out, "\n")
}

// Lines splits normalized text into its lines. The result is empty, never
// nil-deref prone, for empty input.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// stripControl removes raw control bytes except newlines.
func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f || r == 0xfffd {
			return -1
		}
		return r
	}, s)
}
