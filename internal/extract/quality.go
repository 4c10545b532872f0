package extract

import "unicode"

const (
	// Below this quality, the next PDF stage (ultimately OCR) is attempted.
	pdfQualityThreshold = 0.55
	// Text shorter than this never counts as a good PDF extraction.
	minPDFTextChars = 150
)

// QualityScore rates extracted text in [0,1] as a weighted blend of the
// printable-character ratio and the alphabetic-character ratio. It is used
// to pick among PDF stages and to decide whether OCR fallback is warranted.
func QualityScore(text string) float64 {
	if text == "" {
		return 0
	}
	var total, printable, alpha int
	for _, r := range text {
		total++
		if isGarbageRune(r) {
			continue
		}
		if unicode.IsPrint(r) || r == '\n' || r == '\t' {
			printable++
		}
		if unicode.IsLetter(r) || r == ' ' || r == '\n' {
			alpha++
		}
	}
	if total == 0 {
		return 0
	}
	return 0.6*float64(printable)/float64(total) + 0.4*float64(alpha)/float64(total)
}

func isGarbageRune(r rune) bool {
	// Private Use Area
	if r >= 0xE000 && r <= 0xF8FF {
		return true
	}
	// Replacement character
	if r == 0xFFFD {
		return true
	}
	// Control chars except whitespace
	if r < 0x0020 && r != '\n' && r != '\r' && r != '\t' {
		return true
	}
	return false
}
