package name

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"github.com/talentsift/resume-parser/internal/nlp"
)

// Document is the view of the resume a strategy works against.
type Document struct {
	Text  string
	Lines []string
	Email string
}

// Candidate is one strategy's proposal.
type Candidate struct {
	Value      string
	Confidence float64
}

// Strategy proposes name candidates with per-candidate confidence. An empty
// result is a normal outcome, never an error.
type Strategy interface {
	Name() string
	Extract(ctx context.Context, doc Document) []Candidate
}

const (
	topLinesScanned  = 10
	entityScanChars  = 1000
	patternScanLines = 20
)

// topLinesStrategy scans the first non-empty lines; resumes open with the
// candidate's name far more often than not. Confidence decays with position.
type topLinesStrategy struct{}

func (topLinesStrategy) Name() string { return "top-lines" }

func (topLinesStrategy) Extract(_ context.Context, doc Document) []Candidate {
	var out []Candidate
	for i, line := range doc.Lines {
		if i >= topLinesScanned {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.ContainsAny(line, "@|") || containsDigit(line) {
			continue
		}
		if len(strings.Fields(line)) > 5 {
			continue
		}
		if !IsLikelyName(line, doc.Email) {
			continue
		}
		conf := 1.0 - 0.08*float64(i)
		if conf < 0.5 {
			conf = 0.5
		}
		out = append(out, Candidate{Value: line, Confidence: conf})
	}
	return out
}

// emailDerivedStrategy reconstructs a name from the email local part.
type emailDerivedStrategy struct{}

func (emailDerivedStrategy) Name() string { return "email-derived" }

var emailGenericSuffixes = []string{"official", "resume", "work", "mail", "dev", "hr"}

func (emailDerivedStrategy) Extract(_ context.Context, doc Document) []Candidate {
	if doc.Email == "" {
		return nil
	}
	local := emailLocalPart(doc.Email)

	// Strip digits and generic suffixes before splitting.
	var b strings.Builder
	for _, r := range local {
		if !unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	for _, s := range emailGenericSuffixes {
		cleaned = strings.TrimSuffix(cleaned, s)
	}
	if cleaned == "" {
		return nil
	}

	parts := splitNameParts(cleaned)
	if len(parts) == 0 {
		return nil
	}
	for i, p := range parts {
		parts[i] = titleCaseWord(p)
	}
	candidate := strings.Join(parts, " ")
	if !IsLikelyName(candidate, doc.Email) {
		return nil
	}
	conf := 0.6
	if len(parts) >= 2 {
		conf = 0.8
	}
	return []Candidate{{Value: candidate, Confidence: conf}}
}

// splitNameParts breaks an email local part on separators and internal
// capitalization (camel case).
func splitNameParts(local string) []string {
	var parts []string
	for _, chunk := range strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	}) {
		parts = append(parts, splitCamel(chunk)...)
	}
	var out []string
	for _, p := range parts {
		if len(p) >= 2 {
			out = append(out, p)
		}
	}
	return out
}

func splitCamel(s string) []string {
	var parts []string
	start := 0
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			parts = append(parts, s[start:i])
			start = i
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// entityStrategy asks the optional NER model for PERSON entities in the
// document head. Without a loaded model it degrades to no result.
type entityStrategy struct{}

func (entityStrategy) Name() string { return "entity-recognition" }

func (entityStrategy) Extract(ctx context.Context, doc Document) []Candidate {
	recognizer := nlp.NER()
	if recognizer == nil {
		return nil
	}
	head := doc.Text
	if len(head) > entityScanChars {
		head = head[:entityScanChars]
	}
	entities, err := recognizer.RecognizeEntities(ctx, head)
	if err != nil {
		return nil
	}
	var out []Candidate
	conf := 0.9
	for _, e := range entities {
		if e.Label != "PERSON" {
			continue
		}
		if !IsLikelyName(e.Text, doc.Email) {
			continue
		}
		out = append(out, Candidate{Value: e.Text, Confidence: conf})
		if conf > 0.5 {
			conf -= 0.15
		}
	}
	return out
}

// patternStrategy matches name-shaped lines: ALL CAPS, Title Case, and
// initialed forms, anchored at line start.
type patternStrategy struct{}

func (patternStrategy) Name() string { return "pattern-matching" }

var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^([A-Z]{2,}(?:\s+[A-Z]{2,}){1,3})\s*$`),
	regexp.MustCompile(`^([A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3})\s*$`),
	regexp.MustCompile(`^([A-Z]\.\s*[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\s*$`),
}

func (patternStrategy) Extract(_ context.Context, doc Document) []Candidate {
	var out []Candidate
	for i, line := range doc.Lines {
		if i >= patternScanLines {
			break
		}
		for _, re := range namePatterns {
			m := re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			if !IsLikelyName(m[1], doc.Email) {
				continue
			}
			out = append(out, Candidate{Value: m[1], Confidence: 0.7})
			break
		}
	}
	return out
}

// headerLabelStrategy matches explicit "Name:" / "Candidate:" labels.
type headerLabelStrategy struct{}

func (headerLabelStrategy) Name() string { return "header-label" }

var reNameLabel = regexp.MustCompile(`(?i)^\s*(?:name|candidate(?:\s+name)?)\s*[:\-]\s*(.+?)\s*$`)

func (headerLabelStrategy) Extract(_ context.Context, doc Document) []Candidate {
	for _, line := range doc.Lines {
		if m := reNameLabel.FindStringSubmatch(line); m != nil {
			if IsLikelyName(m[1], doc.Email) {
				return []Candidate{{Value: m[1], Confidence: 0.95}}
			}
		}
	}
	return nil
}

// contactAdjacencyStrategy accepts a name-looking line immediately followed
// by a line carrying an email or phone.
type contactAdjacencyStrategy struct{}

func (contactAdjacencyStrategy) Name() string { return "contact-adjacency" }

var reContactish = regexp.MustCompile(`@|\+?\d[\d\s().-]{8,}`)

func (contactAdjacencyStrategy) Extract(_ context.Context, doc Document) []Candidate {
	for i := 0; i+1 < len(doc.Lines) && i < topLinesScanned; i++ {
		line := strings.TrimSpace(doc.Lines[i])
		next := doc.Lines[i+1]
		if line == "" || !reContactish.MatchString(next) {
			continue
		}
		if reContactish.MatchString(line) {
			continue
		}
		if IsLikelyName(line, doc.Email) {
			return []Candidate{{Value: line, Confidence: 0.85}}
		}
	}
	return nil
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func titleCaseWord(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
}
