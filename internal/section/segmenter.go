// Package section locates named resume sections by header-pattern matching.
// Spans are non-overlapping line ranges; a document has at most one span per
// section name (first occurrence wins).
package section

import (
	"strings"

	"github.com/talentsift/resume-parser/constants"
)

// headerVocabulary is the controlled set of header phrases per section.
// Phrases are compared against the letters-only, lowercased form of a line.
var headerVocabulary = map[constants.SectionName][]string{
	constants.SectionSkills: {
		"skills", "technical skills", "core competencies", "key skills",
		"skill set", "technologies", "technical proficiencies", "areas of expertise",
	},
	constants.SectionExperience: {
		"experience", "work experience", "professional experience",
		"employment history", "work history", "career history", "professional background",
	},
	constants.SectionEducation: {
		"education", "academic background", "educational qualifications",
		"academics", "qualifications", "academic qualifications",
	},
	constants.SectionCertifications: {
		"certifications", "certification", "licenses", "certificates",
		"courses and certifications", "trainings and certifications",
	},
	constants.SectionProjects: {
		"projects", "personal projects", "academic projects", "key projects",
		"projects undertaken",
	},
	constants.SectionSummary: {
		"summary", "professional summary", "profile", "objective",
		"career objective", "about me", "career summary",
	},
}

// stopHeaders close whichever section is open without starting a new one.
// Anything under them (referee contacts, signatures, hobbies) is noise for
// every extractor downstream.
var stopHeaders = []string{
	"references", "reference", "declaration", "hobbies", "interests",
	"hobbies and interests", "personal details", "personal information",
	"languages known",
}

const maxHeaderWords = 5

// Span is a named line range [Start, End) within the segmented document.
// Start is the first content line after the header.
type Span struct {
	Name  constants.SectionName
	Start int
	End   int
}

// Segmentation holds the located spans plus the lines they index into.
type Segmentation struct {
	lines []string
	spans map[constants.SectionName]Span
	order []constants.SectionName
}

// Segment scans lines for section headers and returns the resulting spans.
func Segment(lines []string) *Segmentation {
	seg := &Segmentation{
		lines: lines,
		spans: make(map[constants.SectionName]Span),
	}

	var open *Span
	for i, line := range lines {
		if matchStop(line) {
			if open != nil {
				open.End = i
				seg.commit(*open)
				open = nil
			}
			continue
		}
		name, ok := MatchHeader(line)
		if !ok {
			continue
		}
		if open != nil {
			open.End = i
			seg.commit(*open)
		}
		open = &Span{Name: name, Start: i + 1, End: len(lines)}
	}
	if open != nil {
		seg.commit(*open)
	}
	return seg
}

func (s *Segmentation) commit(sp Span) {
	if _, exists := s.spans[sp.Name]; exists {
		return // first span per name wins
	}
	s.spans[sp.Name] = sp
	s.order = append(s.order, sp.Name)
}

// Span returns the located span for a section name.
func (s *Segmentation) Span(name constants.SectionName) (Span, bool) {
	sp, ok := s.spans[name]
	return sp, ok
}

// Lines returns the content lines of a section, nil when absent.
func (s *Segmentation) Lines(name constants.SectionName) []string {
	sp, ok := s.spans[name]
	if !ok {
		return nil
	}
	return s.lines[sp.Start:sp.End]
}

// Text returns the section content joined back into one string.
func (s *Segmentation) Text(name constants.SectionName) string {
	return strings.Join(s.Lines(name), "\n")
}

// Names returns the section names in document order.
func (s *Segmentation) Names() []constants.SectionName {
	return s.order
}

// MatchHeader reports whether a line is a recognized section header. A header
// is recognized only if, after removing non-letter characters, it is five
// words or fewer and equals, or is a prefix of, a known phrase. Lines that
// merely start with a phrase ("Skills: Python, SQL", "Experience in SAP
// implementation") are content, not headers.
func MatchHeader(line string) (constants.SectionName, bool) {
	cleaned := cleanHeader(line)
	if cleaned == "" {
		return "", false
	}
	if len(strings.Fields(cleaned)) > maxHeaderWords {
		return "", false
	}
	for _, name := range constants.SectionNames {
		for _, phrase := range headerVocabulary[name] {
			if cleaned == phrase {
				return name, true
			}
			// A truncated header ("technical skil") still counts when it is
			// a prefix of a known multi-word phrase.
			if len(cleaned) >= 5 && strings.HasPrefix(phrase, cleaned) {
				return name, true
			}
		}
	}
	return "", false
}

// matchStop reports whether a line is a stop-only header.
func matchStop(line string) bool {
	cleaned := cleanHeader(line)
	if cleaned == "" || len(strings.Fields(cleaned)) > maxHeaderWords {
		return false
	}
	for _, phrase := range stopHeaders {
		if cleaned == phrase {
			return true
		}
	}
	return false
}

// cleanHeader strips every non-letter rune (keeping word breaks) and
// lowercases the rest.
func cleanHeader(line string) string {
	var b strings.Builder
	for _, r := range line {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		case r == ' ' || r == '\t':
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
