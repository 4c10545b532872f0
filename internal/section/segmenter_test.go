package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentsift/resume-parser/constants"
)

var sampleLines = []string{
	"Jane Doe",
	"jane@example.com",
	"PROFESSIONAL SUMMARY",
	"Engineer with five years of backend experience.",
	"TECHNICAL SKILLS",
	"Go, Python, PostgreSQL",
	"WORK EXPERIENCE",
	"Acme Corp | Pune",
	"Backend Developer",
	"Jan 2020 - Present",
	"EDUCATION",
	"B.Tech in Computer Science, Pune University, 2019",
}

func TestSegment(t *testing.T) {
	seg := Segment(sampleLines)

	assert.Equal(t, []constants.SectionName{
		constants.SectionSummary,
		constants.SectionSkills,
		constants.SectionExperience,
		constants.SectionEducation,
	}, seg.Names())

	assert.Equal(t, []string{"Go, Python, PostgreSQL"}, seg.Lines(constants.SectionSkills))

	sp, ok := seg.Span(constants.SectionExperience)
	require.True(t, ok)
	assert.Equal(t, 7, sp.Start)
	assert.Equal(t, 10, sp.End)

	assert.Equal(t, "B.Tech in Computer Science, Pune University, 2019",
		seg.Text(constants.SectionEducation))
}

func TestSegmentFirstSpanWins(t *testing.T) {
	lines := []string{
		"SKILLS",
		"Go",
		"SKILLS",
		"Python",
	}
	seg := Segment(lines)
	assert.Equal(t, []string{"Go"}, seg.Lines(constants.SectionSkills))
}

func TestSegmentInlineLabelIsContent(t *testing.T) {
	lines := []string{
		"PROFESSIONAL SUMMARY",
		"Backend engineer.",
		"Skills: Python, SQL",
	}
	seg := Segment(lines)
	assert.Equal(t, []string{"Backend engineer.", "Skills: Python, SQL"},
		seg.Lines(constants.SectionSummary))
	assert.Nil(t, seg.Lines(constants.SectionSkills))
}

func TestSegmentStopHeader(t *testing.T) {
	lines := []string{
		"EDUCATION",
		"B.Tech, Pune University, 2019",
		"REFERENCES",
		"Available on request.",
		"Declaration",
		"I hereby declare the above is true.",
	}
	seg := Segment(lines)
	assert.Equal(t, []string{"B.Tech, Pune University, 2019"},
		seg.Lines(constants.SectionEducation))
	assert.Equal(t, []constants.SectionName{constants.SectionEducation}, seg.Names())
}

func TestSegmentAbsentSection(t *testing.T) {
	seg := Segment([]string{"just one line"})
	assert.Nil(t, seg.Lines(constants.SectionProjects))
	assert.Empty(t, seg.Text(constants.SectionProjects))
}

func TestMatchHeader(t *testing.T) {
	cases := []struct {
		line string
		want constants.SectionName
		ok   bool
	}{
		{"TECHNICAL SKILLS", constants.SectionSkills, true},
		{"Skills:", constants.SectionSkills, true},
		{"Work Experience", constants.SectionExperience, true},
		{"EMPLOYMENT HISTORY", constants.SectionExperience, true},
		{"Education", constants.SectionEducation, true},
		{"Certifications", constants.SectionCertifications, true},
		{"Personal Projects", constants.SectionProjects, true},
		{"Career Objective", constants.SectionSummary, true},
		{"ELV - BMS Engineer", "", false},
		{"I have experience building large systems at scale over many years", "", false},
		{"Skills: Python, SQL", "", false},
		{"Experience in SAP implementation", "", false},
		{"Education in progress", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := MatchHeader(tc.line)
		assert.Equal(t, tc.ok, ok, "line %q", tc.line)
		if tc.ok {
			assert.Equal(t, tc.want, got, "line %q", tc.line)
		}
	}
}
