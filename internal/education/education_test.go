package education

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	lines := []string{
		"B.Tech in Computer Science",
		"Pune University, 2019",
		"CGPA: 8.2",
	}
	got := Extract(lines)
	require.Len(t, got, 1)

	e := got[0]
	assert.Equal(t, "B.Tech", e.Degree)
	assert.Equal(t, "Computer Science", e.Field)
	assert.Contains(t, e.Institution, "Pune University")
	assert.Equal(t, "2019", e.Year)
	assert.Equal(t, "8.2", e.GPA)
}

func TestExtractSingleLine(t *testing.T) {
	got := Extract([]string{"MBA from Symbiosis Institute of Business Management, 2021"})
	require.Len(t, got, 1)
	assert.Equal(t, "MBA", got[0].Degree)
	assert.Contains(t, got[0].Institution, "Symbiosis Institute")
	assert.Equal(t, "2021", got[0].Year)
}

func TestExtractDeduplicates(t *testing.T) {
	lines := []string{
		"B.Sc from Mumbai University",
		"B.Sc from Mumbai University",
	}
	got := Extract(lines)
	assert.Len(t, got, 1)
}

func TestExtractNoDegree(t *testing.T) {
	assert.Empty(t, Extract([]string{"just some narrative text"}))
	assert.Empty(t, Extract(nil))
}

func TestCertifications(t *testing.T) {
	lines := []string{
		"- AWS Certified Solutions Architect - Amazon, 2023",
		"Tesseract OCR Fundamentals issued by Udemy",
		"- AWS Certified Solutions Architect - Amazon, 2023",
	}
	got := Certifications(lines)
	require.Len(t, got, 2)

	assert.Equal(t, "AWS Certified Solutions Architect", got[0].Name)
	assert.Contains(t, got[0].Issuer, "Amazon")
	assert.Equal(t, "2023", got[0].Year)

	assert.Equal(t, "Tesseract OCR Fundamentals", got[1].Name)
	assert.Equal(t, "Udemy", got[1].Issuer)
}

func TestProjects(t *testing.T) {
	lines := []string{
		"Inventory Tracker",
		"- Web dashboard for warehouse stock levels.",
		"Technologies: Go, PostgreSQL, Redis",
		"Resume Screener",
		"- Parses resumes and ranks candidates.",
	}
	got := Projects(lines)
	require.Len(t, got, 2)

	assert.Equal(t, "Inventory Tracker", got[0].Name)
	assert.Contains(t, got[0].Description, "warehouse")
	assert.Equal(t, []string{"Go", "PostgreSQL", "Redis"}, got[0].Technologies)

	assert.Equal(t, "Resume Screener", got[1].Name)
	assert.Contains(t, got[1].Description, "ranks candidates")
}

func TestProjectsEmpty(t *testing.T) {
	assert.Empty(t, Projects(nil))
}
