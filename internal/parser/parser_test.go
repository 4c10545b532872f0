package parser

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentsift/resume-parser/constants"
	"github.com/talentsift/resume-parser/internal/common"
)

const sampleResume = `AKASH ANANDA REDEKAR
akashredekar@gmail.com
9876543210
Ghansoli

PROFESSIONAL SUMMARY
ELV engineer with 1+ years of experience in building management systems.

TECHNICAL SKILLS
ELV, Building Management System, AutoCAD, Networking

WORK EXPERIENCE
Hashrate Communications Pvt. Ltd. | Ghansoli
ELV - BMS Engineer
Oct 2024 - Present
- Installed and commissioned building management systems.
- Prepared as-built documentation for client handover.

EDUCATION
Diploma in Electronics, Mumbai University, 2022
`

func writeResume(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testParser() *Parser {
	return New(&common.Config{}, nil)
}

var fixedNow = time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

func TestParseEndToEnd(t *testing.T) {
	path := writeResume(t, sampleResume)
	got, err := testParser().Parse(context.Background(), path, Options{Now: fixedNow})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Contains(t, got.Name, "Akash")
	assert.Equal(t, "akashredekar@gmail.com", got.Contact.Email)
	assert.Equal(t, "+919876543210", got.Contact.Phone)
	assert.Equal(t, "Ghansoli", got.Contact.Location)

	require.NotEmpty(t, got.Experience)
	assert.Contains(t, got.Experience[0].Company, "Hashrate")
	assert.Contains(t, got.Experience[0].Role, "BMS Engineer")
	assert.True(t, got.Experience[0].IsCurrent)
	assert.Equal(t, "Oct 2024", got.Experience[0].StartDate)

	assert.Contains(t, got.Experience[0].Role, got.CurrentRole)
	assert.Contains(t, got.CurrentCompany, "Hashrate")

	assert.NotEmpty(t, got.Skills)
	require.NotEmpty(t, got.Education)
	assert.Equal(t, "Diploma", got.Education[0].Degree)

	// Stated "1+ years" loses to the derived duration sum only when the
	// derived figure is larger; either way the total is positive.
	assert.Greater(t, got.TotalExperienceYears, 0.0)

	assert.Equal(t, constants.StatusSuccess, got.Status)
	assert.NotEmpty(t, got.RawText)
	assert.Equal(t, "TEXT", got.Metadata.Format)
	assert.NotEmpty(t, got.Metadata.RequestID)
}

func TestParseDeterministic(t *testing.T) {
	path := writeResume(t, sampleResume)
	p := testParser()

	ctx := common.WithRequestID(context.Background(), "fixed-request")
	opts := Options{Now: fixedNow}

	first, err := p.Parse(ctx, path, opts)
	require.NoError(t, err)
	firstJSON, err := json.Marshal(scrubTimes(first))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		again, err := p.Parse(ctx, path, opts)
		require.NoError(t, err)
		againJSON, err := json.Marshal(scrubTimes(again))
		require.NoError(t, err)
		assert.Equal(t, string(firstJSON), string(againJSON))
	}
}

func TestParseConfidenceMatchesPresence(t *testing.T) {
	path := writeResume(t, sampleResume)
	got, err := testParser().Parse(context.Background(), path, Options{Now: fixedNow})
	require.NoError(t, err)

	populated := map[string]bool{
		"name":           got.Name != "",
		"email":          got.Contact.Email != "",
		"phone":          got.Contact.Phone != "",
		"location":       got.Contact.Location != "",
		"links":          got.Contact.LinkedIn != "" || got.Contact.GitHub != "",
		"summary":        got.Summary != "",
		"skills":         len(got.Skills) > 0,
		"experience":     len(got.Experience) > 0,
		"education":      len(got.Education) > 0,
		"certifications": len(got.Certifications) > 0,
		"projects":       len(got.Projects) > 0,
	}
	for field, present := range populated {
		if present {
			assert.Greater(t, got.Confidence[field], 0.0, "field %s", field)
		} else {
			assert.Zero(t, got.Confidence[field], "field %s", field)
		}
	}
}

func TestParseEmptyDocument(t *testing.T) {
	path := writeResume(t, "   \n  \n")
	got, err := testParser().Parse(context.Background(), path, Options{Now: fixedNow})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, constants.StatusFailed, got.Status)
	assert.Empty(t, got.Name)
	assert.Empty(t, got.Skills)
	assert.NotEmpty(t, got.Metadata.Warnings)
	for field, conf := range got.Confidence {
		assert.Zero(t, conf, "field %s", field)
	}
}

func TestParseReversedDateRangeWarning(t *testing.T) {
	path := writeResume(t, `Jane Doe
jane@example.com

WORK EXPERIENCE
Globex Technologies
Backend Developer
Mar 2024 - Jan 2020
Built internal services.
`)
	got, err := testParser().Parse(context.Background(), path, Options{Now: fixedNow})
	require.NoError(t, err)

	require.NotEmpty(t, got.Experience)
	assert.Equal(t, "Jan 2020", got.Experience[0].StartDate)
	assert.Equal(t, "Mar 2024", got.Experience[0].EndDate)
	assert.Greater(t, got.Experience[0].Months, 0)

	found := false
	for _, w := range got.Metadata.Warnings {
		if strings.Contains(w, "reversed date range") {
			found = true
		}
	}
	assert.True(t, found, "warnings: %v", got.Metadata.Warnings)
}

func TestParseUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob.xyz")
	require.NoError(t, os.WriteFile(path, []byte{0x00, 0xfe, 0xff, 0x01}, 0o644))

	_, err := testParser().Parse(context.Background(), path, Options{})
	require.Error(t, err)
}

func TestParseMatchScore(t *testing.T) {
	path := writeResume(t, sampleResume)
	got, err := testParser().Parse(context.Background(), path, Options{
		Now:            fixedNow,
		JobDescription: "Looking for an engineer with AutoCAD and Networking, plus Terraform.",
	})
	require.NoError(t, err)
	assert.Greater(t, got.MatchScore, 0.0)
	assert.LessOrEqual(t, got.MatchScore, 1.0)
}

func TestParseOmitRawText(t *testing.T) {
	path := writeResume(t, sampleResume)
	got, err := testParser().Parse(context.Background(), path, Options{Now: fixedNow, OmitRawText: true})
	require.NoError(t, err)
	assert.Empty(t, got.RawText)
}

// scrubTimes zeroes the wall-clock metadata so runs compare equal.
func scrubTimes(r any) any {
	raw, _ := json.Marshal(r)
	var m map[string]any
	_ = json.Unmarshal(raw, &m)
	if md, ok := m["metadata"].(map[string]any); ok {
		delete(md, "duration_ms")
		delete(md, "parsed_at")
	}
	return m
}
