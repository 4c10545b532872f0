package experience

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

func TestMatchDateRange(t *testing.T) {
	r, ok := MatchDateRange("Oct 2024 - Present")
	require.True(t, ok)
	assert.Equal(t, "Oct 2024", r.StartToken)
	assert.Equal(t, "Present", r.EndToken)
	assert.True(t, r.IsCurrent)

	r, ok = MatchDateRange("2022 - 2024")
	require.True(t, ok)
	assert.Equal(t, "2022", r.StartToken)
	assert.Equal(t, "2024", r.EndToken)
	assert.False(t, r.IsCurrent)

	r, ok = MatchDateRange("January 2020 to March 2021")
	require.True(t, ok)
	assert.Equal(t, "January 2020", r.StartToken)
	assert.Equal(t, "March 2021", r.EndToken)

	_, ok = MatchDateRange("no dates here")
	assert.False(t, ok)
}

func TestParseDateToken(t *testing.T) {
	got, ok := ParseDateToken("Oct 2024", testNow)
	require.True(t, ok)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.October, got.Month())

	got, ok = ParseDateToken("January 2020", testNow)
	require.True(t, ok)
	assert.Equal(t, time.January, got.Month())

	got, ok = ParseDateToken("03/2021", testNow)
	require.True(t, ok)
	assert.Equal(t, time.March, got.Month())

	got, ok = ParseDateToken("2022", testNow)
	require.True(t, ok)
	assert.Equal(t, 2022, got.Year())

	got, ok = ParseDateToken("Present", testNow)
	require.True(t, ok)
	assert.Equal(t, testNow, got)

	_, ok = ParseDateToken("garbage", testNow)
	assert.False(t, ok)
}

func TestDurationMonths(t *testing.T) {
	assert.Equal(t, 24, DurationMonths("2022", "2024", testNow))
	assert.Equal(t, 17, DurationMonths("Oct 2024", "Present", testNow))
	assert.Equal(t, 0, DurationMonths("2025", "2020", testNow))
	assert.Equal(t, 0, DurationMonths("garbage", "2024", testNow))
}

func TestExtractCompanyAboveRole(t *testing.T) {
	lines := []string{
		"WORK EXPERIENCE",
		"Hashrate Communications Pvt. Ltd. | Ghansoli",
		"ELV - BMS Engineer",
		"Oct 2024 - Present",
		"- Installed and commissioned building management systems.",
		"- Coordinated vendor handover documentation.",
	}
	got, _ := Extract(lines, testNow)
	require.Len(t, got, 1)

	e := got[0]
	assert.Contains(t, e.Company, "Hashrate")
	assert.Contains(t, e.Role, "BMS Engineer")
	assert.Equal(t, "Ghansoli", e.Location)
	assert.Equal(t, "Oct 2024", e.StartDate)
	assert.Equal(t, "Present", e.EndDate)
	assert.True(t, e.IsCurrent)
	assert.Len(t, e.Responsibilities, 2)
}

func TestExtractRoleAboveCompany(t *testing.T) {
	lines := []string{
		"Senior Backend Developer",
		"Acme Solutions",
		"Jan 2020 - Dec 2022",
		"Built APIs for payment processing.",
	}
	got, _ := Extract(lines, testNow)
	require.Len(t, got, 1)
	assert.Equal(t, "Acme Solutions", got[0].Company)
	assert.Equal(t, "Senior Backend Developer", got[0].Role)
	assert.False(t, got[0].IsCurrent)
	assert.Equal(t, 35, got[0].Months)
	assert.Equal(t, "Built APIs for payment processing.", got[0].Description)
}

func TestExtractMultipleEntriesAndDedup(t *testing.T) {
	lines := []string{
		"Acme Solutions",
		"Backend Developer",
		"Jan 2020 - Dec 2021",
		"Globex Technologies",
		"Platform Engineer",
		"Jan 2022 - Present",
		"Acme Solutions",
		"Backend Developer",
		"Jan 2020 - Dec 2021",
	}
	got, _ := Extract(lines, testNow)
	require.Len(t, got, 2)
	assert.Equal(t, "Acme Solutions", got[0].Company)
	assert.Equal(t, "Globex Technologies", got[1].Company)
}

func TestExtractNarrativeFallback(t *testing.T) {
	lines := []string{
		"Career",
		"2019 - 2021",
		"Associated with Initech Solutions as a QA Analyst for the billing stack.",
	}
	got, _ := Extract(lines, testNow)
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Company, "Initech")
	assert.Contains(t, got[0].Role, "QA Analyst")
}

func TestExtractSynthesizesWithoutDates(t *testing.T) {
	lines := []string{
		"Jane Doe",
		"Working at Initech Technologies",
		"Senior QA Analyst",
	}
	got, _ := Extract(lines, testNow)
	require.Len(t, got, 1)
	assert.True(t, got[0].IsCurrent)
	assert.Equal(t, "Present", got[0].EndDate)
	assert.Contains(t, got[0].Company, "Initech")
}

func TestExtractRepairsReversedRange(t *testing.T) {
	lines := []string{
		"Acme Solutions",
		"Backend Developer",
		"Mar 2024 - Jan 2020",
	}
	got, warnings := Extract(lines, testNow)
	require.Len(t, got, 1)
	assert.Equal(t, "Jan 2020", got[0].StartDate)
	assert.Equal(t, "Mar 2024", got[0].EndDate)
	assert.Equal(t, 50, got[0].Months)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "reversed date range")
}

func TestExtractEmptyInput(t *testing.T) {
	got, warnings := Extract(nil, testNow)
	assert.Empty(t, got)
	assert.Empty(t, warnings)
	got, _ = Extract([]string{"nothing useful"}, testNow)
	assert.Empty(t, got)
}

func TestStatedYears(t *testing.T) {
	assert.InDelta(t, 5.5, StatedYears("Over 5.5 years of experience in ERP systems."), 1e-9)
	assert.InDelta(t, 3, StatedYears("3+ years of hands-on experience with Go."), 1e-9)
	assert.Zero(t, StatedYears("worked for many years"))
}
