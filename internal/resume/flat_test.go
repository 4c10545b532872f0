package resume

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentsift/resume-parser/constants"
	"github.com/talentsift/resume-parser/internal/education"
	"github.com/talentsift/resume-parser/internal/experience"
	"github.com/talentsift/resume-parser/internal/skills"
)

func sampleRecord() *ParsedResume {
	return &ParsedResume{
		Name: "Jane Doe",
		Contact: Contact{
			Email:    "jane@example.com",
			Phone:    "+919876543210",
			Location: "Pune, Maharashtra",
			LinkedIn: "linkedin.com/in/janedoe",
		},
		Summary: "Backend engineer.",
		Skills: []skills.Skill{
			{Name: "Go", Category: "programming", Source: "skills-section", Score: 100},
			{Name: "PostgreSQL", Category: "databases", Source: "document", Score: 85},
		},
		Experience: []experience.Entry{{
			Company:   "Acme Solutions",
			Role:      "Backend Developer",
			StartDate: "Jan 2020",
			EndDate:   "Present",
			IsCurrent: true,
			Months:    36,
		}},
		Education: []education.Entry{{
			Institution: "Pune University",
			Degree:      "B.Tech",
			Year:        "2019",
		}},
		Certifications:       []education.Certification{{Name: "OCR Fundamentals", Issuer: "Udemy"}},
		Projects:             []education.Project{{Name: "Inventory Tracker"}},
		CurrentRole:          "Backend Developer",
		CurrentCompany:       "Acme Solutions",
		TotalExperienceYears: 3,
		Industry:             constants.SoftwareEngineering,
		Status:               constants.StatusSuccess,
		Confidence:           map[string]float64{"name": 0.9, "email": 0.95},
		Metadata: Metadata{
			RequestID:        "req-1",
			Format:           "PDF",
			ExtractionMethod: "pdf-native",
			ParsedAt:         time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		},
	}
}

func TestFlatAliasedKeys(t *testing.T) {
	m := sampleRecord().Flat()

	assert.Equal(t, "Jane Doe", m["name"])
	assert.Equal(t, "Jane Doe", m["full_name"])
	assert.Equal(t, "Jane Doe", m["candidate_name"])
	assert.Equal(t, "+919876543210", m["phone"])
	assert.Equal(t, m["phone"], m["mobile"])
	assert.Equal(t, m["location"], m["city"])
	assert.Equal(t, m["current_role"], m["designation"])
	assert.Equal(t, []string{"Go", "PostgreSQL"}, m["skills"])
	assert.Equal(t, "SUCCESS", m["status"])
}

func TestFlatRoundTrip(t *testing.T) {
	orig := sampleRecord()
	got := FromFlat(orig.Flat())

	assert.Equal(t, orig.Name, got.Name)
	assert.Equal(t, orig.Contact, got.Contact)
	assert.Equal(t, orig.Skills, got.Skills)
	assert.Equal(t, orig.Experience, got.Experience)
	assert.Equal(t, orig.Education, got.Education)
	assert.Equal(t, orig.Certifications, got.Certifications)
	assert.Equal(t, orig.CurrentRole, got.CurrentRole)
	assert.Equal(t, orig.CurrentCompany, got.CurrentCompany)
	assert.Equal(t, orig.TotalExperienceYears, got.TotalExperienceYears)
	assert.Equal(t, orig.Status, got.Status)
	assert.Equal(t, orig.Confidence, got.Confidence)
	assert.Equal(t, orig.Metadata.RequestID, got.Metadata.RequestID)
	assert.Equal(t, orig.Metadata.ParsedAt, got.Metadata.ParsedAt)
}

func TestFromFlatSkipsMalformedEntries(t *testing.T) {
	m := map[string]any{
		"full_name": "Jane Doe",
		"experience": []any{
			map[string]any{"company": "Acme Solutions", "role": "Developer"},
			map[string]any{"company": "", "role": ""},
			"not a map",
			42,
		},
		"education": []any{
			map[string]any{"degree": "B.Tech"},
			map[string]any{},
		},
		"skills": []any{"Go", 7, "Python"},
	}
	got := FromFlat(m)

	assert.Equal(t, "Jane Doe", got.Name)
	require.Len(t, got.Experience, 1)
	assert.Equal(t, "Acme Solutions", got.Experience[0].Company)
	require.Len(t, got.Education, 1)
	require.Len(t, got.Skills, 2)
	assert.Equal(t, "Go", got.Skills[0].Name)
}

func TestFromFlatEmptyMap(t *testing.T) {
	got := FromFlat(map[string]any{})
	assert.NotNil(t, got)
	assert.Empty(t, got.Name)
	assert.Empty(t, got.Experience)
}
