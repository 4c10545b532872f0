package resume

import (
	"time"

	"github.com/talentsift/resume-parser/constants"
	"github.com/talentsift/resume-parser/internal/education"
	"github.com/talentsift/resume-parser/internal/experience"
	"github.com/talentsift/resume-parser/internal/skills"
)

// Contact groups the candidate's contact details.
type Contact struct {
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	AlternatePhone string `json:"alternate_phone,omitempty"`
	Location       string `json:"location,omitempty"`
	LinkedIn       string `json:"linkedin,omitempty"`
	GitHub         string `json:"github,omitempty"`
}

// Metadata records how the document was processed.
type Metadata struct {
	RequestID        string    `json:"request_id,omitempty"`
	SourceFile       string    `json:"source_file,omitempty"`
	Format           string    `json:"format"`
	ExtractionMethod string    `json:"extraction_method"`
	NameStrategies   []string  `json:"name_strategies,omitempty"`
	Warnings         []string  `json:"warnings,omitempty"`
	ParsedAt         time.Time `json:"parsed_at"`
	DurationMS       int64     `json:"duration_ms"`
}

// ParsedResume is the strict, fully-typed output record. It is built
// once by the assembler and never mutated afterwards.
type ParsedResume struct {
	Name                 string                    `json:"name"`
	Contact              Contact                   `json:"contact"`
	Summary              string                    `json:"summary,omitempty"`
	Skills               []skills.Skill            `json:"skills"`
	Experience           []experience.Entry        `json:"experience"`
	Education            []education.Entry         `json:"education"`
	Certifications       []education.Certification `json:"certifications"`
	Projects             []education.Project       `json:"projects"`
	CurrentRole          string                    `json:"current_role,omitempty"`
	CurrentCompany       string                    `json:"current_company,omitempty"`
	TotalExperienceYears float64                   `json:"total_experience_years"`
	MatchScore           float64                   `json:"match_score,omitempty"`
	Industry             constants.Industry        `json:"industry,omitempty"`
	Status               constants.ParseStatus     `json:"status"`
	Confidence           map[string]float64        `json:"confidence"`
	Metadata             Metadata                  `json:"metadata"`
	RawText              string                    `json:"raw_text,omitempty"`
}

// SkillNames returns just the canonical skill names, in output order.
func (r *ParsedResume) SkillNames() []string {
	names := make([]string, 0, len(r.Skills))
	for _, s := range r.Skills {
		names = append(names, s.Name)
	}
	return names
}
