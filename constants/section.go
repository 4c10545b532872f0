package constants

// SectionName identifies a canonical resume section.
type SectionName string

const (
	SectionSkills         SectionName = "skills"
	SectionExperience     SectionName = "experience"
	SectionEducation      SectionName = "education"
	SectionCertifications SectionName = "certifications"
	SectionProjects       SectionName = "projects"
	SectionSummary        SectionName = "summary"
)

// SectionNames lists all canonical sections in scan order.
var SectionNames = []SectionName{
	SectionSummary,
	SectionSkills,
	SectionExperience,
	SectionEducation,
	SectionCertifications,
	SectionProjects,
}
