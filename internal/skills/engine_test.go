package skills

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSkillIdempotent(t *testing.T) {
	inputs := []string{
		"  Node.JS ",
		"CI/CD",
		"Sales & Marketing",
		"SAP SuccessFactors",
		"machine learning",
	}
	for _, in := range inputs {
		once := NormalizeSkill(in)
		assert.Equal(t, once, NormalizeSkill(once), "input %q", in)
	}
}

func TestRejectSkill(t *testing.T) {
	rejected := []string{
		"", "2021", "january", "mumbai", "and", "excellent",
		"excellent knowledge", "a b c d e f g",
	}
	for _, in := range rejected {
		assert.True(t, RejectSkill(NormalizeSkill(in)), "input %q", in)
	}
	kept := []string{"go", "sap successfactors", "project management"}
	for _, in := range kept {
		assert.False(t, RejectSkill(NormalizeSkill(in)), "input %q", in)
	}
}

func TestExtractFromSkillsSection(t *testing.T) {
	e := NewEngine(nil, nil)
	got := e.Extract(context.Background(), []Source{{
		Text: "Python, JavaScript, k8s, PostgreSQL",
		Tier: TierSection,
	}})

	names := skillNames(got)
	assert.Contains(t, names, "Python")
	assert.Contains(t, names, "JavaScript")
	assert.Contains(t, names, "Kubernetes") // alias resolved
	assert.Contains(t, names, "PostgreSQL")
	for _, s := range got {
		assert.GreaterOrEqual(t, s.Score, AcceptanceThreshold)
		assert.NotEmpty(t, s.Source)
	}
}

func TestExtractKeepsSpecificAndGeneralTaxonomyForms(t *testing.T) {
	e := NewEngine(nil, nil)
	got := e.Extract(context.Background(), []Source{{
		Text: "SAP, SAP SuccessFactors, SAP SuccessFactors Employee Central",
		Tier: TierSection,
	}})

	names := skillNames(got)
	assert.Contains(t, names, "SAP")
	assert.Contains(t, names, "SAP SuccessFactors")
}

func TestExtractFiltersDelimiterNoise(t *testing.T) {
	e := NewEngine(nil, nil)
	got := e.Extract(context.Background(), []Source{{
		Text: "Other, Identifying, Travel, SAP, SuccessFactors",
		Tier: TierSection,
	}})

	assert.ElementsMatch(t, []string{"SAP", "SAP SuccessFactors"}, skillNames(got))
}

func TestExtractSingleEditTypo(t *testing.T) {
	e := NewEngine(nil, nil)
	got := e.Extract(context.Background(), []Source{{
		Text: "Pythn, Docker",
		Tier: TierSection,
	}})
	names := skillNames(got)
	assert.Contains(t, names, "Python")
	assert.Contains(t, names, "Docker")
}

func TestExtractTierScoring(t *testing.T) {
	e := NewEngine(nil, nil)

	section := e.Extract(context.Background(), []Source{{Text: "Python", Tier: TierSection}})
	document := e.Extract(context.Background(), []Source{{Text: "Python", Tier: TierDocument}})
	require.Len(t, section, 1)
	require.Len(t, document, 1)
	assert.Greater(t, section[0].Score, document[0].Score)
}

func TestExtractFreeTextNGrams(t *testing.T) {
	e := NewEngine(nil, nil)
	got := e.Extract(context.Background(), []Source{{
		Text: "Built services in Go backed by PostgreSQL and deployed on Kubernetes.",
		Tier: TierExperience,
	}})
	names := skillNames(got)
	assert.Contains(t, names, "Go")
	assert.Contains(t, names, "PostgreSQL")
	assert.Contains(t, names, "Kubernetes")
}

func TestExtractDeterministic(t *testing.T) {
	e := NewEngine(nil, nil)
	src := []Source{{Text: "Python, Java, JavaScript, SQL, AWS, Terraform", Tier: TierSection}}
	first := e.Extract(context.Background(), src)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, e.Extract(context.Background(), src))
	}
}

func TestExtractEmptyInput(t *testing.T) {
	e := NewEngine(nil, nil)
	assert.Empty(t, e.Extract(context.Background(), nil))
	assert.Empty(t, e.Extract(context.Background(), []Source{{Text: "", Tier: TierSection}}))
}

func skillNames(list []Skill) []string {
	names := make([]string, 0, len(list))
	for _, s := range list {
		names = append(names, s.Name)
	}
	return names
}
