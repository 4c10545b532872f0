package constants

import "strings"

// Industry is a coarse classification inferred from a candidate's skills.
type Industry string

const (
	SoftwareEngineering Industry = "SoftwareEngineering"
	DataAndAnalytics    Industry = "DataAndAnalytics"
	EnterpriseSystems   Industry = "EnterpriseSystems"
	Infrastructure      Industry = "Infrastructure"
	Design              Industry = "Design"
	FinanceAndHR        Industry = "FinanceAndHR"
	SalesAndMarketing   Industry = "SalesAndMarketing"
	Engineering         Industry = "Engineering"
	General             Industry = "General"
)

// CanonicalizeIndustry maps a skill-category label to an industry.
// Returns (General, false) when the label is unknown.
func CanonicalizeIndustry(input string) (Industry, bool) {
	if input == "" {
		return General, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	synonyms := map[string]Industry{
		"programming":     SoftwareEngineering,
		"languages":       SoftwareEngineering,
		"frameworks":      SoftwareEngineering,
		"web":             SoftwareEngineering,
		"software":        SoftwareEngineering,
		"data":            DataAndAnalytics,
		"analytics":       DataAndAnalytics,
		"databases":       DataAndAnalytics,
		"machine_learning": DataAndAnalytics,
		"erp":             EnterpriseSystems,
		"sap":             EnterpriseSystems,
		"enterprise":      EnterpriseSystems,
		"cloud":           Infrastructure,
		"devops":          Infrastructure,
		"networking":      Infrastructure,
		"security":        Infrastructure,
		"design":          Design,
		"ux":              Design,
		"hr":              FinanceAndHR,
		"finance":         FinanceAndHR,
		"payroll":         FinanceAndHR,
		"sales":           SalesAndMarketing,
		"marketing":       SalesAndMarketing,
		"electrical":      Engineering,
		"mechanical":      Engineering,
		"civil":           Engineering,
		"bms":             Engineering,
	}

	if ind, ok := synonyms[normalized]; ok {
		return ind, true
	}
	return General, false
}
