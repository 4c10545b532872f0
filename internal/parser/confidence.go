package parser

import (
	"github.com/talentsift/resume-parser/constants"
	"github.com/talentsift/resume-parser/internal/resume"
)

// Per-field presence confidences. Fixed heuristics of how reliable each
// extractor is when it produces a value at all; an empty field is always 0.
const (
	confEmail      = 0.95
	confPhone      = 0.90
	confLocation   = 0.70
	confLinks      = 0.85
	confSummary    = 0.60
	confNameFloor  = 0.30
	confExperience = 0.45
	confEducation  = 0.60
	confCerts      = 0.70
	confProjects   = 0.60
)

// scoreConfidence fills the per-field confidence map. Every populated
// field gets a strictly positive score; every empty field gets zero.
func scoreConfidence(r *resume.ParsedResume) {
	c := r.Confidence

	if r.Name == "" {
		c["name"] = 0
	} else if c["name"] < confNameFloor {
		c["name"] = confNameFloor
	}

	c["email"] = presence(r.Contact.Email != "", confEmail)
	c["phone"] = presence(r.Contact.Phone != "", confPhone)
	c["location"] = presence(r.Contact.Location != "", confLocation)
	c["links"] = presence(r.Contact.LinkedIn != "" || r.Contact.GitHub != "", confLinks)
	c["summary"] = presence(r.Summary != "", confSummary)

	c["skills"] = countScaled(len(r.Skills), 0.50, 0.05)
	c["experience"] = countScaled(len(r.Experience), confExperience, 0.15)
	c["education"] = countScaled(len(r.Education), confEducation, 0.10)
	c["certifications"] = presence(len(r.Certifications) > 0, confCerts)
	c["projects"] = presence(len(r.Projects) > 0, confProjects)
}

func presence(populated bool, score float64) float64 {
	if !populated {
		return 0
	}
	return score
}

// countScaled grows with the number of extracted items, capped at 1.
func countScaled(n int, base, perItem float64) float64 {
	if n == 0 {
		return 0
	}
	score := base + float64(n)*perItem
	if score > 1 {
		return 1
	}
	return score
}

// Aggregate weights over the fields that decide overall parse quality.
var aggregateWeights = []struct {
	field  string
	weight float64
}{
	{"name", 0.25},
	{"email", 0.20},
	{"phone", 0.10},
	{"skills", 0.20},
	{"experience", 0.15},
	{"education", 0.10},
}

func aggregateConfidence(r *resume.ParsedResume) float64 {
	var sum, total float64
	for _, w := range aggregateWeights {
		sum += r.Confidence[w.field] * w.weight
		total += w.weight
	}
	if total == 0 {
		return 0
	}
	agg := sum / total
	r.Confidence["overall"] = agg
	return agg
}

func statusFor(aggregate float64) constants.ParseStatus {
	switch {
	case aggregate >= constants.SuccessThreshold:
		return constants.StatusSuccess
	case aggregate >= constants.PartialThreshold:
		return constants.StatusPartial
	default:
		return constants.StatusFailed
	}
}
