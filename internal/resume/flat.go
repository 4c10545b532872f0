package resume

import (
	"time"

	"github.com/talentsift/resume-parser/constants"
	"github.com/talentsift/resume-parser/internal/education"
	"github.com/talentsift/resume-parser/internal/experience"
	"github.com/talentsift/resume-parser/internal/skills"
)

// Flat renders the legacy loosely-typed field map. Several fields are
// published under more than one key because older callers read them
// under different names.
func (r *ParsedResume) Flat() map[string]any {
	expList := make([]map[string]any, 0, len(r.Experience))
	for _, e := range r.Experience {
		expList = append(expList, map[string]any{
			"company":          e.Company,
			"role":             e.Role,
			"designation":      e.Role,
			"location":         e.Location,
			"start_date":       e.StartDate,
			"end_date":         e.EndDate,
			"is_current":       e.IsCurrent,
			"months":           e.Months,
			"description":      e.Description,
			"responsibilities": e.Responsibilities,
			"technologies":     e.Technologies,
		})
	}
	eduList := make([]map[string]any, 0, len(r.Education))
	for _, e := range r.Education {
		eduList = append(eduList, map[string]any{
			"institution": e.Institution,
			"degree":      e.Degree,
			"field":       e.Field,
			"year":        e.Year,
			"gpa":         e.GPA,
		})
	}
	certList := make([]map[string]any, 0, len(r.Certifications))
	for _, c := range r.Certifications {
		certList = append(certList, map[string]any{
			"name":   c.Name,
			"issuer": c.Issuer,
			"year":   c.Year,
		})
	}
	projList := make([]map[string]any, 0, len(r.Projects))
	for _, p := range r.Projects {
		projList = append(projList, map[string]any{
			"name":         p.Name,
			"description":  p.Description,
			"technologies": p.Technologies,
		})
	}
	skillDetails := make([]map[string]any, 0, len(r.Skills))
	for _, s := range r.Skills {
		skillDetails = append(skillDetails, map[string]any{
			"name":     s.Name,
			"category": s.Category,
			"source":   s.Source,
			"score":    s.Score,
		})
	}

	return map[string]any{
		"name":                   r.Name,
		"full_name":              r.Name,
		"candidate_name":         r.Name,
		"email":                  r.Contact.Email,
		"phone":                  r.Contact.Phone,
		"mobile":                 r.Contact.Phone,
		"alternate_phone":        r.Contact.AlternatePhone,
		"location":               r.Contact.Location,
		"city":                   r.Contact.Location,
		"linkedin":               r.Contact.LinkedIn,
		"github":                 r.Contact.GitHub,
		"summary":                r.Summary,
		"skills":                 r.SkillNames(),
		"skill_details":          skillDetails,
		"experience":             expList,
		"education":              eduList,
		"certifications":         certList,
		"projects":               projList,
		"current_role":           r.CurrentRole,
		"designation":            r.CurrentRole,
		"current_company":        r.CurrentCompany,
		"total_experience_years": r.TotalExperienceYears,
		"match_score":            r.MatchScore,
		"industry":               string(r.Industry),
		"status":                 string(r.Status),
		"confidence":             r.Confidence,
		"extraction_method":      r.Metadata.ExtractionMethod,
		"format":                 r.Metadata.Format,
		"request_id":             r.Metadata.RequestID,
		"warnings":               r.Metadata.Warnings,
		"parsed_at":              r.Metadata.ParsedAt.Format(time.RFC3339),
		"raw_text":               r.RawText,
	}
}

// FromFlat rebuilds a strict record from the legacy map. Malformed
// nested sub-entries are skipped rather than failing the conversion.
func FromFlat(m map[string]any) *ParsedResume {
	r := &ParsedResume{
		Name: asString(m["name"]),
		Contact: Contact{
			Email:          asString(m["email"]),
			Phone:          asString(m["phone"]),
			AlternatePhone: asString(m["alternate_phone"]),
			Location:       asString(m["location"]),
			LinkedIn:       asString(m["linkedin"]),
			GitHub:         asString(m["github"]),
		},
		Summary:              asString(m["summary"]),
		CurrentRole:          asString(m["current_role"]),
		CurrentCompany:       asString(m["current_company"]),
		TotalExperienceYears: asFloat(m["total_experience_years"]),
		MatchScore:           asFloat(m["match_score"]),
		Industry:             constants.Industry(asString(m["industry"])),
		Status:               constants.ParseStatus(asString(m["status"])),
		Confidence:           asFloatMap(m["confidence"]),
		RawText:              asString(m["raw_text"]),
	}
	if r.Name == "" {
		r.Name = asString(m["full_name"])
	}
	if r.Contact.Phone == "" {
		r.Contact.Phone = asString(m["mobile"])
	}
	if r.Contact.Location == "" {
		r.Contact.Location = asString(m["city"])
	}
	if r.CurrentRole == "" {
		r.CurrentRole = asString(m["designation"])
	}
	r.Metadata = Metadata{
		RequestID:        asString(m["request_id"]),
		Format:           asString(m["format"]),
		ExtractionMethod: asString(m["extraction_method"]),
		Warnings:         asStringSlice(m["warnings"]),
	}
	if t, err := time.Parse(time.RFC3339, asString(m["parsed_at"])); err == nil {
		r.Metadata.ParsedAt = t
	}

	for _, sd := range asMapSlice(m["skill_details"]) {
		name := asString(sd["name"])
		if name == "" {
			continue
		}
		r.Skills = append(r.Skills, skills.Skill{
			Name:     name,
			Category: asString(sd["category"]),
			Source:   asString(sd["source"]),
			Score:    int(asFloat(sd["score"])),
		})
	}
	if len(r.Skills) == 0 {
		for _, name := range asStringSlice(m["skills"]) {
			r.Skills = append(r.Skills, skills.Skill{Name: name})
		}
	}
	for _, em := range asMapSlice(m["experience"]) {
		e := experience.Entry{
			Company:          asString(em["company"]),
			Role:             asString(em["role"]),
			Location:         asString(em["location"]),
			StartDate:        asString(em["start_date"]),
			EndDate:          asString(em["end_date"]),
			IsCurrent:        asBool(em["is_current"]),
			Months:           int(asFloat(em["months"])),
			Description:      asString(em["description"]),
			Responsibilities: asStringSlice(em["responsibilities"]),
			Technologies:     asStringSlice(em["technologies"]),
		}
		if e.Role == "" {
			e.Role = asString(em["designation"])
		}
		if e.Company == "" && e.Role == "" {
			continue
		}
		r.Experience = append(r.Experience, e)
	}
	for _, em := range asMapSlice(m["education"]) {
		e := education.Entry{
			Institution: asString(em["institution"]),
			Degree:      asString(em["degree"]),
			Field:       asString(em["field"]),
			Year:        asString(em["year"]),
			GPA:         asString(em["gpa"]),
		}
		if e.Institution == "" && e.Degree == "" {
			continue
		}
		r.Education = append(r.Education, e)
	}
	for _, cm := range asMapSlice(m["certifications"]) {
		c := education.Certification{
			Name:   asString(cm["name"]),
			Issuer: asString(cm["issuer"]),
			Year:   asString(cm["year"]),
		}
		if c.Name == "" {
			continue
		}
		r.Certifications = append(r.Certifications, c)
	}
	for _, pm := range asMapSlice(m["projects"]) {
		p := education.Project{
			Name:         asString(pm["name"]),
			Description:  asString(pm["description"]),
			Technologies: asStringSlice(pm["technologies"]),
		}
		if p.Name == "" {
			continue
		}
		r.Projects = append(r.Projects, p)
	}
	return r
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}

func asStringSlice(v any) []string {
	switch s := v.(type) {
	case []string:
		return s
	case []any:
		var out []string
		for _, item := range s {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}

func asMapSlice(v any) []map[string]any {
	switch s := v.(type) {
	case []map[string]any:
		return s
	case []any:
		var out []map[string]any
		for _, item := range s {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	}
	return nil
}

func asFloatMap(v any) map[string]float64 {
	switch m := v.(type) {
	case map[string]float64:
		return m
	case map[string]any:
		out := make(map[string]float64, len(m))
		for k, val := range m {
			out[k] = asFloat(val)
		}
		return out
	}
	return nil
}
