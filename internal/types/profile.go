// Package types provides type definitions for structured data used throughout the career-advisor system.
package types

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SkillEntry is a single skill on a candidate profile. Level is free text
// supplied by the client ("Beginner", "Advanced", ...) and is optional.
type SkillEntry struct {
	Name  string `json:"name" validate:"required,min=1"`
	Level string `json:"level,omitempty"`
}

// EducationEntry is a single education record on a candidate profile.
type EducationEntry struct {
	Degree      string `json:"degree" validate:"required,min=1"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution,omitempty"`
}

// ExperienceEntry is a single work-history record on a candidate profile.
type ExperienceEntry struct {
	Role          string `json:"role"`
	DurationYears Years  `json:"duration_years"`
}

// Years is a duration in years that tolerates sloppy client payloads.
// Numbers, numeric strings, and strings with trailing text ("3 years")
// all decode; anything unparseable decodes to 0 rather than failing the
// whole request.
type Years float64

// UnmarshalJSON implements lenient decoding for Years.
func (y *Years) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*y = 0
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*y = Years(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*y = 0
		return nil
	}

	// Take the leading numeric token of strings like "3 years" or "2.5yr".
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (s[end] == '.' || s[end] == '-' || (s[end] >= '0' && s[end] <= '9')) {
		end++
	}
	if parsed, err := strconv.ParseFloat(s[:end], 64); err == nil && parsed > 0 {
		*y = Years(parsed)
	} else {
		*y = 0
	}
	return nil
}

// CandidateProfile is the immutable input to a single analysis request.
type CandidateProfile struct {
	JobType    string            `json:"job_type" validate:"required,min=1"`
	Skills     []SkillEntry      `json:"skills,omitempty" validate:"dive"`
	Education  []EducationEntry  `json:"education,omitempty" validate:"dive"`
	Experience []ExperienceEntry `json:"experience,omitempty"`
	Location   string            `json:"location,omitempty"`
	ResumeText string            `json:"resume_text,omitempty"`
}

// Validate validates the CandidateProfile using the validator.
func (p *CandidateProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// SkillNames returns the candidate's skill names in input order.
func (p *CandidateProfile) SkillNames() []string {
	names := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		if s.Name != "" {
			names = append(names, s.Name)
		}
	}
	return names
}

// TotalExperienceYears sums the durations of all experience entries.
func (p *CandidateProfile) TotalExperienceYears() float64 {
	total := 0.0
	for _, exp := range p.Experience {
		if exp.DurationYears > 0 {
			total += float64(exp.DurationYears)
		}
	}
	return total
}
