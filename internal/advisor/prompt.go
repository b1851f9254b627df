package advisor

import (
	"fmt"
	"strings"

	"github.com/careersphere/career-advisor/internal/prompts"
	"github.com/careersphere/career-advisor/internal/types"
)

// buildPrompt renders the recommendation prompt for a profile and its
// classified level.
func buildPrompt(profile *types.CandidateProfile, level types.UserLevel) (string, error) {
	template, err := prompts.Get("recommendations.json", "career-recommendations")
	if err != nil {
		return "", err
	}

	return prompts.Format(template, map[string]string{
		"JobType":    profile.JobType,
		"UserLevel":  level.String(),
		"Skills":     formatSkills(profile.Skills),
		"Education":  formatEducation(profile.Education),
		"Experience": formatExperience(profile.Experience),
		"Location":   orNone(profile.Location),
	}), nil
}

func formatSkills(skills []types.SkillEntry) string {
	if len(skills) == 0 {
		return "none listed"
	}
	parts := make([]string, 0, len(skills))
	for _, s := range skills {
		if s.Level != "" {
			parts = append(parts, fmt.Sprintf("%s (%s)", s.Name, s.Level))
		} else {
			parts = append(parts, s.Name)
		}
	}
	return strings.Join(parts, ", ")
}

func formatEducation(education []types.EducationEntry) string {
	if len(education) == 0 {
		return "none listed"
	}
	parts := make([]string, 0, len(education))
	for _, e := range education {
		entry := e.Degree
		if e.Field != "" {
			entry += " in " + e.Field
		}
		if e.Institution != "" {
			entry += ", " + e.Institution
		}
		parts = append(parts, entry)
	}
	return strings.Join(parts, "; ")
}

func formatExperience(experience []types.ExperienceEntry) string {
	if len(experience) == 0 {
		return "none listed"
	}
	parts := make([]string, 0, len(experience))
	for _, e := range experience {
		parts = append(parts, fmt.Sprintf("%s (%.1f years)", e.Role, float64(e.DurationYears)))
	}
	return strings.Join(parts, "; ")
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "not specified"
	}
	return s
}
