// Package classify derives a candidate's seniority level from profile signals.
package classify

import (
	"strings"

	"github.com/careersphere/career-advisor/internal/types"
)

// Lexical markers scanned for in skill names (case-insensitive substrings).
var (
	advancedCues = []string{"senior", "expert", "advanced"}
	beginnerCues = []string{"junior", "beginner", "entry"}
)

// Years of total experience that promote a candidate past the lexical cues.
const (
	advancedYears     = 5.0
	intermediateYears = 2.0
)

// Level derives the seniority level from total experience duration and
// lexical cues in skill names. It is total: any input, including empty
// slices and unparseable durations, yields one of the defined levels.
func Level(skills []types.SkillEntry, experience []types.ExperienceEntry) types.UserLevel {
	totalYears := 0.0
	for _, exp := range experience {
		if exp.DurationYears > 0 {
			totalYears += float64(exp.DurationYears)
		}
	}

	hasAdvancedCue := hasCue(skills, advancedCues)
	hasBeginnerCue := hasCue(skills, beginnerCues)

	switch {
	case totalYears >= advancedYears || hasAdvancedCue:
		return types.LevelAdvanced
	case totalYears >= intermediateYears && !hasBeginnerCue:
		return types.LevelIntermediate
	default:
		return types.LevelBeginner
	}
}

func hasCue(skills []types.SkillEntry, cues []string) bool {
	for _, skill := range skills {
		name := strings.ToLower(skill.Name)
		for _, cue := range cues {
			if strings.Contains(name, cue) {
				return true
			}
		}
	}
	return false
}
