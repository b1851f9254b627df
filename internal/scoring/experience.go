package scoring

import (
	"strings"

	"github.com/careersphere/career-advisor/internal/types"
)

// roleWeights maps role title cues to scores, checked in order. "senior
// engineer" must score as senior before the generic cues get a look.
var roleWeights = []struct {
	cue    string
	weight float64
}{
	{"senior", 100},
	{"lead", 90},
	{"principal", 90},
	{"manager", 90},
	{"mid-level", 80},
	{"mid level", 80},
	{"junior", 70},
	{"entry", 60},
	{"intern", 60},
}

// unknownRoleWeight applies to roles matching no cue.
const unknownRoleWeight = 50

// durationCapYears bounds the duration credit per experience entry.
const durationCapYears = 5.0

// ExperienceScore scores the candidate's work history. Each entry earns
// weight(role) scaled by its duration up to the cap; the sum is averaged
// over entries and bounded at 100. No experience scores 0.
func ExperienceScore(experience []types.ExperienceEntry) float64 {
	if len(experience) == 0 {
		return 0
	}

	total := 0.0
	for _, exp := range experience {
		years := float64(exp.DurationYears)
		if years < 0 {
			years = 0
		}
		if years > durationCapYears {
			years = durationCapYears
		}
		total += roleWeight(exp.Role) * years / durationCapYears
	}

	return clamp(total/float64(len(experience)), 0, 100)
}

func roleWeight(role string) float64 {
	lower := strings.ToLower(role)
	for _, rw := range roleWeights {
		if strings.Contains(lower, rw.cue) {
			return rw.weight
		}
	}
	return unknownRoleWeight
}
