package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/careersphere/career-advisor/internal/types"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name       string
		skills     []types.SkillEntry
		experience []types.ExperienceEntry
		want       types.UserLevel
	}{
		{
			name: "empty profile is beginner",
			want: types.LevelBeginner,
		},
		{
			name:       "five years is advanced",
			experience: []types.ExperienceEntry{{Role: "Engineer", DurationYears: 5}},
			want:       types.LevelAdvanced,
		},
		{
			name:   "senior cue is advanced regardless of years",
			skills: []types.SkillEntry{{Name: "Senior Java Development"}},
			want:   types.LevelAdvanced,
		},
		{
			name:       "summed durations cross the advanced bar",
			experience: []types.ExperienceEntry{{Role: "A", DurationYears: 3}, {Role: "B", DurationYears: 2.5}},
			want:       types.LevelAdvanced,
		},
		{
			name:       "two years is intermediate",
			experience: []types.ExperienceEntry{{Role: "Engineer", DurationYears: 2}},
			want:       types.LevelIntermediate,
		},
		{
			name:       "beginner cue blocks intermediate",
			skills:     []types.SkillEntry{{Name: "Junior Python"}},
			experience: []types.ExperienceEntry{{Role: "Engineer", DurationYears: 3}},
			want:       types.LevelBeginner,
		},
		{
			name:       "under two years is beginner",
			experience: []types.ExperienceEntry{{Role: "Engineer", DurationYears: 1.5}},
			want:       types.LevelBeginner,
		},
		{
			name:       "negative durations do not count",
			experience: []types.ExperienceEntry{{Role: "Engineer", DurationYears: -3}, {Role: "B", DurationYears: 1}},
			want:       types.LevelBeginner,
		},
		{
			name:   "advanced cue wins over beginner cue",
			skills: []types.SkillEntry{{Name: "junior stuff"}, {Name: "expert systems"}},
			want:   types.LevelAdvanced,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Level(tt.skills, tt.experience))
		})
	}
}
