package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYears_UnmarshalNumber(t *testing.T) {
	var entry ExperienceEntry
	err := json.Unmarshal([]byte(`{"role": "Engineer", "duration_years": 3.5}`), &entry)
	require.NoError(t, err)
	assert.Equal(t, Years(3.5), entry.DurationYears)
}

func TestYears_UnmarshalNumericString(t *testing.T) {
	var entry ExperienceEntry
	err := json.Unmarshal([]byte(`{"role": "Engineer", "duration_years": "4"}`), &entry)
	require.NoError(t, err)
	assert.Equal(t, Years(4), entry.DurationYears)
}

func TestYears_UnmarshalStringWithSuffix(t *testing.T) {
	var entry ExperienceEntry
	err := json.Unmarshal([]byte(`{"role": "Engineer", "duration_years": "3 years"}`), &entry)
	require.NoError(t, err)
	assert.Equal(t, Years(3), entry.DurationYears)
}

func TestYears_UnmarshalGarbage(t *testing.T) {
	cases := []string{`"a while"`, `"n/a"`, `""`, `null`, `{"nested": true}`}
	for _, raw := range cases {
		var y Years
		err := y.UnmarshalJSON([]byte(raw))
		require.NoError(t, err, "input %s", raw)
		assert.Equal(t, Years(0), y, "input %s", raw)
	}
}

func TestCandidateProfile_ValidateRequiresJobType(t *testing.T) {
	profile := CandidateProfile{}
	assert.Error(t, profile.Validate())

	profile.JobType = "web_development"
	assert.NoError(t, profile.Validate())
}

func TestCandidateProfile_SkillNames(t *testing.T) {
	profile := CandidateProfile{
		Skills: []SkillEntry{
			{Name: "Python", Level: "Advanced"},
			{Name: ""},
			{Name: "SQL"},
		},
	}
	assert.Equal(t, []string{"Python", "SQL"}, profile.SkillNames())
}

func TestCandidateProfile_TotalExperienceYears(t *testing.T) {
	profile := CandidateProfile{
		Experience: []ExperienceEntry{
			{Role: "Engineer", DurationYears: 2},
			{Role: "Senior Engineer", DurationYears: 3.5},
			{Role: "Intern", DurationYears: -1},
		},
	}
	assert.InDelta(t, 5.5, profile.TotalExperienceYears(), 0.001)
}
