// Package scoring computes the weighted sub-scores and the overall score
// for a candidate analysis.
package scoring

import "math"

// Canonical component weights. Earlier revisions of the scoring pipeline
// shipped with several conflicting weight sets; this one is the reference
// contract and the only one implemented.
const (
	weightTextQuality = 0.20
	weightSkillsMatch = 0.30
	weightEducation   = 0.25
	weightExperience  = 0.25
)

// Aggregate combines the sub-scores into one overall score in [0,100],
// rounded to two decimal places. It never propagates an internal failure;
// any panic yields 0.
func Aggregate(textQuality, skillsMatch, education, experience float64) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			score = 0
		}
	}()

	raw := textQuality*weightTextQuality +
		skillsMatch*weightSkillsMatch +
		education*weightEducation +
		experience*weightExperience

	return round2(clamp(raw, 0, 100))
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
