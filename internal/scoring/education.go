package scoring

import (
	"strings"

	"github.com/careersphere/career-advisor/internal/types"
)

// degreeWeights maps degree name cues to scores, checked in order so that
// "master of science" does not fall through to a weaker cue.
var degreeWeights = []struct {
	cue    string
	weight float64
}{
	{"phd", 100},
	{"ph.d", 100},
	{"doctorate", 100},
	{"master", 90},
	{"m.s", 90},
	{"m.tech", 90},
	{"bachelor", 80},
	{"b.s", 80},
	{"b.tech", 80},
	{"associate", 70},
	{"certificate", 60},
	{"diploma", 60},
}

// unknownDegreeWeight applies to degrees matching no cue.
const unknownDegreeWeight = 50

// EducationScore returns the best degree weight across all education
// entries, or 0 when the candidate lists no education.
func EducationScore(education []types.EducationEntry) float64 {
	best := 0.0
	for _, edu := range education {
		if w := degreeWeight(edu.Degree); w > best {
			best = w
		}
	}
	return best
}

func degreeWeight(degree string) float64 {
	lower := strings.ToLower(degree)
	for _, dw := range degreeWeights {
		if strings.Contains(lower, dw.cue) {
			return dw.weight
		}
	}
	return unknownDegreeWeight
}
