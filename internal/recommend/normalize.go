// Package recommend normalizes recommendation lists: deduplication by
// identity key, greedy match-percentage spacing, default-pool top-up, and
// diversity checks.
package recommend

import (
	"go.uber.org/zap"

	"github.com/careersphere/career-advisor/internal/types"
)

const (
	// minListSize is the minimum unique items per list before defaults
	// are appended.
	minListSize = 3

	// Spacing parameters: a new match percentage within minSpacing of any
	// accepted one is bumped by spacingStep, clamped to
	// [spacingFloor, spacingCeiling].
	minSpacing     = 5.0
	spacingStep    = 3.0
	spacingFloor   = 30.0
	spacingCeiling = 95.0

	// Diversity thresholds per list.
	minDistinctProviders = 2
	minDistinctLevels    = 2
	minDistinctIndustry  = 2

	// maxProviderUses is the most times one provider (or job company) may
	// appear across the three lists combined before a warning.
	maxProviderUses = 2
)

// Normalizer applies the dedup / spacing / diversity contract to a raw
// recommendation set. It holds no per-request state and is safe for
// concurrent use.
type Normalizer struct {
	logger   *zap.Logger
	defaults Pools
}

// Pools are the fallback items appended when a list is short. Jobs have no
// pool: the orchestrator's fallback path owns job construction.
type Pools struct {
	Courses        []types.CourseRecommendation
	Certifications []types.CertificationRecommendation
}

// NewNormalizer creates a Normalizer with the built-in default pools.
func NewNormalizer(logger *zap.Logger) *Normalizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Normalizer{logger: logger, defaults: defaultPools()}
}

// NewNormalizerWithPools creates a Normalizer with caller-supplied pools.
func NewNormalizerWithPools(logger *zap.Logger, pools Pools) *Normalizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Normalizer{logger: logger, defaults: pools}
}

// Normalize processes each list independently and then checks provider
// spread across the combined set. It is best-effort: a list that fails
// normalization outright is passed through unmodified, and malformed
// entries are skipped, never fatal.
func (n *Normalizer) Normalize(raw types.RecommendationSet) types.RecommendationSet {
	out := types.RecommendationSet{Market: raw.Market}

	allProviders := make(map[string]int)

	out.Jobs = n.normalizeJobs(raw.Jobs, allProviders)
	out.Courses = n.normalizeCourses(raw.Courses, allProviders)
	out.Certifications = n.normalizeCertifications(raw.Certifications, allProviders)

	for provider, count := range allProviders {
		if count > maxProviderUses {
			n.logger.Warn("provider overused across recommendation lists",
				zap.String("provider", provider),
				zap.Int("count", count))
		}
	}

	return out
}

// normalizeJobs dedups by identity key, spaces match percentages in
// insertion order, and checks industry and level diversity. Companies
// count toward the cross-list provider spread.
func (n *Normalizer) normalizeJobs(jobs []types.JobRecommendation, allProviders map[string]int) (out []types.JobRecommendation) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Error("job normalization failed, passing list through", zap.Any("panic", r))
			out = jobs
		}
	}()

	seen := make(map[string]bool)
	industries := make(map[string]bool)
	levels := make(map[string]bool)
	accepted := make([]float64, 0, len(jobs))
	out = make([]types.JobRecommendation, 0, len(jobs))

	for _, job := range jobs {
		if job.JobTitle == "" {
			n.logger.Warn("skipping job recommendation without title")
			continue
		}
		key := job.Key()
		if seen[key] {
			continue
		}
		seen[key] = true

		job.MatchPercentage = spaceOut(accepted, job.MatchPercentage)
		accepted = append(accepted, job.MatchPercentage)

		if job.Industry != "" {
			industries[fold(job.Industry)] = true
		}
		if job.Level != "" {
			levels[fold(job.Level)] = true
		}
		if job.Company != "" {
			allProviders[fold(job.Company)]++
		}
		out = append(out, job)
	}

	if len(out) < minListSize {
		n.logger.Warn("not enough unique job recommendations", zap.Int("count", len(out)))
	}
	if len(out) >= minListSize && len(industries) < minDistinctIndustry {
		n.logger.Warn("low industry diversity in job recommendations", zap.Int("industries", len(industries)))
	}
	if len(out) >= minListSize && len(levels) < minDistinctLevels {
		n.logger.Warn("low level diversity in job recommendations", zap.Int("levels", len(levels)))
	}

	return out
}

// normalizeCourses dedups, spaces scores, tops up from the default pool,
// and checks provider and level diversity.
func (n *Normalizer) normalizeCourses(courses []types.CourseRecommendation, allProviders map[string]int) (out []types.CourseRecommendation) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Error("course normalization failed, passing list through", zap.Any("panic", r))
			out = courses
		}
	}()

	seen := make(map[string]bool)
	providers := make(map[string]bool)
	levels := make(map[string]bool)
	accepted := make([]float64, 0, len(courses))
	out = make([]types.CourseRecommendation, 0, len(courses))

	for _, course := range courses {
		if course.Title == "" {
			n.logger.Warn("skipping course recommendation without title")
			continue
		}
		key := course.Key()
		if seen[key] {
			continue
		}
		seen[key] = true

		course.MatchScore = spaceOut(accepted, course.MatchScore)
		accepted = append(accepted, course.MatchScore)

		if course.Provider != "" {
			providers[fold(course.Provider)] = true
			allProviders[fold(course.Provider)]++
		}
		if course.Level != "" {
			levels[fold(course.Level)] = true
		}
		out = append(out, course)
	}

	// Top up from the default pool, in pool order, still dedup-checked
	// and spaced against the accepted scores.
	for _, course := range n.defaults.Courses {
		if len(out) >= minListSize {
			break
		}
		if seen[course.Key()] {
			continue
		}
		seen[course.Key()] = true
		course.MatchScore = spaceOut(accepted, course.MatchScore)
		accepted = append(accepted, course.MatchScore)
		if course.Provider != "" {
			providers[fold(course.Provider)] = true
			allProviders[fold(course.Provider)]++
		}
		if course.Level != "" {
			levels[fold(course.Level)] = true
		}
		out = append(out, course)
	}

	if len(out) < minListSize {
		n.logger.Warn("not enough unique course recommendations", zap.Int("count", len(out)))
	}
	if len(providers) < minDistinctProviders {
		n.logger.Warn("low provider diversity in course recommendations", zap.Int("providers", len(providers)))
	}
	if len(levels) < minDistinctLevels {
		n.logger.Warn("low level diversity in course recommendations", zap.Int("levels", len(levels)))
	}

	return out
}

// normalizeCertifications mirrors normalizeCourses for the certification list.
func (n *Normalizer) normalizeCertifications(certs []types.CertificationRecommendation, allProviders map[string]int) (out []types.CertificationRecommendation) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Error("certification normalization failed, passing list through", zap.Any("panic", r))
			out = certs
		}
	}()

	seen := make(map[string]bool)
	providers := make(map[string]bool)
	levels := make(map[string]bool)
	accepted := make([]float64, 0, len(certs))
	out = make([]types.CertificationRecommendation, 0, len(certs))

	for _, cert := range certs {
		if cert.Title == "" {
			n.logger.Warn("skipping certification recommendation without title")
			continue
		}
		key := cert.Key()
		if seen[key] {
			continue
		}
		seen[key] = true

		cert.MatchScore = spaceOut(accepted, cert.MatchScore)
		accepted = append(accepted, cert.MatchScore)

		if cert.Provider != "" {
			providers[fold(cert.Provider)] = true
			allProviders[fold(cert.Provider)]++
		}
		if cert.Level != "" {
			levels[fold(cert.Level)] = true
		}
		out = append(out, cert)
	}

	for _, cert := range n.defaults.Certifications {
		if len(out) >= minListSize {
			break
		}
		if seen[cert.Key()] {
			continue
		}
		seen[cert.Key()] = true
		cert.MatchScore = spaceOut(accepted, cert.MatchScore)
		accepted = append(accepted, cert.MatchScore)
		if cert.Provider != "" {
			providers[fold(cert.Provider)] = true
			allProviders[fold(cert.Provider)]++
		}
		if cert.Level != "" {
			levels[fold(cert.Level)] = true
		}
		out = append(out, cert)
	}

	if len(out) < minListSize {
		n.logger.Warn("not enough unique certification recommendations", zap.Int("count", len(out)))
	}
	if len(providers) < minDistinctProviders {
		n.logger.Warn("low provider diversity in certification recommendations", zap.Int("providers", len(providers)))
	}
	if len(levels) < minDistinctLevels {
		n.logger.Warn("low level diversity in certification recommendations", zap.Int("levels", len(levels)))
	}

	return out
}

// spaceOut bumps value by spacingStep until it sits at least minSpacing
// from every already-accepted value, clamping each step to
// [spacingFloor, spacingCeiling]. The adjustment is greedy and
// insertion-ordered on purpose: downstream consumers depend on this exact
// behavior, not on a globally optimal spread. The loop stops once the
// clamp prevents further movement.
func spaceOut(accepted []float64, value float64) float64 {
	for tooClose(accepted, value) {
		next := value + spacingStep
		if next > spacingCeiling {
			next = spacingCeiling
		}
		if next < spacingFloor {
			next = spacingFloor
		}
		if next == value {
			break
		}
		value = next
	}
	return value
}

func tooClose(accepted []float64, value float64) bool {
	for _, a := range accepted {
		diff := value - a
		if diff < 0 {
			diff = -diff
		}
		if diff < minSpacing {
			return true
		}
	}
	return false
}
