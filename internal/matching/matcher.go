// Package matching compares candidate skill sets against requirement sets
// and computes match percentages.
package matching

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/careersphere/career-advisor/internal/types"
)

// similarityThreshold is the minimum cosine similarity for an
// embedding-based skill match.
const similarityThreshold = 0.5

// Embedder encodes a batch of strings into fixed-length vectors. It is an
// optional capability: a nil Embedder selects the set-overlap backend.
// Implementations are constructed once at startup and must be safe for
// concurrent use.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Matcher computes skill matches. The zero-dependency set-overlap backend
// is always available; the embedding backend is used when an Embedder is
// configured and degrades to set overlap on any embedder failure.
type Matcher struct {
	embedder Embedder
	logger   *zap.Logger
}

// New creates a Matcher. Both arguments may be nil.
func New(embedder Embedder, logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{embedder: embedder, logger: logger}
}

// Match compares candidate skills against required skills. Inputs are
// case-folded and deduplicated before comparison. An empty requirement set
// yields a zero result; this is an edge case, not an error.
func (m *Matcher) Match(ctx context.Context, candidateSkills, requiredSkills []string) types.SkillMatchResult {
	required := foldSet(requiredSkills)
	if len(required) == 0 {
		return types.SkillMatchResult{MatchedSkills: []string{}, MissingSkills: []string{}}
	}
	candidate := foldSet(candidateSkills)

	if m.embedder != nil && len(candidate) > 0 {
		result, err := m.matchByEmbedding(ctx, candidate, required)
		if err == nil {
			return result
		}
		m.logger.Warn("embedding backend unavailable, using set overlap",
			zap.Error(err),
			zap.Int("candidate_skills", len(candidate)),
			zap.Int("required_skills", len(required)))
	}

	return matchByOverlap(candidate, required)
}

// matchByOverlap implements the exact case-insensitive set-overlap backend.
func matchByOverlap(candidate, required []string) types.SkillMatchResult {
	have := make(map[string]bool, len(candidate))
	for _, skill := range candidate {
		have[skill] = true
	}

	matched := make([]string, 0, len(required))
	missing := make([]string, 0, len(required))
	for _, req := range required {
		if have[req] {
			matched = append(matched, req)
		} else {
			missing = append(missing, req)
		}
	}

	return types.SkillMatchResult{
		MatchPercentage: percentage(len(matched), len(required)),
		MatchedSkills:   matched,
		MissingSkills:   missing,
	}
}

// matchByEmbedding encodes both skill lists, builds a candidate x required
// similarity matrix, and counts a required skill as matched when its best
// similarity across all candidate skills exceeds the threshold.
func (m *Matcher) matchByEmbedding(ctx context.Context, candidate, required []string) (types.SkillMatchResult, error) {
	candidateVecs, err := m.embedder.EmbedTexts(ctx, candidate)
	if err != nil {
		return types.SkillMatchResult{}, err
	}
	requiredVecs, err := m.embedder.EmbedTexts(ctx, required)
	if err != nil {
		return types.SkillMatchResult{}, err
	}
	if len(candidateVecs) != len(candidate) || len(requiredVecs) != len(required) {
		return types.SkillMatchResult{}, errVectorCountMismatch
	}

	matched := make([]string, 0, len(required))
	missing := make([]string, 0, len(required))
	for i, req := range required {
		best := 0.0
		for j := range candidateVecs {
			if sim := cosineSimilarity(candidateVecs[j], requiredVecs[i]); sim > best {
				best = sim
			}
		}
		if best > similarityThreshold {
			matched = append(matched, req)
		} else {
			missing = append(missing, req)
		}
	}

	return types.SkillMatchResult{
		MatchPercentage: percentage(len(matched), len(required)),
		MatchedSkills:   matched,
		MissingSkills:   missing,
	}, nil
}

// percentage returns 100 * matched / required, rounded to two decimals.
func percentage(matched, required int) float64 {
	if required == 0 {
		return 0
	}
	return round2(100 * float64(matched) / float64(required))
}

// foldSet lowercases, trims, and deduplicates skill names, preserving
// first-occurrence order.
func foldSet(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]bool, len(skills))
	for _, skill := range skills {
		folded := strings.ToLower(strings.TrimSpace(skill))
		if folded == "" || seen[folded] {
			continue
		}
		seen[folded] = true
		out = append(out, folded)
	}
	return out
}
