// Package advisor orchestrates a full candidate analysis: level
// classification, concurrent sub-scoring, recommendation generation with a
// static fallback, normalization, and final aggregation.
package advisor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/careersphere/career-advisor/internal/classify"
	"github.com/careersphere/career-advisor/internal/matching"
	"github.com/careersphere/career-advisor/internal/recommend"
	"github.com/careersphere/career-advisor/internal/scoring"
	"github.com/careersphere/career-advisor/internal/types"
)

// defaultGenerateTimeout bounds one recommendation generation call.
const defaultGenerateTimeout = 30 * time.Second

// Advisor runs the analysis pipeline. All collaborators are fixed at
// construction; Produce is safe for concurrent use.
type Advisor struct {
	generator  Generator
	matcher    *matching.Matcher
	sentiment  scoring.SentimentAnalyzer
	normalizer *recommend.Normalizer
	logger     *zap.Logger
	timeout    time.Duration
}

// Options configures an Advisor. Generator and Sentiment are optional
// capabilities; when absent the advisor still produces a full response via
// the fallback path and neutral sentiment.
type Options struct {
	Generator Generator
	Matcher   *matching.Matcher
	Sentiment scoring.SentimentAnalyzer
	Logger    *zap.Logger
	Timeout   time.Duration
}

// New creates an Advisor.
func New(opts Options) *Advisor {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	matcher := opts.Matcher
	if matcher == nil {
		matcher = matching.New(nil, logger)
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultGenerateTimeout
	}
	return &Advisor{
		generator:  opts.Generator,
		matcher:    matcher,
		sentiment:  opts.Sentiment,
		normalizer: recommend.NewNormalizer(logger),
		logger:     logger,
		timeout:    timeout,
	}
}

// Produce analyzes one candidate profile. It returns an error only for
// invalid input; every internal failure degrades to the fallback path or a
// neutral default so a valid profile always yields a complete response.
func (a *Advisor) Produce(ctx context.Context, profile *types.CandidateProfile) (*types.AnalysisResponse, error) {
	if profile == nil || strings.TrimSpace(profile.JobType) == "" {
		return nil, fmt.Errorf("candidate profile requires a job type")
	}

	level := classify.Level(profile.Skills, profile.Experience)

	var (
		textQuality types.TextQuality
		skillsMatch types.SkillMatchResult
	)

	// Text quality and skill matching may each call out to a model, so
	// they run concurrently. Both are total and cannot fail the group.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		textQuality = scoring.AnalyzeTextQuality(gctx, profile.ResumeText, a.sentiment, a.logger)
		return nil
	})
	g.Go(func() error {
		skillsMatch = a.matcher.Match(gctx, profile.SkillNames(), requiredSkillsFor(profile.JobType))
		return nil
	})
	_ = g.Wait()

	educationScore := scoring.EducationScore(profile.Education)
	experienceScore := scoring.ExperienceScore(profile.Experience)

	raw, usedFallback := a.generate(ctx, profile, level)
	recommendations := a.normalizer.Normalize(raw)

	overall := scoring.Aggregate(textQuality.ReadabilityScore, skillsMatch.MatchPercentage, educationScore, experienceScore)

	a.logger.Info("analysis complete",
		zap.String("job_type", profile.JobType),
		zap.String("user_level", level.String()),
		zap.Float64("overall_score", overall),
		zap.Bool("fallback", usedFallback))

	return &types.AnalysisResponse{
		OverallScore:    overall,
		UserLevel:       level,
		TextQuality:     textQuality,
		SkillsAnalysis:  skillsMatch,
		EducationScore:  educationScore,
		ExperienceScore: experienceScore,
		Recommendations: recommendations,
		Fallback:        usedFallback,
	}, nil
}

// generate runs the generator under a timeout and falls back to the static
// market table when no generator is configured or generation fails.
func (a *Advisor) generate(ctx context.Context, profile *types.CandidateProfile, level types.UserLevel) (types.RecommendationSet, bool) {
	if a.generator == nil {
		return fallbackRecommendations(ctx, profile, a.matcher), true
	}

	genCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	set, err := a.generator.Generate(genCtx, profile, level)
	if err != nil || set == nil {
		a.logger.Warn("recommendation generation failed, using fallback",
			zap.String("job_type", profile.JobType),
			zap.Error(err))
		return fallbackRecommendations(ctx, profile, a.matcher), true
	}
	return *set, false
}

// requiredSkillsFor returns the requirement set the candidate's skills are
// scored against, from the static market table.
func requiredSkillsFor(jobType string) []string {
	entry, ok := jobMarketTable[strings.ToLower(strings.TrimSpace(jobType))]
	if !ok {
		entry = genericMarketEntry
	}
	return entry.RequiredSkills
}
