package advisor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/careersphere/career-advisor/internal/llm"
	"github.com/careersphere/career-advisor/internal/schemas"
	"github.com/careersphere/career-advisor/internal/types"
)

// Generator produces a raw recommendation set for a profile. A nil
// Generator on the Advisor selects the fallback path unconditionally.
type Generator interface {
	Generate(ctx context.Context, profile *types.CandidateProfile, level types.UserLevel) (*types.RecommendationSet, error)
}

// LLMGenerator generates recommendations with an LLM client and validates
// the response against the recommendation schema before decoding.
type LLMGenerator struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewLLMGenerator creates a generator on the standard model tier.
func NewLLMGenerator(client llm.Client) *LLMGenerator {
	return &LLMGenerator{client: client, tier: llm.TierStandard}
}

// Generate builds the prompt, calls the model, and decodes the validated
// JSON payload.
func (g *LLMGenerator) Generate(ctx context.Context, profile *types.CandidateProfile, level types.UserLevel) (*types.RecommendationSet, error) {
	prompt, err := buildPrompt(profile, level)
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt: %w", err)
	}

	raw, err := g.client.GenerateJSON(ctx, prompt, g.tier)
	if err != nil {
		return nil, fmt.Errorf("recommendation generation failed: %w", err)
	}
	raw = llm.CleanJSONBlock(raw)

	if err := schemas.ValidateJSONString(recommendationSchema, raw); err != nil {
		return nil, fmt.Errorf("generated recommendations failed validation: %w", err)
	}

	var set types.RecommendationSet
	if err := json.Unmarshal([]byte(raw), &set); err != nil {
		return nil, fmt.Errorf("failed to decode recommendations: %w", err)
	}
	return &set, nil
}
