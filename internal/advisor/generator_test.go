package advisor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careersphere/career-advisor/internal/llm"
	"github.com/careersphere/career-advisor/internal/types"
)

type stubLLM struct {
	response string
	err      error
}

func (s *stubLLM) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return s.response, s.err
}

func (s *stubLLM) EmbedTexts(_ context.Context, _ []string) ([][]float32, error) {
	return nil, errors.New("not implemented")
}

func (s *stubLLM) GetModel(_ llm.ModelTier) string { return "stub" }
func (s *stubLLM) Close() error                    { return nil }

const validResponse = `{
	"job_recommendations": [
		{"job_title": "Frontend Engineer", "industry": "Technology", "level": "intermediate", "match_percentage": 78}
	],
	"course_recommendations": [
		{"title": "React Deep Dive", "provider": "Udemy", "match_score": 80}
	],
	"certification_recommendations": [
		{"title": "AWS Cloud Practitioner", "provider": "Amazon", "match_score": 65}
	],
	"market_analysis": {"current_demand": "high"}
}`

func TestLLMGenerator_Generate(t *testing.T) {
	gen := NewLLMGenerator(&stubLLM{response: validResponse})
	profile := &types.CandidateProfile{JobType: "web_development"}

	set, err := gen.Generate(context.Background(), profile, types.LevelIntermediate)
	require.NoError(t, err)

	require.Len(t, set.Jobs, 1)
	assert.Equal(t, "Frontend Engineer", set.Jobs[0].JobTitle)
	assert.Equal(t, 78.0, set.Jobs[0].MatchPercentage)
	assert.Equal(t, "high", set.Market.CurrentDemand)
}

func TestLLMGenerator_StripsCodeFence(t *testing.T) {
	gen := NewLLMGenerator(&stubLLM{response: "```json\n" + validResponse + "\n```"})
	profile := &types.CandidateProfile{JobType: "web_development"}

	set, err := gen.Generate(context.Background(), profile, types.LevelBeginner)
	require.NoError(t, err)
	assert.Len(t, set.Courses, 1)
}

func TestLLMGenerator_ClientError(t *testing.T) {
	gen := NewLLMGenerator(&stubLLM{err: errors.New("quota exceeded")})
	profile := &types.CandidateProfile{JobType: "web_development"}

	_, err := gen.Generate(context.Background(), profile, types.LevelBeginner)
	assert.Error(t, err)
}

func TestLLMGenerator_SchemaRejection(t *testing.T) {
	// match_percentage out of range and missing required lists
	bad := `{"job_recommendations": [{"job_title": "X", "match_percentage": 400}]}`
	gen := NewLLMGenerator(&stubLLM{response: bad})
	profile := &types.CandidateProfile{JobType: "web_development"}

	_, err := gen.Generate(context.Background(), profile, types.LevelBeginner)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestLLMGenerator_NonJSONResponse(t *testing.T) {
	gen := NewLLMGenerator(&stubLLM{response: "I cannot help with that."})
	profile := &types.CandidateProfile{JobType: "web_development"}

	_, err := gen.Generate(context.Background(), profile, types.LevelBeginner)
	assert.Error(t, err)
}
