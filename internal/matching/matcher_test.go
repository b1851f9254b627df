package matching

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch_EmptyRequired(t *testing.T) {
	m := New(nil, nil)
	result := m.Match(context.Background(), []string{"go", "sql"}, nil)

	assert.Equal(t, 0.0, result.MatchPercentage)
	assert.Empty(t, result.MatchedSkills)
	assert.Empty(t, result.MissingSkills)
}

func TestMatch_FullOverlap(t *testing.T) {
	m := New(nil, nil)
	result := m.Match(context.Background(), []string{"Go", "SQL", "Docker"}, []string{"go", "sql"})

	assert.Equal(t, 100.0, result.MatchPercentage)
	assert.Equal(t, []string{"go", "sql"}, result.MatchedSkills)
	assert.Empty(t, result.MissingSkills)
}

func TestMatch_PartialOverlap(t *testing.T) {
	m := New(nil, nil)
	result := m.Match(context.Background(), []string{"html", "css"}, []string{"html", "css", "javascript", "react"})

	assert.Equal(t, 50.0, result.MatchPercentage)
	assert.Equal(t, []string{"html", "css"}, result.MatchedSkills)
	assert.Equal(t, []string{"javascript", "react"}, result.MissingSkills)
}

func TestMatch_DeduplicatesInputs(t *testing.T) {
	m := New(nil, nil)
	result := m.Match(context.Background(), []string{"Go", "go", " GO "}, []string{"go", "Go", "rust"})

	assert.Equal(t, 50.0, result.MatchPercentage)
	assert.Equal(t, []string{"go"}, result.MatchedSkills)
	assert.Equal(t, []string{"rust"}, result.MissingSkills)
}

// stubEmbedder returns fixed vectors keyed by text.
type stubEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (s *stubEmbedder) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec, ok := s.vectors[text]
		if !ok {
			vec = []float32{0, 0, 1}
		}
		out[i] = vec
	}
	return out, nil
}

func TestMatch_EmbeddingBackend(t *testing.T) {
	// "golang" and "go" point the same way; "cooking" is orthogonal.
	embedder := &stubEmbedder{vectors: map[string][]float32{
		"golang":  {1, 0, 0},
		"go":      {0.9, 0.1, 0},
		"cooking": {0, 1, 0},
	}}
	m := New(embedder, nil)

	result := m.Match(context.Background(), []string{"golang"}, []string{"go", "cooking"})
	require.Len(t, result.MatchedSkills, 1)
	assert.Equal(t, []string{"go"}, result.MatchedSkills)
	assert.Equal(t, []string{"cooking"}, result.MissingSkills)
	assert.Equal(t, 50.0, result.MatchPercentage)
}

func TestMatch_EmbedderFailureFallsBackToOverlap(t *testing.T) {
	embedder := &stubEmbedder{err: errors.New("quota exceeded")}
	m := New(embedder, nil)

	result := m.Match(context.Background(), []string{"go"}, []string{"go", "rust"})
	assert.Equal(t, 50.0, result.MatchPercentage)
	assert.Equal(t, []string{"go"}, result.MatchedSkills)
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity([]float32{1, 0}, []float32{2, 0}), 0.001)
	assert.InDelta(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{0, 1}), 0.001)
	assert.Equal(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{1}))
	assert.Equal(t, 0.0, cosineSimilarity([]float32{0, 0}, []float32{1, 0}))
}
