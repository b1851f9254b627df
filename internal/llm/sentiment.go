package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Sentiment analyzes the tone of a short text span using the lite model
// tier. It satisfies the scoring package's SentimentAnalyzer interface.
type Sentiment struct {
	client Client
}

// NewSentiment wraps a client in a sentiment analyzer.
func NewSentiment(client Client) *Sentiment {
	return &Sentiment{client: client}
}

type sentimentResult struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// AnalyzeSentiment classifies the text as positive, neutral, or negative
// and returns a confidence score in [0,1].
func (s *Sentiment) AnalyzeSentiment(ctx context.Context, text string) (string, float64, error) {
	if strings.TrimSpace(text) == "" {
		return "neutral", 0.5, nil
	}

	prompt := fmt.Sprintf(`Classify the overall tone of the following resume excerpt.
Respond with JSON only, in this exact shape:
{"label": "positive|neutral|negative", "score": 0.0}
where score is your confidence between 0 and 1.

Excerpt:
%s`, text)

	raw, err := s.client.GenerateJSON(ctx, prompt, TierLite)
	if err != nil {
		return "", 0, fmt.Errorf("sentiment generation failed: %w", err)
	}

	var result sentimentResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return "", 0, fmt.Errorf("failed to parse sentiment response: %w", err)
	}
	if result.Score < 0 {
		result.Score = 0
	}
	if result.Score > 1 {
		result.Score = 1
	}
	return result.Label, result.Score, nil
}
