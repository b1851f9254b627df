package scoring

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/careersphere/career-advisor/internal/types"
)

// SentimentAnalyzer is an optional capability that scores a bounded text
// span, returning a label and a confidence in [0,1]. Implementations are
// constructed once at startup and must be safe for concurrent use.
type SentimentAnalyzer interface {
	AnalyzeSentiment(ctx context.Context, text string) (label string, score float64, err error)
}

// sentimentSpanRunes bounds the text handed to the sentiment capability.
const sentimentSpanRunes = 512

// neutralSentiment is the default when no sentiment capability is
// available or the capability fails.
const neutralSentiment = 0.5

// AnalyzeTextQuality computes readability metrics over the resume text.
// Readability is 100 minus ten times the average word length, clamped to
// [0,100]. Sentiment comes from the optional capability over the first
// 512 runes and defaults to neutral when the capability is absent or
// errors. Empty text yields a zero result with neutral sentiment.
func AnalyzeTextQuality(ctx context.Context, text string, sentiment SentimentAnalyzer, logger *zap.Logger) types.TextQuality {
	if logger == nil {
		logger = zap.NewNop()
	}

	quality := types.TextQuality{SentimentScore: neutralSentiment}

	words := strings.Fields(text)
	if len(words) == 0 {
		return quality
	}

	totalLen := 0
	for _, w := range words {
		totalLen += len([]rune(w))
	}
	avgWordLength := float64(totalLen) / float64(len(words))

	quality.SentenceCount = countSentences(text)
	quality.WordCount = len(words)
	quality.AvgWordLength = round2(avgWordLength)
	quality.ReadabilityScore = round2(clamp(100-avgWordLength*10, 0, 100))

	if sentiment != nil {
		span := truncateRunes(text, sentimentSpanRunes)
		label, score, err := sentiment.AnalyzeSentiment(ctx, span)
		if err != nil {
			logger.Warn("sentiment capability failed, using neutral score", zap.Error(err))
		} else {
			quality.SentimentScore = round2(clamp(score, 0, 1))
			logger.Debug("sentiment analyzed", zap.String("label", label), zap.Float64("score", score))
		}
	}

	return quality
}

func countSentences(text string) int {
	count := 0
	for _, part := range strings.Split(text, ".") {
		if strings.TrimSpace(part) != "" {
			count++
		}
	}
	return count
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
