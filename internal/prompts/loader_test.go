package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("recommendations.json", "career-recommendations")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "career advisor")
	assert.Contains(t, prompt, "{{.JobType}}")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get("recommendations.json", "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("recommendations.json", "nonexistent-key")
	})
}

func TestFormat(t *testing.T) {
	out := Format("level: {{.Level}}, field: {{.Field}}", map[string]string{
		"Level": "advanced",
		"Field": "data_science",
	})
	assert.Equal(t, "level: advanced, field: data_science", out)
}
