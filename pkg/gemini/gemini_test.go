package gemini

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarloFC/ArchProj/pkg/config"
)

func TestGenerateWithoutAPIKey(t *testing.T) {
	c := New(&config.GeminiConfig{Model: "gemini-1.5-flash"})
	assert.False(t, c.Configured())

	_, err := c.Generate(context.Background(), "title", "a headline")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestGenerateRejectsUnknownContentType(t *testing.T) {
	c := New(&config.GeminiConfig{APIKey: "test-key", Model: "gemini-1.5-flash"})

	_, err := c.Generate(context.Background(), "haiku", "a headline")
	assert.ErrorIs(t, err, ErrUnknownContentType)
}

func TestSystemPromptCoversAllContentTypes(t *testing.T) {
	for _, ct := range []string{"title", "subtitle", "description", "project"} {
		prompt, err := systemPrompt(ct)
		require.NoError(t, err, ct)
		require.NotEmpty(t, prompt, ct)
	}
}

func TestExtractText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []genai.Part{genai.Text("Modern "), genai.Text("Living")},
			},
		}},
	}

	out, err := extractText(resp)
	require.NoError(t, err)
	assert.Equal(t, "Modern Living", out)
}

func TestExtractTextEmptyResponse(t *testing.T) {
	_, err := extractText(&genai.GenerateContentResponse{})
	assert.Error(t, err)

	_, err = extractText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{}}},
	})
	assert.Error(t, err)
}
