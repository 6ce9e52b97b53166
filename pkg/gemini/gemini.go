// Package gemini wraps the generative-text provider used for admin copy
// suggestions. Calls are pass-through: no retry, no caching, no persistence.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/MarloFC/ArchProj/pkg/config"
)

// ErrNotConfigured is returned when no API key is set. This failure is
// isolated to the copy-suggestion operation and must not affect anything else.
var ErrNotConfigured = errors.New("GEMINI_API_KEY is not configured")

// ErrUnknownContentType is returned for content types without a prompt template.
var ErrUnknownContentType = errors.New("unknown content type")

// Client calls the Gemini API with field-specific prompt templates.
type Client struct {
	apiKey string
	model  string
}

// New creates a Client from configuration.
func New(cfg *config.GeminiConfig) *Client {
	return &Client{apiKey: cfg.APIKey, model: cfg.Model}
}

// Configured reports whether an API key is available.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// systemPrompt returns the instruction template for a content type.
func systemPrompt(contentType string) (string, error) {
	switch contentType {
	case "title":
		return "Generate a compelling, professional title for an architectural firm's website. Keep it concise (2-4 words), impactful, and related to architecture, design, or construction. Focus on excellence, innovation, or craftsmanship.", nil
	case "subtitle":
		return "Generate a professional subtitle for an architectural firm's hero section. Keep it under 10 words, inspiring, and clearly communicate the value proposition. Focus on transformation, spaces, innovation, or design.", nil
	case "description":
		return "Generate a compelling description for an architectural firm's hero section. Keep it 1-2 sentences, professional tone, and highlight the firm's expertise in creating innovative, functional, and sustainable architectural solutions.", nil
	case "project":
		return "Generate a brief, professional description for an architectural project. Keep it 1-2 sentences, highlighting key features, design elements, or unique aspects. Use architectural terminology appropriately.", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownContentType, contentType)
	}
}

// Generate produces suggested copy for the given content type and instruction.
func (c *Client) Generate(ctx context.Context, contentType, prompt string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	system, err := systemPrompt(contentType)
	if err != nil {
		return "", err
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	full := fmt.Sprintf("%s\n\nUser request: %s\n\nGenerate only the content, no additional formatting or explanation.", system, prompt)

	model := client.GenerativeModel(c.model)
	resp, err := model.GenerateContent(ctx, genai.Text(full))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractText(resp)
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("empty response from provider")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", errors.New("empty response from provider")
	}
	return out, nil
}
