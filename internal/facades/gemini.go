package facades

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sbilibin2017/studydesk/internal/logger"
	"google.golang.org/genai"
)

var (
	// ErrEmptyResponse is returned when the provider answers without text.
	ErrEmptyResponse = errors.New("empty response from provider")
	// ErrNotConfigured is returned by a facade built without a client.
	ErrNotConfigured = errors.New("provider not configured")
)

// ContentGenerator is the part of the genai client used by the facade.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiFacade sends prompts to a Gemini model.
type GeminiFacade struct {
	client  ContentGenerator
	model   string
	timeout time.Duration
}

// NewGeminiClient creates a genai client for the Gemini API.
func NewGeminiClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// NewGeminiFacade creates a facade bound to model. A non-positive timeout
// disables the deadline. With a nil client every call fails with ErrNotConfigured.
func NewGeminiFacade(client ContentGenerator, model string, timeout time.Duration) *GeminiFacade {
	return &GeminiFacade{client: client, model: model, timeout: timeout}
}

// Generate sends prompt as a single user turn and returns the response text.
func (f *GeminiFacade) Generate(ctx context.Context, prompt string) (string, error) {
	if f.client == nil {
		return "", ErrNotConfigured
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	resp, err := f.client.GenerateContent(ctx, f.model, genai.Text(prompt), nil)
	if err != nil {
		logger.Log.Errorw("failed to generate content via Gemini", "model", f.model, "error", err)
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		logger.Log.Errorw("empty Gemini response", "model", f.model)
		return "", ErrEmptyResponse
	}

	return text, nil
}
