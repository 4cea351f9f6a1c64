package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"

	"skillpath/career-advisor/internal/apperr"
)

// TextGenerator issues one completion request against a named model and
// returns the raw reply text. Implementations hold no per-request state, so
// a single instance is shared by every pipeline.
type TextGenerator interface {
	GenerateText(ctx context.Context, model, prompt string, temperature float32) (string, error)
}

type geminiService struct {
	client *genai.Client
}

func NewGeminiService(apiKey string) (TextGenerator, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{client: client}, nil
}

// GenerateText implements TextGenerator.
func (g *geminiService) GenerateText(ctx context.Context, model, prompt string, temperature float32) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}

// isOverloaded reports whether err looks like a transient capacity signal
// from the model service. Detection is message-based so it holds across SDK
// error types.
func isOverloaded(err error) bool {
	msg := err.Error()
	for _, marker := range []string{"503", "429", "UNAVAILABLE", "RESOURCE_EXHAUSTED", "overloaded"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// GenerateTextWithRetry calls gen up to maxAttempts times, sleeping delay
// between attempts, but only while the failure is an overload signal. Any
// other failure, or an exhausted budget, surfaces as ErrUpstreamUnavailable.
func GenerateTextWithRetry(ctx context.Context, gen TextGenerator, model, prompt string, temperature float32, maxAttempts int, delay time.Duration) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result, err := gen.GenerateText(ctx, model, prompt, temperature)
		if err == nil {
			return result, nil
		}

		if !isOverloaded(err) {
			return "", fmt.Errorf("%w: %v", apperr.ErrUpstreamUnavailable, err)
		}
		lastErr = err

		if attempt < maxAttempts {
			log.Printf("⚠️ Model overloaded, retrying in %s... (attempt %d/%d)", delay, attempt, maxAttempts)
			select {
			case <-ctx.Done():
				return "", fmt.Errorf("%w: %v", apperr.ErrUpstreamUnavailable, ctx.Err())
			case <-time.After(delay):
			}
		}
	}

	return "", fmt.Errorf("%w: model overloaded after %d attempts: %v", apperr.ErrUpstreamUnavailable, maxAttempts, lastErr)
}
