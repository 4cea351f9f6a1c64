package services

import (
	"context"
	"fmt"
	"strings"

	"skillpath/career-advisor/internal/apperr"
)

// SummarizerService condenses free-text work experience into a first-person
// narrative paragraph using a dedicated summarization model.
type SummarizerService interface {
	Summarize(ctx context.Context, workExperience string) (string, error)
}

type summarizerService struct {
	generator     TextGenerator
	promptBuilder *PromptBuilder
	model         string
}

func NewSummarizerService(generator TextGenerator, model string) SummarizerService {
	return &summarizerService{
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
		model:         model,
	}
}

// Summarize implements SummarizerService. Generation runs at temperature 0
// so identical input yields identical output for a given model version.
// Failures are terminal for the request; no fallback summary is synthesized.
func (s *summarizerService) Summarize(ctx context.Context, workExperience string) (string, error) {
	prompt := s.promptBuilder.BuildSummaryPrompt(workExperience)

	summary, err := s.generator.GenerateText(ctx, s.model, prompt, 0)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrSummarizerFailure, err)
	}

	return FormatSummary(summary), nil
}

// FormatSummary applies the humanizing transform to a raw summary: sentences
// are split on period-space, re-joined with a paragraph break each, and led
// in with the fixed "I worked as" framing.
func FormatSummary(summary string) string {
	summary = strings.TrimSpace(StripCodeFences(summary))
	sentences := strings.Split(summary, ". ")
	return "I worked as " + strings.Join(sentences, ". \n")
}
