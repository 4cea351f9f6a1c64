package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"skillpath/career-advisor/internal/models"
)

// AdvisorService runs the guidance pipelines: prompt construction, a
// retried model call, and interpretation of the reply into the operation's
// schema.
type AdvisorService interface {
	Advise(ctx context.Context, question string) (string, error)
	Recommend(ctx context.Context, categories []models.SkillCategory) ([]models.CareerRecommendation, error)
	SuggestCertifications(ctx context.Context, careerTitle string, categories []models.SkillCategory) (*models.CertificationResponse, error)
	FindJobs(ctx context.Context, role, location string) (*models.JobSearchResponse, error)
	PrepareInterview(ctx context.Context, role string) (*models.InterviewQASet, error)
}

type advisorService struct {
	generator     TextGenerator
	promptBuilder *PromptBuilder
	model         string
	maxAttempts   int
	retryDelay    time.Duration
}

func NewAdvisorService(generator TextGenerator, model string, maxAttempts int, retryDelay time.Duration) AdvisorService {
	return &advisorService{
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
		model:         model,
		maxAttempts:   maxAttempts,
		retryDelay:    retryDelay,
	}
}

func (a *advisorService) generate(ctx context.Context, prompt string, temperature float32) (string, error) {
	return GenerateTextWithRetry(ctx, a.generator, a.model, prompt, temperature, a.maxAttempts, a.retryDelay)
}

// Advise implements AdvisorService. The reply is open-ended prose and is
// returned verbatim.
func (a *advisorService) Advise(ctx context.Context, question string) (string, error) {
	prompt := a.promptBuilder.BuildAdvicePrompt(question)

	response, err := a.generate(ctx, prompt, 0.7)
	if err != nil {
		return "", fmt.Errorf("failed to generate advice: %w", err)
	}

	return response, nil
}

// Recommend implements AdvisorService.
func (a *advisorService) Recommend(ctx context.Context, categories []models.SkillCategory) ([]models.CareerRecommendation, error) {
	prompt := a.promptBuilder.BuildRecommendationPrompt(categories)

	response, err := a.generate(ctx, prompt, 0.7)
	if err != nil {
		return nil, fmt.Errorf("failed to generate recommendations: %w", err)
	}

	var recommendations []models.CareerRecommendation
	if err := DecodeStrict(response, &recommendations); err != nil {
		log.Printf("❌ Failed to parse recommendation response: %v", err)
		return nil, err
	}

	// The model occasionally omits ids; generate them so every
	// recommendation stays addressable by the caller.
	for i := range recommendations {
		if recommendations[i].ID == "" {
			recommendations[i].ID = uuid.NewString()
		}
	}

	return recommendations, nil
}

// SuggestCertifications implements AdvisorService as a two-stage pipeline:
// the missing-skill names parsed from the first call are typed input to the
// second, with no shared conversational state between them.
func (a *advisorService) SuggestCertifications(ctx context.Context, careerTitle string, categories []models.SkillCategory) (*models.CertificationResponse, error) {
	skillsPrompt := a.promptBuilder.BuildMissingSkillsPrompt(careerTitle, categories)

	skillsReply, err := a.generate(ctx, skillsPrompt, 0.3)
	if err != nil {
		return nil, fmt.Errorf("failed to identify missing skills: %w", err)
	}

	missingSkills, err := SegmentListReply(skillsReply)
	if err != nil {
		log.Printf("❌ Failed to parse missing skills response: %v", err)
		return nil, err
	}

	certPrompt := a.promptBuilder.BuildCertificationPrompt(missingSkills)

	certReply, err := a.generate(ctx, certPrompt, 0.3)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch certifications: %w", err)
	}

	items, err := SegmentListReply(certReply)
	if err != nil {
		log.Printf("❌ Failed to parse certification response: %v", err)
		return nil, err
	}

	return &models.CertificationResponse{
		MissingSkills:  missingSkills,
		Certifications: strings.TrimSpace(StripCodeFences(certReply)),
		Courses:        ParseListItems(items),
	}, nil
}

// FindJobs implements AdvisorService.
func (a *advisorService) FindJobs(ctx context.Context, role, location string) (*models.JobSearchResponse, error) {
	prompt := a.promptBuilder.BuildJobSearchPrompt(role, location)

	response, err := a.generate(ctx, prompt, 0.2)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch job listings: %w", err)
	}

	items, err := SegmentListReply(response)
	if err != nil {
		log.Printf("❌ Failed to parse job listing response: %v", err)
		return nil, err
	}

	return &models.JobSearchResponse{
		JobListings: strings.TrimSpace(StripCodeFences(response)),
		Links:       ParseListItems(items),
	}, nil
}

// PrepareInterview implements AdvisorService.
func (a *advisorService) PrepareInterview(ctx context.Context, role string) (*models.InterviewQASet, error) {
	prompt := a.promptBuilder.BuildInterviewPrompt(role)

	response, err := a.generate(ctx, prompt, 0.7)
	if err != nil {
		return nil, fmt.Errorf("failed to generate interview questions: %w", err)
	}

	var qa models.InterviewQASet
	if err := DecodeStrict(response, &qa); err != nil {
		log.Printf("❌ Failed to parse interview response: %v", err)
		return nil, err
	}

	if len(qa.Questions) != len(qa.Answers) {
		log.Printf("⚠️ Interview reply has %d questions and %d answers", len(qa.Questions), len(qa.Answers))
	}

	return &qa, nil
}
