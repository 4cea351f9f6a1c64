package services

import (
	"strings"
	"testing"

	"skillpath/career-advisor/internal/models"
)

var sampleCategories = []models.SkillCategory{
	{
		Category: "Programming",
		Skills: []models.Skill{
			{Name: "Python", Level: 8},
			{Name: "Go", Level: 5},
		},
	},
	{
		Category: "Data",
		Skills: []models.Skill{
			{Name: "SQL", Level: 7},
		},
	},
}

func TestBuildRecommendationPrompt(t *testing.T) {
	pb := NewPromptBuilder()
	prompt := pb.BuildRecommendationPrompt(sampleCategories)

	if prompt == "" {
		t.Error("Expected non-empty prompt")
	}

	// Should restate the skills in the level-out-of-ten form.
	if !strings.Contains(prompt, "Python (Level: 8/10)") {
		t.Error("Prompt should contain Python with its level")
	}

	if !strings.Contains(prompt, "- Programming:") {
		t.Error("Prompt should group skills by category")
	}

	// Should embed the schema contract.
	for _, key := range []string{"matchScore", "workLifeBalance", "salaryRange", "jobOpenings"} {
		if !strings.Contains(prompt, key) {
			t.Errorf("Prompt should specify %s in the schema", key)
		}
	}

	// Should demand JSON only.
	if !strings.Contains(prompt, "The entire response must be only the JSON data.") {
		t.Error("Prompt should forbid surrounding prose")
	}
}

func TestBuildMissingSkillsPrompt(t *testing.T) {
	pb := NewPromptBuilder()
	prompt := pb.BuildMissingSkillsPrompt("Data Scientist", sampleCategories)

	if !strings.Contains(prompt, "Data Scientist") {
		t.Error("Prompt should contain the target career")
	}

	if !strings.Contains(prompt, "Python, Go, SQL") {
		t.Error("Prompt should contain the flattened skill names")
	}

	if !strings.Contains(prompt, "numbered list") {
		t.Error("Prompt should request a numbered list")
	}
}

func TestBuildCertificationPrompt(t *testing.T) {
	pb := NewPromptBuilder()
	prompt := pb.BuildCertificationPrompt([]string{"Machine Learning", "Statistics"})

	if !strings.Contains(prompt, "1. Machine Learning") {
		t.Error("Prompt should enumerate the first missing skill")
	}

	if !strings.Contains(prompt, "2. Statistics") {
		t.Error("Prompt should enumerate the second missing skill")
	}

	if !strings.Contains(prompt, "URL in parentheses") {
		t.Error("Prompt should specify the name (URL) item format")
	}
}

func TestBuildJobSearchPrompt(t *testing.T) {
	pb := NewPromptBuilder()
	prompt := pb.BuildJobSearchPrompt("Data Scientist", "Pune")

	if !strings.Contains(prompt, "'Data Scientist' position in 'Pune, India'") {
		t.Error("Prompt should contain role and location")
	}

	for _, portal := range []string{"LinkedIn", "Naukri.com", "Indeed"} {
		if !strings.Contains(prompt, portal) {
			t.Errorf("Prompt should name portal %s", portal)
		}
	}
}

func TestBuildInterviewPrompt(t *testing.T) {
	pb := NewPromptBuilder()
	prompt := pb.BuildInterviewPrompt("Backend Developer")

	if !strings.Contains(prompt, "Backend Developer") {
		t.Error("Prompt should contain the role")
	}

	if !strings.Contains(prompt, `"questions"`) || !strings.Contains(prompt, `"answers"`) {
		t.Error("Prompt should specify the questions/answers schema keys")
	}

	if !strings.Contains(prompt, "10") {
		t.Error("Prompt should request 10 questions")
	}
}

func TestBuildSummaryPrompt(t *testing.T) {
	pb := NewPromptBuilder()
	prompt := pb.BuildSummaryPrompt("Managed a data platform team for four years.")

	if !strings.Contains(prompt, "Managed a data platform team") {
		t.Error("Prompt should contain the experience text")
	}

	if !strings.Contains(prompt, "first person") {
		t.Error("Prompt should request first-person narration")
	}
}
