package services

import (
	"fmt"
	"strings"

	"skillpath/career-advisor/internal/models"
)

// PromptBuilder serializes structured input into model instructions. Every
// method is a pure function of its arguments; raw text is interpolated
// as-is, sanitization is the caller's concern.
type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// formatSkillSummary renders categories as indented "Name (Level: n/10)"
// lines for prompt embedding.
func formatSkillSummary(categories []models.SkillCategory) string {
	var lines []string
	for _, category := range categories {
		var skills []string
		for _, skill := range category.Skills {
			skills = append(skills, fmt.Sprintf("%s (Level: %d/10)", skill.Name, skill.Level))
		}
		lines = append(lines, fmt.Sprintf("  - %s: %s", category.Category, strings.Join(skills, ", ")))
	}
	return strings.Join(lines, "\n")
}

// flattenSkillNames joins every skill name across categories.
func flattenSkillNames(categories []models.SkillCategory) string {
	var names []string
	for _, category := range categories {
		for _, skill := range category.Skills {
			names = append(names, skill.Name)
		}
	}
	return strings.Join(names, ", ")
}

// BuildRecommendationPrompt creates the strict-schema career recommendation
// prompt. The schema is given by example and the model is told to reply with
// only the JSON array.
func (pb *PromptBuilder) BuildRecommendationPrompt(categories []models.SkillCategory) string {
	return fmt.Sprintf(`You are an expert career advisor AI for the Indian job market. Your task is to generate personalized career recommendations based on a user's self-assessed skills.

Analyze the following user skills:
%s

Based on these skills, generate a JSON array of 3 to 5 career recommendations.

**IMPORTANT**: The output MUST be a valid JSON array. Each object in the array must strictly follow this structure:
{
  "id": "string",
  "title": "string",
  "description": "string",
  "matchScore": "integer (a percentage from 0-100 representing how well the user's skills match this career)",
  "industry": "string",
  "salaryRange": "string (e.g., '₹6-25 LPA')",
  "growthRate": "string (e.g., '+25%% YoY')",
  "locations": ["string"],
  "keySkills": ["string"],
  "requiredEducation": ["string"],
  "emergingTrends": ["string"],
  "topCompanies": ["string"],
  "workLifeBalance": "integer (a rating from 1-10)",
  "jobOpenings": "string (e.g., '12,500+')"
}

Do not include any text, explanations, or markdown formatting before or after the JSON array. The entire response must be only the JSON data.`,
		formatSkillSummary(categories))
}

// BuildMissingSkillsPrompt creates the first stage of the certification
// pipeline: a concise numbered list of the top missing skills for the
// target career.
func (pb *PromptBuilder) BuildMissingSkillsPrompt(careerTitle string, categories []models.SkillCategory) string {
	return fmt.Sprintf(`The user has skills: %s. They want to become a %s.
Identify the top 3 most important skills they are missing for this role.
Your response MUST be a numbered list containing only the skill names, one per item. Keep it concise.`,
		flattenSkillNames(categories), careerTitle)
}

// BuildCertificationPrompt creates the second stage of the certification
// pipeline from the typed missing-skill names produced by the first stage.
func (pb *PromptBuilder) BuildCertificationPrompt(missingSkills []string) string {
	var lines []string
	for i, skill := range missingSkills {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, skill))
	}

	return fmt.Sprintf(`For each of the following missing skills, recommend one specific, highly-rated certification or course:
%s
Your response MUST be a single string containing a numbered list. Each item must have the course name followed by the full URL in parentheses.
**CRITICAL INSTRUCTION**: The URL must be a full, direct, and working deep link to the course landing page. Do NOT provide partial links, broken links, or links to a general homepage.
Example:
1. Google Data Analytics Professional Certificate (https://www.coursera.org/professional-certificates/google-data-analytics)`,
		strings.Join(lines, "\n"))
}

// BuildJobSearchPrompt creates the job portal search-link prompt, a
// semi-structured numbered list specified by example.
func (pb *PromptBuilder) BuildJobSearchPrompt(role, location string) string {
	return fmt.Sprintf(`You are an expert job search assistant. Your task is to generate job search URLs for popular Indian job portals.

Generate 3 search URLs for a '%s' position in '%s, India'.

Create a numbered list for the following portals:
1.  LinkedIn
2.  Naukri.com
3.  Indeed

For each portal, construct a direct search URL for the specified role and location. The output should be a numbered list where each item has the name of the search and the full URL in parentheses.

Example for "Software Engineer" in "Bangalore":
1. Search on LinkedIn (https://www.linkedin.com/jobs/search/?keywords=Software%%20Engineer&location=Bangalore%%2C%%20Karnataka%%2C%%20India)
2. Search on Naukri.com (https://www.naukri.com/software-engineer-jobs-in-bangalore)
3. Search on Indeed (https://in.indeed.com/jobs?q=Software+Engineer&l=Bangalore)`,
		role, location)
}

// BuildInterviewPrompt creates the strict-schema interview preparation
// prompt: parallel arrays of 10 questions and 10 answers.
func (pb *PromptBuilder) BuildInterviewPrompt(role string) string {
	return fmt.Sprintf(`You are an expert interview coach. Your task is to generate 10 common interview questions for a '%s' position in India, along with detailed answers for each.

The output MUST be a valid JSON object with two keys: "questions" and "answers".
-   "questions": An array of 10 question strings.
-   "answers": An array of 10 detailed answer strings corresponding to the questions.

Example for "Software Engineer":
{
    "questions": [
        "Tell me about yourself.",
        "What are your strengths and weaknesses?",
        "Explain a challenging project you worked on.",
        "... (and 7 more questions) ..."
    ],
    "answers": [
        "I am a software engineer with 3 years of experience...",
        "My greatest strength is my problem-solving ability... My main weakness is that I can be too self-critical...",
        "In my previous role, I was tasked with...",
        "... (and 7 more detailed answers) ..."
    ]
}

Do not include any text, explanations, or markdown formatting before or after the JSON object. The entire response must be only the JSON data.`,
		role)
}

// BuildAdvicePrompt creates the open-ended career advice prompt. The reply
// is passed through as prose.
func (pb *PromptBuilder) BuildAdvicePrompt(question string) string {
	return fmt.Sprintf("You are a helpful and knowledgeable career advisor. The user's question is: %s. Provide a helpful and concise response.", question)
}

// BuildSummaryPrompt creates the résumé summarization prompt for the
// dedicated summary model.
func (pb *PromptBuilder) BuildSummaryPrompt(workExperience string) string {
	return fmt.Sprintf(`Summarize the following work experience into a condensed professional summary of 30 to 150 words, written in the first person.
Reply with plain text only, no lists, no markdown.

Work experience:
%s`,
		workExperience)
}
