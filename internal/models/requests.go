package models

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type RecommendationRequest struct {
	Skills []SkillCategory `json:"skills"`
}

type CertificationRequest struct {
	CareerTitle string          `json:"career_title"`
	Skills      []SkillCategory `json:"skills"`
}

type CertificationResponse struct {
	MissingSkills  []string   `json:"missing_skills"`
	Certifications string     `json:"certifications"`
	Courses        []ListItem `json:"courses"`
}

type JobSearchRequest struct {
	Role     string `json:"role"`
	Location string `json:"location"`
}

type JobSearchResponse struct {
	JobListings string     `json:"job_listings"`
	Links       []ListItem `json:"links"`
}

type InterviewRequest struct {
	Role string `json:"role"`
}

type SummaryRequest struct {
	WorkExperienceText string `json:"work_experience_text"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}

type ResumeRequest struct {
	ResumeData ResumeData `json:"resume_data"`
}

type ResumeHTMLResponse struct {
	HTML string `json:"html"`
}
