package models

// CareerRecommendation is produced fresh by the model on every request and
// passed through unscored. Field names match the JSON contract the model is
// prompted with.
type CareerRecommendation struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	MatchScore        int      `json:"matchScore"`
	Industry          string   `json:"industry"`
	SalaryRange       string   `json:"salaryRange"`
	GrowthRate        string   `json:"growthRate"`
	Locations         []string `json:"locations"`
	KeySkills         []string `json:"keySkills"`
	RequiredEducation []string `json:"requiredEducation"`
	EmergingTrends    []string `json:"emergingTrends"`
	TopCompanies      []string `json:"topCompanies"`
	WorkLifeBalance   int      `json:"workLifeBalance"`
	JobOpenings       string   `json:"jobOpenings"`
}

// ListItem is one entry of a numbered model reply: a display name plus the
// URL found in parentheses, if any.
type ListItem struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
