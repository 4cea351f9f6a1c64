package models

// ResumeData is the caller-supplied résumé record. Every field is optional;
// the renderer degrades to empty strings or "N/A" rather than failing.
type ResumeData struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	LinkedIn  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
	Address   string `json:"address"`
	Summary   string `json:"summary"`

	Experiences []Experience `json:"experiences"`
	Education   []Education  `json:"education"`
	Projects    []Project    `json:"projects"`

	Skills         []string `json:"skills"`
	Certifications []string `json:"certifications"`
	Languages      []string `json:"languages"`
	Hobbies        []string `json:"hobbies"`
}

type Experience struct {
	JobTitle     string   `json:"job_title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Achievements []string `json:"achievements"`
}

type Education struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	Location       string `json:"location"`
	GraduationDate string `json:"graduation_date"`
	Honors         string `json:"honors"`
}

type Project struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	Role         string `json:"role"`
}
