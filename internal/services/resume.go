package services

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"skillpath/career-advisor/internal/models"
)

// resumeTemplate is the fixed résumé document. Section and field order is
// part of the output contract; the document is self-contained with inline
// styling and no external resources.
const resumeTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Resume - {{.Name}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; }
        h1 { color: #000; }
        h2 { color: #000; }
        .section { margin-bottom: 20px; }
        .section h2 { border-bottom: 2px solid #000; padding-bottom: 5px; }
        .contact-info { margin-bottom: 10px; }
        .contact-info p { margin: 5px 0; }
        .experience, .education, .project { margin-bottom: 15px; }
        .experience h3, .education h3, .project h3 { margin: 0; }
        .experience p, .education p, .project p { margin: 5px 0; }
        .skills, .certifications, .languages, .hobbies { margin-bottom: 10px; }
    </style>
</head>
<body>
    <h1>{{.Name}}</h1>
    <div class="contact-info">
        <p>Phone: {{.Phone}}</p>
        <p>Email: {{.Email}}</p>
        <p>LinkedIn: {{orNA .LinkedIn}}</p>
        <p>Portfolio: {{orNA .Portfolio}}</p>
        <p>Address: {{orNA .Address}}</p>
    </div>

    <div class="section">
        <h2>Professional Summary</h2>
        <p>{{.Summary}}</p>
    </div>

    <div class="section">
        <h2>Work Experience</h2>
{{- range .Experiences}}
        <div class="experience">
            <h3>{{.JobTitle}} | {{.Company}} | {{.Location}} | {{.StartDate}} - {{.EndDate}}</h3>
            <ul>
{{- range .Achievements}}
                <li>{{.}}</li>
{{- end}}
            </ul>
        </div>
{{- end}}
    </div>

    <div class="section">
        <h2>Education</h2>
{{- range .Education}}
        <div class="education">
            <h3>{{.Degree}}</h3>
            <p>{{.Institution}} | {{.Location}} | Graduated: {{.GraduationDate}}</p>
            <p>Honors/Awards: {{orNA .Honors}}</p>
        </div>
{{- end}}
    </div>

    <div class="section">
        <h2>Skills</h2>
        <p>{{join .Skills}}</p>
    </div>

    <div class="section">
        <h2>Certifications</h2>
        <p>{{joinOrNA .Certifications}}</p>
    </div>

    <div class="section">
        <h2>Projects</h2>
{{- range .Projects}}
        <div class="project">
            <h3>{{.Title}}</h3>
            <p><strong>Description:</strong> {{.Description}}</p>
            <p><strong>Technologies:</strong> {{.Technologies}}</p>
            <p><strong>Role:</strong> {{.Role}}</p>
        </div>
{{- end}}
    </div>

    <div class="section">
        <h2>Languages</h2>
        <p>{{joinOrNA .Languages}}</p>
    </div>

    <div class="section">
        <h2>Hobbies and Interests</h2>
        <p>{{joinOrNA .Hobbies}}</p>
    </div>
</body>
</html>
`

// ResumeRenderer maps a ResumeData record to a complete HTML document. It is
// pure and deterministic, total on missing fields, and escapes interpolated
// content via html/template.
type ResumeRenderer struct {
	tmpl *template.Template
}

func NewResumeRenderer() *ResumeRenderer {
	funcs := template.FuncMap{
		// Absent scalar "list or none" fields render as N/A.
		"orNA": func(s string) string {
			if s == "" {
				return "N/A"
			}
			return s
		},
		"join": func(items []string) string {
			return strings.Join(items, ", ")
		},
		"joinOrNA": func(items []string) string {
			if len(items) == 0 {
				return "N/A"
			}
			return strings.Join(items, ", ")
		},
	}

	return &ResumeRenderer{
		tmpl: template.Must(template.New("resume").Funcs(funcs).Parse(resumeTemplate)),
	}
}

func (r *ResumeRenderer) Render(data models.ResumeData) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render resume: %w", err)
	}
	return buf.String(), nil
}
