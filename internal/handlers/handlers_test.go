package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"skillpath/career-advisor/internal/apperr"
	"skillpath/career-advisor/internal/models"
	"skillpath/career-advisor/internal/services"
)

type stubAdvisor struct {
	answer          string
	recommendations []models.CareerRecommendation
	certifications  *models.CertificationResponse
	jobs            *models.JobSearchResponse
	interview       *models.InterviewQASet
	err             error
}

func (s *stubAdvisor) Advise(context.Context, string) (string, error) {
	return s.answer, s.err
}

func (s *stubAdvisor) Recommend(context.Context, []models.SkillCategory) ([]models.CareerRecommendation, error) {
	return s.recommendations, s.err
}

func (s *stubAdvisor) SuggestCertifications(context.Context, string, []models.SkillCategory) (*models.CertificationResponse, error) {
	return s.certifications, s.err
}

func (s *stubAdvisor) FindJobs(context.Context, string, string) (*models.JobSearchResponse, error) {
	return s.jobs, s.err
}

func (s *stubAdvisor) PrepareInterview(context.Context, string) (*models.InterviewQASet, error) {
	return s.interview, s.err
}

type stubSummarizer struct {
	summary string
	err     error
}

func (s *stubSummarizer) Summarize(context.Context, string) (string, error) {
	return s.summary, s.err
}

type stubExporter struct {
	pdf []byte
	err error
}

func (s *stubExporter) Export(context.Context, string) ([]byte, error) {
	return s.pdf, s.err
}

func newTestApp(advisor services.AdvisorService, summarizer services.SummarizerService, exporter services.PDFExporter) *fiber.App {
	app := fiber.New()

	chat := NewChatHandler(advisor)
	recommendation := NewRecommendationHandler(advisor)
	certification := NewCertificationHandler(advisor)
	job := NewJobHandler(advisor)
	interview := NewInterviewHandler(advisor)
	resume := NewResumeHandler(summarizer, services.NewResumeRenderer(), exporter)

	api := app.Group("/api")
	api.Post("/chat", chat.HandleChat)
	api.Post("/recommendations", recommendation.HandleRecommendations)
	api.Post("/certifications", certification.HandleCertifications)
	api.Post("/job-listings", job.HandleJobListings)
	api.Post("/interview-questions", interview.HandleInterviewQuestions)
	api.Post("/resume-builder/summary", resume.HandleSummary)
	api.Post("/resume-builder/html", resume.HandleHTML)
	api.Post("/resume-builder/pdf", resume.HandlePDF)

	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	return body
}

func TestChatValidation(t *testing.T) {
	app := newTestApp(&stubAdvisor{}, &stubSummarizer{}, &stubExporter{})

	resp := postJSON(t, app, "/api/chat", fiber.Map{})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No message provided", decodeBody(t, resp)["error"])
}

func TestChatSuccess(t *testing.T) {
	app := newTestApp(&stubAdvisor{answer: "Start with the basics."}, &stubSummarizer{}, &stubExporter{})

	resp := postJSON(t, app, "/api/chat", fiber.Map{"message": "Where do I start?"})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Start with the basics.", decodeBody(t, resp)["response"])
}

func TestRecommendationsValidation(t *testing.T) {
	app := newTestApp(&stubAdvisor{}, &stubSummarizer{}, &stubExporter{})

	resp := postJSON(t, app, "/api/recommendations", fiber.Map{"skills": []any{}})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No skills data provided", decodeBody(t, resp)["error"])
}

func TestRecommendationsUpstreamUnavailable(t *testing.T) {
	advisor := &stubAdvisor{err: fmt.Errorf("%w: overloaded after 3 attempts", apperr.ErrUpstreamUnavailable)}
	app := newTestApp(advisor, &stubSummarizer{}, &stubExporter{})

	resp := postJSON(t, app, "/api/recommendations", models.RecommendationRequest{
		Skills: []models.SkillCategory{{Category: "Programming"}},
	})

	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestRecommendationsMalformedOutputHidesRawText(t *testing.T) {
	advisor := &stubAdvisor{err: fmt.Errorf("%w: unexpected token\nresponse: SECRET RAW REPLY", apperr.ErrMalformedOutput)}
	app := newTestApp(advisor, &stubSummarizer{}, &stubExporter{})

	resp := postJSON(t, app, "/api/recommendations", models.RecommendationRequest{
		Skills: []models.SkillCategory{{Category: "Programming"}},
	})

	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.NotContains(t, body["error"], "SECRET RAW REPLY")
}

func TestCertificationsValidation(t *testing.T) {
	app := newTestApp(&stubAdvisor{}, &stubSummarizer{}, &stubExporter{})

	resp := postJSON(t, app, "/api/certifications", fiber.Map{"skills": []any{}})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Career title is required", decodeBody(t, resp)["error"])
}

func TestJobListingsValidation(t *testing.T) {
	app := newTestApp(&stubAdvisor{}, &stubSummarizer{}, &stubExporter{})

	resp := postJSON(t, app, "/api/job-listings", fiber.Map{"role": "Data Scientist"})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Role and location are required", decodeBody(t, resp)["error"])
}

func TestInterviewQuestionsSuccess(t *testing.T) {
	advisor := &stubAdvisor{interview: &models.InterviewQASet{
		Questions: []string{"Tell me about yourself."},
		Answers:   []string{"I am an engineer."},
	}}
	app := newTestApp(advisor, &stubSummarizer{}, &stubExporter{})

	resp := postJSON(t, app, "/api/interview-questions", fiber.Map{"role": "Software Engineer"})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Len(t, body["questions"], 1)
	assert.Len(t, body["answers"], 1)
}

func TestResumeSummary(t *testing.T) {
	app := newTestApp(&stubAdvisor{}, &stubSummarizer{summary: "I worked as an engineer."}, &stubExporter{})

	resp := postJSON(t, app, "/api/resume-builder/summary", fiber.Map{"work_experience_text": "engineering"})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "I worked as an engineer.", decodeBody(t, resp)["summary"])
}

func TestResumeHTML(t *testing.T) {
	app := newTestApp(&stubAdvisor{}, &stubSummarizer{}, &stubExporter{})

	resp := postJSON(t, app, "/api/resume-builder/html", models.ResumeRequest{
		ResumeData: models.ResumeData{Name: "Asha Rao"},
	})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Contains(t, body["html"], "<h1>Asha Rao</h1>")
}

func TestResumePDF(t *testing.T) {
	exporter := &stubExporter{pdf: []byte("%PDF-1.7 fake")}
	app := newTestApp(&stubAdvisor{}, &stubSummarizer{}, exporter)

	resp := postJSON(t, app, "/api/resume-builder/pdf", models.ResumeRequest{
		ResumeData: models.ResumeData{Name: "Asha Rao"},
	})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename=resume.pdf`, resp.Header.Get("Content-Disposition"))

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7 fake"), body)
}

func TestResumePDFRendererUnavailable(t *testing.T) {
	exporter := &stubExporter{err: fmt.Errorf("%w: browser executable not found; install Chrome or set CHROME_PATH", apperr.ErrRendererUnavailable)}
	app := newTestApp(&stubAdvisor{}, &stubSummarizer{}, exporter)

	resp := postJSON(t, app, "/api/resume-builder/pdf", models.ResumeRequest{})

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, decodeBody(t, resp)["error"], "browser executable not found")
}
