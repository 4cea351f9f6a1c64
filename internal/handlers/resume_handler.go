package handlers

import (
	"github.com/gofiber/fiber/v2"

	"skillpath/career-advisor/internal/models"
	"skillpath/career-advisor/internal/services"
)

type ResumeHandler struct {
	summarizer services.SummarizerService
	renderer   *services.ResumeRenderer
	exporter   services.PDFExporter
}

func NewResumeHandler(
	summarizer services.SummarizerService,
	renderer *services.ResumeRenderer,
	exporter services.PDFExporter,
) *ResumeHandler {
	return &ResumeHandler{
		summarizer: summarizer,
		renderer:   renderer,
		exporter:   exporter,
	}
}

// HandleSummary handles POST /api/resume-builder/summary
func (h *ResumeHandler) HandleSummary(c *fiber.Ctx) error {
	var req models.SummaryRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	summary, err := h.summarizer.Summarize(c.Context(), req.WorkExperienceText)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SummaryResponse{Summary: summary})
}

// HandleHTML handles POST /api/resume-builder/html
func (h *ResumeHandler) HandleHTML(c *fiber.Ctx) error {
	var req models.ResumeRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	html, err := h.renderer.Render(req.ResumeData)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.ResumeHTMLResponse{HTML: html})
}

// HandlePDF handles POST /api/resume-builder/pdf
func (h *ResumeHandler) HandlePDF(c *fiber.Ctx) error {
	var req models.ResumeRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	html, err := h.renderer.Render(req.ResumeData)
	if err != nil {
		return respondError(c, err)
	}

	pdf, err := h.exporter.Export(c.Context(), html)
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=resume.pdf`)
	return c.Send(pdf)
}
