package handlers

import (
	"github.com/gofiber/fiber/v2"

	"skillpath/career-advisor/internal/models"
	"skillpath/career-advisor/internal/services"
)

type CertificationHandler struct {
	advisor services.AdvisorService
}

func NewCertificationHandler(advisor services.AdvisorService) *CertificationHandler {
	return &CertificationHandler{advisor: advisor}
}

// HandleCertifications handles POST /api/certifications
func (h *CertificationHandler) HandleCertifications(c *fiber.Ctx) error {
	var req models.CertificationRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.CareerTitle == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Career title is required",
		})
	}

	result, err := h.advisor.SuggestCertifications(c.Context(), req.CareerTitle, req.Skills)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}
