package handlers

import (
	"github.com/gofiber/fiber/v2"

	"skillpath/career-advisor/internal/models"
	"skillpath/career-advisor/internal/services"
)

type InterviewHandler struct {
	advisor services.AdvisorService
}

func NewInterviewHandler(advisor services.AdvisorService) *InterviewHandler {
	return &InterviewHandler{advisor: advisor}
}

// HandleInterviewQuestions handles POST /api/interview-questions
func (h *InterviewHandler) HandleInterviewQuestions(c *fiber.Ctx) error {
	var req models.InterviewRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Role is required",
		})
	}

	qa, err := h.advisor.PrepareInterview(c.Context(), req.Role)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(qa)
}
