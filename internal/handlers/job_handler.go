package handlers

import (
	"github.com/gofiber/fiber/v2"

	"skillpath/career-advisor/internal/models"
	"skillpath/career-advisor/internal/services"
)

type JobHandler struct {
	advisor services.AdvisorService
}

func NewJobHandler(advisor services.AdvisorService) *JobHandler {
	return &JobHandler{advisor: advisor}
}

// HandleJobListings handles POST /api/job-listings
func (h *JobHandler) HandleJobListings(c *fiber.Ctx) error {
	var req models.JobSearchRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Role == "" || req.Location == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Role and location are required",
		})
	}

	result, err := h.advisor.FindJobs(c.Context(), req.Role, req.Location)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}
