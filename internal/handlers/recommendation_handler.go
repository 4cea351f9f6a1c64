package handlers

import (
	"github.com/gofiber/fiber/v2"

	"skillpath/career-advisor/internal/models"
	"skillpath/career-advisor/internal/services"
)

type RecommendationHandler struct {
	advisor services.AdvisorService
}

func NewRecommendationHandler(advisor services.AdvisorService) *RecommendationHandler {
	return &RecommendationHandler{advisor: advisor}
}

// HandleRecommendations handles POST /api/recommendations
func (h *RecommendationHandler) HandleRecommendations(c *fiber.Ctx) error {
	var req models.RecommendationRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if len(req.Skills) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No skills data provided",
		})
	}

	recommendations, err := h.advisor.Recommend(c.Context(), req.Skills)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(recommendations)
}
