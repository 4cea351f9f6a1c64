package handlers

import (
	"github.com/gofiber/fiber/v2"

	"skillpath/career-advisor/internal/models"
	"skillpath/career-advisor/internal/services"
)

type ChatHandler struct {
	advisor services.AdvisorService
}

func NewChatHandler(advisor services.AdvisorService) *ChatHandler {
	return &ChatHandler{advisor: advisor}
}

// HandleChat handles POST /api/chat
func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req models.ChatRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No message provided",
		})
	}

	answer, err := h.advisor.Advise(c.Context(), req.Message)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.ChatResponse{Response: answer})
}
