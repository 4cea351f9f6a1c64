package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"skillpath/career-advisor/internal/apperr"
)

// respondError maps a pipeline failure class to a transport status code.
// The full error (including any raw model output kept for diagnostics) is
// logged; malformed-output details never reach the client body.
func respondError(c *fiber.Ctx, err error) error {
	log.Printf("❌ Request failed: %v", err)

	switch {
	case errors.Is(err, apperr.ErrInputInvalid):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, apperr.ErrMalformedOutput):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "The AI returned an invalid response format. Please try again.",
		})
	case errors.Is(err, apperr.ErrUpstreamUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "The model is currently unavailable. Please try again later.",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
