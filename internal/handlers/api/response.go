package api

import (
	"github.com/gofiber/fiber/v3"

	"matchmaker/internal/models"
)

// jsonSuccess returns a response with the given status and success flag.
func jsonSuccess(c fiber.Ctx, status int, success bool) error {
	return c.Status(status).JSON(models.LookupResponse{Success: success})
}

// jsonError returns an error response with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.LookupResponse{
		Success: false,
		Error:   message,
	})
}
