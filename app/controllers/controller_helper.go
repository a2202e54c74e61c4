package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// envelope is the response wrapper every endpoint uses. The mobile and web
// clients parse exactly this shape.
func envelope(status int, data interface{}) fiber.Map {
	return fiber.Map{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"status":    status,
		"success":   status < 400,
		"data":      data,
	}
}

// RespondOK sends a 200 envelope.
func RespondOK(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(envelope(fiber.StatusOK, data))
}

// RespondCreated sends a 201 envelope.
func RespondCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(envelope(fiber.StatusCreated, data))
}

// RespondError sends an error envelope with a human-readable message.
func RespondError(c *fiber.Ctx, status int, message string) error {
	body := envelope(status, nil)
	body["message"] = message
	return c.Status(status).JSON(body)
}

// formatTimePtr renders an optional timestamp with the given formatter,
// keeping nil as JSON null.
func formatTimePtr(t *time.Time, format func(time.Time) string) interface{} {
	if t == nil {
		return nil
	}
	return format(*t)
}
