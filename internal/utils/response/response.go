// Package response writes the JSON envelopes of the admin API.
package response

import (
	"motoradmin/internal/utils/pagination"

	"github.com/gofiber/fiber/v2"
)

func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

// SuccessWithWarning is used when an action succeeded but the follow-up
// refresh did not.
func SuccessWithWarning(c *fiber.Ctx, message, warning string, data interface{}) error {
	return c.JSON(fiber.Map{
		"message": message,
		"warning": warning,
		"data":    data,
	})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

func Conflict(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusConflict, message)
}

func ServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

// Page writes one page of a table. Extra keys are merged into the body.
func Page(c *fiber.Ctx, data interface{}, meta pagination.Meta, extra fiber.Map) error {
	body := fiber.Map{
		"data": data,
		"meta": meta,
	}
	for k, v := range extra {
		body[k] = v
	}
	return c.JSON(body)
}
