package handlers

import (
	"errors"

	"motoradmin/internal/repositories"
	"motoradmin/internal/services/dashboard"
	"motoradmin/internal/services/moderation"
	"motoradmin/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// writeError maps service errors onto HTTP statuses. Gateway messages are
// passed through so the operator sees why an action failed.
func writeError(c *fiber.Ctx, err error) error {
	var partial *moderation.PartialCompletionError
	switch {
	// checked first: the failed step's cause is reachable through Unwrap
	case errors.As(err, &partial):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":     partial.Error(),
			"completed": partial.Completed,
			"failed":    partial.Failed,
		})
	case errors.Is(err, moderation.ErrInvalidAction),
		errors.Is(err, dashboard.ErrInvalidTab),
		errors.Is(err, errInvalidConfirmation):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, moderation.ErrRequestNotFound),
		errors.Is(err, moderation.ErrUserNotFound),
		errors.Is(err, repositories.ErrNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, moderation.ErrInvalidTransition):
		return response.Conflict(c, err.Error())
	default:
		return response.ServerError(c, err.Error())
	}
}

// outcomeResponse reports a written action. A failed reload turns into a
// warning, the write itself stands.
func outcomeResponse(c *fiber.Ctx, message string, out *moderation.Outcome) error {
	if out == nil || out.Snapshot == nil {
		warning := "action applied but the dashboard could not be reloaded"
		if out != nil && out.RefreshErr != nil {
			warning += ": " + out.RefreshErr.Error()
		}
		return response.SuccessWithWarning(c, message, warning, nil)
	}
	return response.Success(c, message, fiber.Map{
		"stats":     out.Snapshot.Stats,
		"loaded_at": out.Snapshot.LoadedAt,
	})
}
