package handlers

import (
	"errors"
	"fmt"

	"motoradmin/internal/middleware"
	"motoradmin/internal/models"
	"motoradmin/internal/services/auth"
	"motoradmin/internal/services/moderation"
	"motoradmin/internal/utils/response"
	"motoradmin/internal/utils/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var (
	errInvalidConfirmation = errors.New("invalid confirmation type")
	errNoConfirmation      = errors.New("no pending confirmation")
)

// ConfirmationHandler drives the confirm/cancel dialog shared by user
// deletion and verification rejection.
type ConfirmationHandler struct {
	authService auth.Service
	moderation  moderation.Service
	log         *zap.Logger
}

func NewConfirmationHandler(authService auth.Service, svc moderation.Service, log *zap.Logger) *ConfirmationHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ConfirmationHandler{authService: authService, moderation: svc, log: log}
}

func newConfirmation(kind, targetID string) (*models.Confirmation, error) {
	switch kind {
	case models.ConfirmDeleteUser:
		return &models.Confirmation{
			Type:     kind,
			TargetID: targetID,
			Title:    "Delete User",
			Message:  "Are you sure you want to delete this user? This will also delete all their cars and verification requests.",
		}, nil
	case models.ConfirmRejectVerification:
		return &models.Confirmation{
			Type:         kind,
			TargetID:     targetID,
			Title:        "Reject Verification",
			Message:      "Are you sure you want to reject this verification request?",
			AcceptsInput: true,
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", errInvalidConfirmation, kind)
}

// Open replaces any pending confirmation with a new one.
func (h *ConfirmationHandler) Open(c *fiber.Ctx) error {
	sess, err := middleware.GetSession(c)
	if err != nil {
		return response.Unauthorized(c, err.Error())
	}
	var input struct {
		Type     string `json:"type"`
		TargetID string `json:"target_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	v := validation.New()
	v.Required("target_id", input.TargetID)
	v.OneOf("type", input.Type, models.ConfirmDeleteUser, models.ConfirmRejectVerification)
	if err := v.Err(); err != nil {
		return response.BadRequest(c, err.Error())
	}
	conf, err := newConfirmation(input.Type, input.TargetID)
	if err != nil {
		return writeError(c, err)
	}

	sess.Confirmation = conf
	if err := h.authService.Save(c.UserContext(), sess); err != nil {
		h.log.Error("failed to save confirmation", zap.String("session_id", sess.ID), zap.Error(err))
		return response.ServerError(c, "Failed to save confirmation")
	}
	return response.Success(c, "Confirmation pending", conf)
}

// Confirm runs the pending action. The optional input is the rejection
// reason.
func (h *ConfirmationHandler) Confirm(c *fiber.Ctx) error {
	sess, err := middleware.GetSession(c)
	if err != nil {
		return response.Unauthorized(c, err.Error())
	}
	conf := sess.Confirmation
	if conf == nil {
		return response.Conflict(c, errNoConfirmation.Error())
	}
	var input struct {
		Input string `json:"input"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return response.BadRequest(c, "Invalid request body")
		}
	}
	if conf.AcceptsInput {
		v := validation.New()
		v.MaxLength("input", input.Input, validation.MaxNoteLength)
		if err := v.Err(); err != nil {
			return response.BadRequest(c, err.Error())
		}
	}

	// The dialog closes whatever the action's result.
	sess.Confirmation = nil
	if err := h.authService.Save(c.UserContext(), sess); err != nil {
		h.log.Warn("failed to clear confirmation", zap.String("session_id", sess.ID), zap.Error(err))
	}

	var out *moderation.Outcome
	switch conf.Type {
	case models.ConfirmDeleteUser:
		out, err = h.moderation.DeleteUser(c.UserContext(), conf.TargetID)
	case models.ConfirmRejectVerification:
		out, err = h.moderation.ApproveOrReject(c.UserContext(), conf.TargetID, moderation.ActionReject, input.Input)
	default:
		err = errInvalidConfirmation
	}
	if err != nil {
		return writeError(c, err)
	}
	return outcomeResponse(c, conf.Title+" confirmed", out)
}

func (h *ConfirmationHandler) Cancel(c *fiber.Ctx) error {
	sess, err := middleware.GetSession(c)
	if err != nil {
		return response.Unauthorized(c, err.Error())
	}
	sess.Confirmation = nil
	if err := h.authService.Save(c.UserContext(), sess); err != nil {
		h.log.Error("failed to clear confirmation", zap.String("session_id", sess.ID), zap.Error(err))
		return response.ServerError(c, "Failed to cancel confirmation")
	}
	return response.Success(c, "Confirmation cancelled", nil)
}
