package handlers

import (
	"motoradmin/internal/services/moderation"
	"motoradmin/internal/utils/response"
	"motoradmin/internal/utils/validation"

	"github.com/gofiber/fiber/v2"
)

// ModerationHandler exposes the row level actions of the admin tables.
type ModerationHandler struct {
	moderation moderation.Service
}

func NewModerationHandler(svc moderation.Service) *ModerationHandler {
	return &ModerationHandler{moderation: svc}
}

func (h *ModerationHandler) Approve(c *fiber.Ctx) error {
	out, err := h.moderation.ApproveOrReject(c.UserContext(), c.Params("id"), moderation.ActionApprove, "")
	if err != nil {
		return writeError(c, err)
	}
	return outcomeResponse(c, "Verification approved", out)
}

func (h *ModerationHandler) Reject(c *fiber.Ctx) error {
	var input struct {
		Note string `json:"note"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return response.BadRequest(c, "Invalid request body")
		}
	}
	v := validation.New()
	v.MaxLength("note", input.Note, validation.MaxNoteLength)
	if err := v.Err(); err != nil {
		return response.BadRequest(c, err.Error())
	}
	out, err := h.moderation.ApproveOrReject(c.UserContext(), c.Params("id"), moderation.ActionReject, input.Note)
	if err != nil {
		return writeError(c, err)
	}
	return outcomeResponse(c, "Verification rejected", out)
}

func (h *ModerationHandler) Verify(c *fiber.Ctx) error {
	return h.setVerified(c, true)
}

func (h *ModerationHandler) Unverify(c *fiber.Ctx) error {
	return h.setVerified(c, false)
}

func (h *ModerationHandler) setVerified(c *fiber.Ctx, verified bool) error {
	out, err := h.moderation.SetUserVerification(c.UserContext(), c.Params("id"), verified)
	if err != nil {
		return writeError(c, err)
	}
	msg := "User verified"
	if !verified {
		msg = "User unverified"
	}
	return outcomeResponse(c, msg, out)
}

// DeleteUser removes the user together with their cars and verification
// requests.
func (h *ModerationHandler) DeleteUser(c *fiber.Ctx) error {
	out, err := h.moderation.DeleteUser(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return outcomeResponse(c, "User deleted successfully", out)
}
