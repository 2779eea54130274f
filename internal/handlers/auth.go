package handlers

import (
	"errors"

	"motoradmin/internal/middleware"
	"motoradmin/internal/services/auth"
	"motoradmin/internal/services/dashboard"
	"motoradmin/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService auth.Service
	dashboard   dashboard.Service
	log         *zap.Logger
}

func NewAuthHandler(authService auth.Service, dash dashboard.Service, log *zap.Logger) *AuthHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthHandler{authService: authService, dashboard: dash, log: log}
}

// Login checks the operator credentials, opens a session and loads the
// dashboard data.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	sess, token, err := h.authService.Login(c.UserContext(), input.Username, input.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		return response.Unauthorized(c, "Invalid username or password")
	}
	if err != nil {
		h.log.Error("login failed", zap.Error(err))
		return response.ServerError(c, "Authentication failed")
	}

	data := fiber.Map{
		"token":   token,
		"session": sess,
	}
	snap, err := h.dashboard.LoadAll(c.UserContext())
	if err != nil {
		return response.SuccessWithWarning(c, "Logged in", "failed to load dashboard: "+err.Error(), data)
	}
	data["stats"] = snap.Stats
	return response.Success(c, "Logged in", data)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := middleware.GetSession(c)
	if err != nil {
		return response.Unauthorized(c, err.Error())
	}
	if err := h.authService.Logout(c.UserContext(), sess); err != nil {
		h.log.Error("logout failed", zap.String("session_id", sess.ID), zap.Error(err))
		return response.ServerError(c, "Failed to log out")
	}
	return response.Success(c, "Logged out", nil)
}

func (h *AuthHandler) Session(c *fiber.Ctx) error {
	sess, err := middleware.GetSession(c)
	if err != nil {
		return response.Unauthorized(c, err.Error())
	}
	return response.Success(c, "Session", sess)
}
