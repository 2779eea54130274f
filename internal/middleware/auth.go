// Package middleware provides the Fiber middleware of the admin API.
package middleware

import (
	"errors"
	"strings"

	"motoradmin/internal/services/auth"
	"motoradmin/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const sessionLocal = "session"

// AuthMiddleware restores the operator session from the bearer token.
type AuthMiddleware struct {
	authService auth.Service
	log         *zap.Logger
}

func NewAuthMiddleware(authService auth.Service, log *zap.Logger) *AuthMiddleware {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthMiddleware{authService: authService, log: log}
}

// Handler rejects requests without a token bound to a live session.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return response.Unauthorized(c, "missing authorization header")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return response.Unauthorized(c, "invalid authorization format")
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	sess, err := m.authService.Authenticate(c.UserContext(), tokenString)
	switch {
	case err == nil:
	case errors.Is(err, auth.ErrInvalidToken):
		return response.Unauthorized(c, "invalid token")
	case errors.Is(err, auth.ErrSessionNotFound):
		return response.Unauthorized(c, "session expired")
	default:
		m.log.Error("failed to restore session", zap.Error(err))
		return response.ServerError(c, "failed to restore session")
	}

	SetSession(c, sess)
	return c.Next()
}

// SetSession stores the authenticated session on the request.
func SetSession(c *fiber.Ctx, sess *auth.Session) {
	c.Locals(sessionLocal, sess)
}

// GetSession extracts the session placed by Handler.
func GetSession(c *fiber.Ctx) (*auth.Session, error) {
	sess, ok := c.Locals(sessionLocal).(*auth.Session)
	if !ok || sess == nil {
		return nil, errors.New("session not found in context")
	}
	return sess, nil
}
