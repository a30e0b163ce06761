package handler

import (
	"strings"

	"github.com/Altraaa/creavibes-panel-api/internal/auth/domain"
	"github.com/Altraaa/creavibes-panel-api/internal/auth/service"
	"github.com/Altraaa/creavibes-panel-api/internal/response"
	"github.com/gofiber/fiber/v2"
)

const localUserKey = "auth_user"

// AuthMiddleware resolves the bearer token on every protected request and
// loads the owning account into the request locals.
type AuthMiddleware struct {
	tokens service.TokenIssuer
	users  domain.UserRepository
}

func NewAuthMiddleware(tokens service.TokenIssuer, users domain.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

func (m *AuthMiddleware) RequireAuth(c *fiber.Ctx) error {
	token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, "Unauthenticated", nil)
	}

	userID, err := m.tokens.Validate(c.UserContext(), token)
	if err != nil {
		return response.Error(c, fiber.StatusUnauthorized, "Unauthenticated", nil)
	}

	user, err := m.users.GetByID(c.UserContext(), userID)
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, "Authentication failed", map[string]string{
			"server": err.Error(),
		})
	}
	if user == nil || !user.IsActive {
		return response.Error(c, fiber.StatusUnauthorized, "Unauthenticated", nil)
	}

	c.Locals(localUserKey, user)

	return c.Next()
}

func (m *AuthMiddleware) RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := currentUser(c)
		if user == nil || user.Role != role {
			return response.Error(c, fiber.StatusForbidden, "Forbidden", nil)
		}
		return c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}
