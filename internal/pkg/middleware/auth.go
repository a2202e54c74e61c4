package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jmk307/hellmap-api/app/controllers"
	"github.com/jmk307/hellmap-api/app/models"
	"github.com/jmk307/hellmap-api/app/repository"
	"github.com/jmk307/hellmap-api/internal/pkg/token"
	"github.com/jmk307/hellmap-api/internal/pkg/usercontext"
)

// AuthRequired resolves the Bearer token into a user context and rejects the
// request when the token is missing, invalid or belongs to a disabled
// account. The role comes from the database on every request, never from the
// token, so a demoted admin loses access immediately.
func AuthRequired(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return controllers.RespondError(c, fiber.StatusUnauthorized, "missing bearer token")
	}

	claims, err := token.Default().Parse(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return controllers.RespondError(c, fiber.StatusUnauthorized, "invalid or expired token")
	}
	userID, err := claims.UserID()
	if err != nil {
		return controllers.RespondError(c, fiber.StatusUnauthorized, "invalid or expired token")
	}

	user, err := repository.GetGlobalFactory().GetUserRepository().GetByID(userID)
	if err != nil {
		return controllers.RespondError(c, fiber.StatusUnauthorized, "unknown account")
	}
	if user.Status != models.STATUS_ACTIVE {
		return controllers.RespondError(c, fiber.StatusForbidden, "account is disabled")
	}

	usercontext.SetUserContext(c, usercontext.UserContext{
		UserID:     user.ID,
		Nickname:   user.Nickname,
		IsLoggedIn: true,
		IsAdmin:    user.Role == models.ROLE_ADMIN,
	})

	return c.Next()
}

// AdminRequired runs after AuthRequired and rejects non-admin users.
func AdminRequired(c *fiber.Ctx) error {
	if !usercontext.IsAdmin(c) {
		return controllers.RespondError(c, fiber.StatusForbidden, "admin role required")
	}
	return c.Next()
}
