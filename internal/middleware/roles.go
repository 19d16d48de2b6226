package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/docpoint/booking-backend/internal/apperr"
	"github.com/docpoint/booking-backend/internal/models"
	"github.com/docpoint/booking-backend/internal/repository"
	"github.com/docpoint/booking-backend/internal/token"
)

// RequirePatient restricts a route to callers holding a PATIENT token.
func RequirePatient(tokens *token.Service, users repository.UserRepository) fiber.Handler {
	return requireRole(tokens, users, models.RolePatient)
}

// RequireDoctor restricts a route to callers holding a DOCTOR token.
func RequireDoctor(tokens *token.Service, users repository.UserRepository) fiber.Handler {
	return requireRole(tokens, users, models.RoleDoctor)
}

// requireRole verifies the token, checks the embedded role, then
// re-confirms the backing account still exists — a token issued before
// an account was deleted must not keep working.
func requireRole(tokens *token.Service, users repository.UserRepository, want models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := bearerToken(c)
		if raw == "" {
			return apperr.Unauthorized("Unauthorized")
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			if err == token.ErrExpired {
				return apperr.Unauthorized("Token expired")
			}
			return apperr.Forbidden("Unauthorized")
		}
		if models.Role(claims.Role) != want {
			return apperr.Unauthorized("Unauthorized")
		}

		if _, err := users.FindByUserID(claims.UserID); err != nil {
			if err == repository.ErrNotFound {
				return apperr.Unauthorized("User not found")
			}
			return err
		}

		c.Locals("identity", claims.Identity())
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	h := c.Get(fiber.HeaderAuthorization)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
