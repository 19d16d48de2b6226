package middleware

import (
	"errors"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/docpoint/booking-backend/internal/apperr"
	"github.com/docpoint/booking-backend/internal/config"
	"github.com/docpoint/booking-backend/internal/models"
)

// RequireAuth gates a route on a valid bearer token. A missing or
// expired token answers 401, any other verification failure 403. The
// decoded claims land in c.Locals("user") for Identity to pick up.
func RequireAuth(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return apperr.Unauthorized("Token expired")
			}
			if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
				return apperr.Unauthorized("Unauthorized")
			}
			return apperr.Forbidden("Unauthorized")
		},
	})
}

// Identity returns the authenticated caller. Role middleware stores a
// typed identity; routes gated only by RequireAuth fall back to the
// claims jwtware parsed.
func Identity(c *fiber.Ctx) (models.Identity, error) {
	if id, ok := c.Locals("identity").(models.Identity); ok {
		return id, nil
	}

	tok, ok := c.Locals("user").(*jwt.Token)
	if !ok || tok == nil {
		return models.Identity{}, apperr.Unauthorized("Unauthorized")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return models.Identity{}, apperr.Unauthorized("Unauthorized")
	}

	userID, _ := claims["userId"].(string)
	role, _ := claims["role"].(string)
	fullName, _ := claims["fullName"].(string)
	email, _ := claims["email"].(string)
	if userID == "" {
		return models.Identity{}, apperr.Unauthorized("Unauthorized")
	}
	return models.Identity{
		UserID:   userID,
		Role:     models.Role(role),
		FullName: fullName,
		Email:    email,
	}, nil
}
