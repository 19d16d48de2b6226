package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/docpoint/booking-backend/internal/apperr"
	"github.com/docpoint/booking-backend/internal/dto"
	"github.com/docpoint/booking-backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}

	tok, err := h.authService.Signup(&req)
	if err != nil {
		return err
	}
	return dto.Send(c, fiber.StatusCreated, tok)
}

func (h *AuthHandler) Signin(c *fiber.Ctx) error {
	var req dto.SigninRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}

	tok, err := h.authService.Signin(&req)
	if err != nil {
		return err
	}
	return dto.Send(c, fiber.StatusOK, tok)
}
