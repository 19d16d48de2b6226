package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/docpoint/booking-backend/internal/apperr"
	"github.com/docpoint/booking-backend/internal/dto"
)

// ErrorHandler is the single response boundary for failures: apperr
// values serialize to the envelope as-is, anything unexpected becomes
// a generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return c.Status(ae.Status).JSON(dto.ErrorResponse{
			Status:  ae.Status,
			Message: ae.Message,
			Kind:    string(ae.Kind),
		})
	}

	code := fiber.StatusInternalServerError
	message := "Internal server error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		if code < 500 {
			message = fe.Message
		}
	}
	var kind apperr.Kind
	switch {
	case code == fiber.StatusNotFound:
		kind = apperr.KindNotFound
	case code == fiber.StatusUnauthorized:
		kind = apperr.KindUnauthorized
	case code == fiber.StatusForbidden:
		kind = apperr.KindForbidden
	case code < 500:
		// other 4xx (413 body limit, 429 rate limit, ...)
		kind = apperr.KindValidation
	default:
		kind = apperr.KindInternal
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
	}

	return c.Status(code).JSON(dto.ErrorResponse{
		Status:  code,
		Message: message,
		Kind:    string(kind),
	})
}
