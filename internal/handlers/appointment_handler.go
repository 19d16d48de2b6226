package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/docpoint/booking-backend/internal/apperr"
	"github.com/docpoint/booking-backend/internal/dto"
	"github.com/docpoint/booking-backend/internal/middleware"
	"github.com/docpoint/booking-backend/internal/services"
)

type AppointmentHandler struct {
	appointmentService *services.AppointmentService
}

func NewAppointmentHandler(appointmentService *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

func (h *AppointmentHandler) ListMine(c *fiber.Ctx) error {
	id, err := middleware.Identity(c)
	if err != nil {
		return err
	}

	appointments, err := h.appointmentService.ListMine(id)
	if err != nil {
		return err
	}
	return dto.Send(c, fiber.StatusOK, appointments)
}

func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	id, err := middleware.Identity(c)
	if err != nil {
		return err
	}

	var req dto.CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}

	apt, err := h.appointmentService.Create(id, &req)
	if err != nil {
		return err
	}
	return dto.Send(c, fiber.StatusCreated, apt)
}
