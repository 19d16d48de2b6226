package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/docpoint/booking-backend/internal/dto"
	"github.com/docpoint/booking-backend/internal/services"
)

type DoctorHandler struct {
	doctorService *services.DoctorService
}

func NewDoctorHandler(doctorService *services.DoctorService) *DoctorHandler {
	return &DoctorHandler{doctorService: doctorService}
}

func (h *DoctorHandler) ListAll(c *fiber.Ctx) error {
	doctors, err := h.doctorService.ListAll()
	if err != nil {
		return err
	}
	return dto.Send(c, fiber.StatusOK, doctors)
}
