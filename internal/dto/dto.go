package dto

import "github.com/gofiber/fiber/v2"

type SignupRequest struct {
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateAppointmentRequest struct {
	DoctorUserID string `json:"doctorUserId"`
	Date         string `json:"date"`
}

// Response is the uniform success envelope: message holds the payload.
type Response struct {
	Status  int `json:"status"`
	Message any `json:"message"`
}

// ErrorResponse mirrors Response for failures and adds a stable
// machine-readable kind alongside the human-readable message.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}

// Send writes the success envelope with the given HTTP status.
func Send(c *fiber.Ctx, status int, payload any) error {
	return c.Status(status).JSON(Response{Status: status, Message: payload})
}
