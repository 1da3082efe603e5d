package handler

import (
	"github.com/gofiber/fiber/v2"

	"legalsite/internal/service"
)

// CreateContactMessage accepts a contact form submission.
//
// @Summary Submit a contact message
// @Tags submissions
// @Accept json
// @Produce json
// @Param body body service.ContactInput true "Contact form fields"
// @Success 201 {object} model.ContactMessage
// @Failure 400 {object} errorPayload
// @Router /api/contact [post]
func CreateContactMessage(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.ContactInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
		}

		stored, err := svc.SubmitContact(c.UserContext(), in)
		if err != nil {
			return writeSubmissionError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(stored)
	}
}

// CreateAppointment accepts an appointment request submission.
//
// @Summary Submit an appointment request
// @Tags submissions
// @Accept json
// @Produce json
// @Param body body service.AppointmentInput true "Appointment form fields"
// @Success 201 {object} model.AppointmentRequest
// @Failure 400 {object} errorPayload
// @Router /api/appointments [post]
func CreateAppointment(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.AppointmentInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
		}

		stored, err := svc.SubmitAppointment(c.UserContext(), in)
		if err != nil {
			return writeSubmissionError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(stored)
	}
}

// writeSubmissionError maps service errors to the API contract: validation
// failures become 400 with a field-level reason, everything else is a 500
// that never exposes persistence detail.
func writeSubmissionError(c *fiber.Ctx, err error) error {
	if ve, ok := service.AsValidationError(err); ok {
		return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", ve.Field+" "+ve.Reason)
	}
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}
