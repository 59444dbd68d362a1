package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmontoya/spapos-api/internal/application/dto"
	"github.com/jmontoya/spapos-api/internal/application/usecase"
)

// TherapistHandler maneja las peticiones HTTP para Therapist (protegido).
type TherapistHandler struct {
	uc *usecase.TherapistUseCase
}

// NewTherapistHandler construye el handler.
func NewTherapistHandler(uc *usecase.TherapistUseCase) *TherapistHandler {
	return &TherapistHandler{uc: uc}
}

// Create crea un terapeuta.
// POST /api/therapists
func (h *TherapistHandler) Create(c *fiber.Ctx) error {
	var in dto.TherapistRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List devuelve terapeutas. Con ?active=true solo los activos.
// GET /api/therapists
func (h *TherapistHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.QueryBool("active", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListActive devuelve solo los terapeutas activos (selector del POS).
// GET /api/therapists/active
func (h *TherapistHandler) ListActive(c *fiber.Ctx) error {
	out, err := h.uc.List(true)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update edita un terapeuta, incluido su flag de activo.
// PUT /api/therapists/:id
func (h *TherapistHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.TherapistRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un terapeuta.
// DELETE /api/therapists/:id
func (h *TherapistHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
