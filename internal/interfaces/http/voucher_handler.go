package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmontoya/spapos-api/internal/application/dto"
	"github.com/jmontoya/spapos-api/internal/application/usecase"
)

// VoucherHandler maneja las peticiones HTTP para Voucher (protegido).
type VoucherHandler struct {
	uc *usecase.VoucherUseCase
}

// NewVoucherHandler construye el handler.
func NewVoucherHandler(uc *usecase.VoucherUseCase) *VoucherHandler {
	return &VoucherHandler{uc: uc}
}

// Create godoc
// @Summary      Crear voucher de descuento
// @Tags         vouchers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VoucherRequest  true  "Datos del voucher"
// @Success      201   {object}  dto.VoucherResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/vouchers [post]
func (h *VoucherHandler) Create(c *fiber.Ctx) error {
	var in dto.VoucherRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List devuelve vouchers. Con ?active=true solo los activos.
// GET /api/vouchers
func (h *VoucherHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.QueryBool("active", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListActive devuelve solo los vouchers activos (para el checkout).
// GET /api/vouchers/active
func (h *VoucherHandler) ListActive(c *fiber.Ctx) error {
	out, err := h.uc.List(true)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Validate resuelve un código de voucher durante el checkout.
// GET /api/vouchers/validate?code=DESC10
func (h *VoucherHandler) Validate(c *fiber.Ctx) error {
	out, err := h.uc.Validate(c.Query("code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update edita un voucher, incluido su flag de activo.
// PUT /api/vouchers/:id
func (h *VoucherHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.VoucherRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un voucher.
// DELETE /api/vouchers/:id
func (h *VoucherHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
