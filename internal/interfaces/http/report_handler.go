package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jmontoya/spapos-api/internal/application/dto"
	"github.com/jmontoya/spapos-api/internal/application/reports"
)

// ReportHandler maneja los reportes del dashboard (protegido).
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// TodaySales devuelve las ventas del día local y el ingreso confirmado.
// GET /api/sales/today
func (h *ReportHandler) TodaySales(c *fiber.Ctx) error {
	out, err := h.uc.TodaySales(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TopProducts devuelve los 5 productos más vendidos de todos los tiempos.
// GET /api/sales/topproducts
func (h *ReportHandler) TopProducts(c *fiber.Ctx) error {
	out, err := h.uc.TopProducts(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AllSellingProducts devuelve el ranking completo de productos vendidos.
// GET /api/sales/allselling
func (h *ReportHandler) AllSellingProducts(c *fiber.Ctx) error {
	out, err := h.uc.AllSellingProducts(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TherapistLeaderboard devuelve el ranking de terapeutas por número de ventas.
// Acepta ?from=YYYY-MM-DD&to=YYYY-MM-DD para acotar el rango; ambos extremos
// son inclusivos a nivel de día.
// GET /api/therapists/report
func (h *ReportHandler) TherapistLeaderboard(c *fiber.Ctx) error {
	from, err := parseDateQuery(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido, formato YYYY-MM-DD"})
	}
	to, err := parseDateQuery(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido, formato YYYY-MM-DD"})
	}
	if to != nil {
		// El repositorio filtra con created_at < to; para incluir el día
		// completo se avanza al inicio del día siguiente.
		next := to.AddDate(0, 0, 1)
		to = &next
	}
	out, err := h.uc.TherapistLeaderboard(c.Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// parseDateQuery interpreta una fecha local YYYY-MM-DD del query string.
func parseDateQuery(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
