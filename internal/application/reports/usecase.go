package reports

import (
	"context"
	"time"

	"github.com/jmontoya/spapos-api/internal/application/dto"
	"github.com/jmontoya/spapos-api/internal/domain/entity"
	"github.com/jmontoya/spapos-api/internal/domain/repository"
)

// Tamaños por defecto de los rankings.
const (
	topProductsLimit      = 5
	therapistRankingLimit = 10
)

// UseCase expone las proyecciones de solo lectura para el dashboard.
// Las agregaciones viven en SQL (ReportRepository); aquí solo se resuelven
// rangos de fechas y el mapeo a DTOs.
type UseCase struct {
	reportRepo repository.ReportRepository
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(reportRepo repository.ReportRepository) *UseCase {
	return &UseCase{reportRepo: reportRepo}
}

// TopProducts devuelve los 5 productos más vendidos por cantidad.
func (uc *UseCase) TopProducts(ctx context.Context) ([]dto.ProductSalesResponse, error) {
	rows, err := uc.reportRepo.TopProducts(ctx, topProductsLimit)
	if err != nil {
		return nil, err
	}
	return toProductSales(rows), nil
}

// AllSellingProducts devuelve el ranking completo de productos vendidos.
func (uc *UseCase) AllSellingProducts(ctx context.Context) ([]dto.ProductSalesResponse, error) {
	rows, err := uc.reportRepo.TopProducts(ctx, 0)
	if err != nil {
		return nil, err
	}
	return toProductSales(rows), nil
}

// TodaySales devuelve las ventas del día (hora local del servidor) junto con
// el ingreso confirmado: solo las ventas Paid suman al revenue, las Unpaid
// aparecen en la lista pero no en el total.
func (uc *UseCase) TodaySales(ctx context.Context) (*dto.TodaySalesResponse, error) {
	from, to := dayBounds(time.Now())

	sales, err := uc.reportRepo.SalesBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	revenue, err := uc.reportRepo.PaidRevenueBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	out := &dto.TodaySalesResponse{
		Sales:       make([]dto.SaleResponse, 0, len(sales)),
		SalesCount:  len(sales),
		PaidRevenue: revenue.IntPart(),
	}
	for _, s := range sales {
		out.Sales = append(out.Sales, toSaleHeader(s))
	}
	return out, nil
}

// TherapistLeaderboard devuelve el top 10 de terapeutas por número de ventas,
// opcionalmente acotado a un rango de fechas.
func (uc *UseCase) TherapistLeaderboard(ctx context.Context, from, to *time.Time) ([]dto.TherapistSalesResponse, error) {
	rows, err := uc.reportRepo.TherapistLeaderboard(ctx, from, to, therapistRankingLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TherapistSalesResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TherapistSalesResponse{
			TherapistID: r.TherapistID,
			Name:        r.Name,
			SalesCount:  r.SalesCount,
			TotalAmount: r.TotalAmount.IntPart(),
		})
	}
	return out, nil
}

// dayBounds devuelve [inicio del día, inicio del día siguiente) en hora local.
func dayBounds(now time.Time) (time.Time, time.Time) {
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// time.Date normaliza day+1, así el límite es correcto también en días
	// con cambio de horario (23 o 25 horas).
	to := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	return from, to
}

func toProductSales(rows []repository.ProductSalesRow) []dto.ProductSalesResponse {
	out := make([]dto.ProductSalesResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ProductSalesResponse{
			ProductID:    r.ProductID,
			Name:         r.Name,
			TotalSold:    r.TotalSold,
			TotalRevenue: r.TotalRevenue.IntPart(),
		})
	}
	return out
}

func toSaleHeader(s *entity.Sale) dto.SaleResponse {
	resp := dto.SaleResponse{
		ID:            s.ID,
		CashierID:     s.CashierID,
		CashierName:   s.CashierName,
		CustomerName:  s.CustomerName,
		CustomerPhone: s.CustomerPhone,
		TherapistName: s.TherapistName,
		Subtotal:      s.Subtotal.IntPart(),
		Discount:      s.Discount.IntPart(),
		VoucherCode:   s.VoucherCode,
		TotalAmount:   s.TotalAmount.IntPart(),
		PaymentStatus: s.PaymentStatus,
		PaymentMethod: s.PaymentMethod,
		Status:        s.Status,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
	if s.CustomerID != nil {
		resp.CustomerID = *s.CustomerID
	}
	if s.TherapistID != nil {
		resp.TherapistID = *s.TherapistID
	}
	return resp
}
