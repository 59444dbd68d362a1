package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jmontoya/spapos-api/internal/domain/entity"
)

// ProductSalesRow es una fila de la agregación de productos vendidos.
type ProductSalesRow struct {
	ProductID    string
	Name         string
	TotalSold    int
	TotalRevenue decimal.Decimal
}

// TherapistSalesRow es una fila del ranking de terapeutas.
type TherapistSalesRow struct {
	TherapistID string
	Name        string
	SalesCount  int
	TotalAmount decimal.Decimal
}

// ReportRepository define consultas de agregación de solo lectura.
// Las ventas retractadas se excluyen de todas las agregaciones.
type ReportRepository interface {
	// TopProducts devuelve los productos más vendidos por cantidad (limit <= 0 = sin límite).
	TopProducts(ctx context.Context, limit int) ([]ProductSalesRow, error)
	// SalesBetween devuelve cabeceras de ventas dentro de [from, to).
	SalesBetween(ctx context.Context, from, to time.Time) ([]*entity.Sale, error)
	// PaidRevenueBetween suma el total de ventas pagadas dentro de [from, to).
	PaidRevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	// TherapistLeaderboard agrega ventas con terapeuta asignado dentro del rango opcional.
	TherapistLeaderboard(ctx context.Context, from, to *time.Time, limit int) ([]TherapistSalesRow, error)
}
