package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jmontoya/spapos-api/internal/domain/entity"
	"github.com/jmontoya/spapos-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para los reportes del dashboard.
// Todas las agregaciones excluyen las ventas retractadas.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// TopProducts agrega unidades vendidas y revenue por producto desde los
// snapshots de sale_items. limit <= 0 devuelve el ranking completo.
func (r *ReportRepo) TopProducts(ctx context.Context, limit int) ([]repository.ProductSalesRow, error) {
	query := `
	SELECT si.product_id,
	       MAX(si.name)                   AS name,
	       SUM(si.quantity)::INT          AS total_sold,
	       SUM(si.price * si.quantity)    AS total_revenue
	FROM sale_items si
	JOIN sales s ON s.id = si.sale_id
	WHERE s.status <> $1
	GROUP BY si.product_id
	ORDER BY total_sold DESC, total_revenue DESC`
	args := []any{entity.SaleStatusRetracted}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("reports.TopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.ProductSalesRow
	for rows.Next() {
		var row repository.ProductSalesRow
		if err := rows.Scan(&row.ProductID, &row.Name, &row.TotalSold, &row.TotalRevenue); err != nil {
			return nil, fmt.Errorf("reports.TopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// SalesBetween devuelve cabeceras de ventas no retractadas dentro de [from, to).
func (r *ReportRepo) SalesBetween(ctx context.Context, from, to time.Time) ([]*entity.Sale, error) {
	rows, err := r.pool.Query(ctx,
		saleSelect+` WHERE s.created_at >= $1 AND s.created_at < $2 AND s.status <> $3
		 ORDER BY s.created_at DESC`,
		from, to, entity.SaleStatusRetracted,
	)
	if err != nil {
		return nil, fmt.Errorf("reports.SalesBetween: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("reports.SalesBetween scan: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// PaidRevenueBetween suma el total de ventas pagadas y no retractadas dentro
// de [from, to). Las Unpaid no cuentan como ingreso confirmado.
func (r *ReportRepo) PaidRevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var revenue decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_amount), 0)
		 FROM sales
		 WHERE created_at >= $1 AND created_at < $2
		   AND payment_status = $3 AND status <> $4`,
		from, to, entity.PaymentStatusPaid, entity.SaleStatusRetracted,
	).Scan(&revenue)
	if err != nil {
		return decimal.Zero, fmt.Errorf("reports.PaidRevenueBetween: %w", err)
	}
	return revenue, nil
}

// TherapistLeaderboard agrega ventas no retractadas con terapeuta asignado,
// ordenadas por número de ventas descendente (monto como desempate).
func (r *ReportRepo) TherapistLeaderboard(ctx context.Context, from, to *time.Time, limit int) ([]repository.TherapistSalesRow, error) {
	query := `
	SELECT s.therapist_id,
	       t.name,
	       COUNT(*)::INT        AS sales_count,
	       SUM(s.total_amount)  AS total_amount
	FROM sales s
	JOIN therapists t ON t.id = s.therapist_id
	WHERE s.therapist_id IS NOT NULL AND s.status <> $1`
	args := []any{entity.SaleStatusRetracted}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(` AND s.created_at >= $%d`, len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(` AND s.created_at < $%d`, len(args))
	}
	query += `
	GROUP BY s.therapist_id, t.name
	ORDER BY sales_count DESC, total_amount DESC`
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("reports.TherapistLeaderboard: %w", err)
	}
	defer rows.Close()

	var results []repository.TherapistSalesRow
	for rows.Next() {
		var row repository.TherapistSalesRow
		if err := rows.Scan(&row.TherapistID, &row.Name, &row.SalesCount, &row.TotalAmount); err != nil {
			return nil, fmt.Errorf("reports.TherapistLeaderboard scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
