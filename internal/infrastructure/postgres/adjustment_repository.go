package postgres

import (
	"context"
	"fmt"

	"github.com/jmontoya/spapos-api/internal/domain/entity"
	"github.com/jmontoya/spapos-api/internal/domain/repository"
)

var _ repository.AdjustmentRepository = (*AdjustmentRepo)(nil)

// AdjustmentRepo implementación del puerto AdjustmentRepository sobre PostgreSQL.
type AdjustmentRepo struct {
	q Querier
}

// NewAdjustmentRepository construye el adaptador de ajustes. Pasar pool o tx (Querier).
func NewAdjustmentRepository(q Querier) *AdjustmentRepo {
	return &AdjustmentRepo{q: q}
}

// Create persiste un ajuste de stock.
func (r *AdjustmentRepo) Create(adjustment *entity.Adjustment) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO adjustments (id, product_id, product_name, qty_changed, reason, adjusted_by, notes, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		adjustment.ID, adjustment.ProductID, adjustment.ProductName, adjustment.QuantityChanged,
		adjustment.Reason, adjustment.AdjustedBy, adjustment.Notes, adjustment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert adjustment: %w", err)
	}
	return nil
}

// List devuelve el historial de ajustes, más recientes primero.
func (r *AdjustmentRepo) List(limit, offset int) ([]*entity.Adjustment, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, product_id, product_name, qty_changed, reason, adjusted_by, notes, created_at
		 FROM adjustments ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list adjustments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Adjustment
	for rows.Next() {
		var a entity.Adjustment
		if err := rows.Scan(&a.ID, &a.ProductID, &a.ProductName, &a.QuantityChanged,
			&a.Reason, &a.AdjustedBy, &a.Notes, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan adjustment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
