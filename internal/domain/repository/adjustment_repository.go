package repository

import "github.com/jmontoya/spapos-api/internal/domain/entity"

// AdjustmentRepository define el puerto de persistencia para los ajustes de stock.
type AdjustmentRepository interface {
	Create(adjustment *entity.Adjustment) error
	List(limit, offset int) ([]*entity.Adjustment, error)
}
