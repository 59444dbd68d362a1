package inventory

import (
	"context"

	"github.com/jmontoya/spapos-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repositorios atados a una misma transacción.
// El ajuste de stock y el gasto automático por pérdida deben persistirse juntos.
type TxRunner interface {
	RunAdjustment(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		adjustmentRepo repository.AdjustmentRepository,
		expenseRepo repository.ExpenseRepository,
	) error) error
}
