package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categoría usada por los gastos generados automáticamente por ajustes de pérdida.
const ExpenseCategoryStockLoss = "Stock Loss"

// Expense representa un gasto del negocio (manual o generado por pérdida de stock).
type Expense struct {
	ID          string
	Description string
	Amount      decimal.Decimal
	Category    string
	CreatedBy   string
	CreatedAt   time.Time

	// Nombre del creador resuelto en lecturas (JOIN).
	CreatedByName string
}
