package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Stock es la cantidad disponible; solo muta vía el Stock Ledger (ventas,
// retractaciones, conciliación de edición y ajustes manuales). Invariante: Stock >= 0.
type Product struct {
	ID         string
	SKU        string // código único
	Name       string
	CategoryID string
	BasePrice  decimal.Decimal // costo de adquisición
	Price      decimal.Decimal // precio de venta
	Stock      int
	ExpiryDate *time.Time
	Supplier   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
