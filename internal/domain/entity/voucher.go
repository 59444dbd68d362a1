package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de voucher.
const (
	VoucherTypePercentage = "percentage"
	VoucherTypeFixed      = "fixed"
)

// Voucher representa un cupón de descuento. Code se normaliza a mayúsculas.
// La venta solo guarda el código denormalizado; no hay referencia viva.
type Voucher struct {
	ID          string
	Code        string
	Description string
	Type        string // percentage | fixed
	Value       decimal.Decimal
	IsActive    bool
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
