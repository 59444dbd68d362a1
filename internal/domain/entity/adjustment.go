package entity

import "time"

// Razones válidas de ajuste de stock.
const (
	AdjustmentReasonDamaged    = "Damaged"
	AdjustmentReasonLost       = "Lost"
	AdjustmentReasonExpired    = "Expired"
	AdjustmentReasonStockCount = "Stock Count Correction"
	AdjustmentReasonInitial    = "Initial Stock"
)

// AdjustmentReasons lista las razones aceptadas.
var AdjustmentReasons = []string{
	AdjustmentReasonDamaged,
	AdjustmentReasonLost,
	AdjustmentReasonExpired,
	AdjustmentReasonStockCount,
	AdjustmentReasonInitial,
}

// IsLossReason reporta si la razón representa una pérdida de inventario
// (genera un gasto automático cuando la cantidad ajustada es negativa).
func IsLossReason(reason string) bool {
	switch reason {
	case AdjustmentReasonDamaged, AdjustmentReasonLost, AdjustmentReasonExpired:
		return true
	}
	return false
}

// IsValidAdjustmentReason reporta si la razón pertenece al enum.
func IsValidAdjustmentReason(reason string) bool {
	for _, r := range AdjustmentReasons {
		if r == reason {
			return true
		}
	}
	return false
}

// Adjustment registra una corrección manual de stock.
// ProductName es snapshot del nombre al momento del ajuste.
type Adjustment struct {
	ID              string
	ProductID       string
	ProductName     string
	QuantityChanged int // positivo o negativo
	Reason          string
	AdjustedBy      string
	Notes           string
	CreatedAt       time.Time
}
