package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Therapist representa un terapeuta del spa asociable a una venta.
type Therapist struct {
	ID            string
	Name          string
	FeePercentage decimal.Decimal // 0..100
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
