package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago.
const (
	PaymentMethodCash    = "Cash"
	PaymentMethodCard    = "Card"
	PaymentMethodDigital = "Digital"
	PaymentMethodPending = "Pending" // venta Unpaid: el método se fija al pagar
)

// Estados de pago.
const (
	PaymentStatusPaid   = "Paid"
	PaymentStatusUnpaid = "Unpaid"
)

// Estados de la venta.
const (
	SaleStatusCompleted = "Completed"
	SaleStatusRetracted = "Retracted"
)

// SaleItem es una línea de la venta. Name, Price y BasePrice son snapshots
// tomados del producto al momento de la venta: no cambian aunque el producto
// cambie después (exactitud histórica).
type SaleItem struct {
	ProductID string
	Name      string
	BasePrice decimal.Decimal
	Price     decimal.Decimal
	Quantity  int
	Note      string
}

// AdditionalFee es un cargo adicional de la venta (servicio, propina, etc.).
type AdditionalFee struct {
	Amount           decimal.Decimal
	Description      string
	IncludeOnInvoice bool
}

// TransportationFee es el cargo por transporte/entrega.
type TransportationFee struct {
	Amount           decimal.Decimal
	IncludeOnInvoice bool
}

// Sale representa una transacción de venta con su desglose de precios y su
// ciclo de vida: se crea Completed (Paid o Unpaid), una Unpaid puede editarse
// o pagarse, y cualquier Completed puede retractarse (terminal).
type Sale struct {
	ID                        string
	CashierID                 string
	CustomerID                *string
	TherapistID               *string
	IncludeTherapistOnInvoice bool
	Items                     []SaleItem
	Subtotal                  decimal.Decimal
	Discount                  decimal.Decimal
	VoucherCode               string
	AdditionalFee             AdditionalFee
	TransportationFee         TransportationFee
	TotalAmount               decimal.Decimal
	PaymentMethod             string // Cash | Card | Digital | Pending
	PaymentStatus             string // Paid | Unpaid
	Status                    string // Completed | Retracted
	Notes                     string
	CreatedAt                 time.Time
	UpdatedAt                 time.Time

	// Nombres resueltos en lecturas (JOIN); no se persisten en sales.
	CashierName   string
	CustomerName  string
	CustomerPhone string
	TherapistName string
}

// IsPaid reporta si la venta ya fue pagada.
func (s *Sale) IsPaid() bool { return s.PaymentStatus == PaymentStatusPaid }

// IsRetracted reporta si la venta fue retractada.
func (s *Sale) IsRetracted() bool { return s.Status == SaleStatusRetracted }
