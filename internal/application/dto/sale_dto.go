package dto

import "time"

// SaleItemRequest línea del carrito. El precio efectivo lo decide el servidor
// a partir del catálogo, no el cliente.
type SaleItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid4"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
	Note      string `json:"note" validate:"max=200"`
}

// AdditionalFeeRequest recargo adicional declarado por el cajero.
type AdditionalFeeRequest struct {
	Amount           int64  `json:"amount" validate:"gte=0"`
	Description      string `json:"description" validate:"max=120"`
	IncludeOnInvoice bool   `json:"include_on_invoice"`
}

// TransportationFeeRequest recargo de transporte.
type TransportationFeeRequest struct {
	Amount           int64 `json:"amount" validate:"gte=0"`
	IncludeOnInvoice bool  `json:"include_on_invoice"`
}

// CreateSaleRequest creación de una venta.
type CreateSaleRequest struct {
	CustomerID                string                    `json:"customer_id" validate:"omitempty,uuid4"`
	TherapistID               string                    `json:"therapist_id" validate:"omitempty,uuid4"`
	IncludeTherapistOnInvoice bool                      `json:"include_therapist_on_invoice"`
	Items                     []SaleItemRequest         `json:"items" validate:"required,min=1,dive"`
	VoucherCode               string                    `json:"voucher_code" validate:"max=40"`
	PaymentStatus             string                    `json:"payment_status" validate:"required,oneof=Paid Unpaid"`
	PaymentMethod             string                    `json:"payment_method" validate:"omitempty,oneof=Cash Card Digital"`
	AdditionalFee             *AdditionalFeeRequest     `json:"additional_fee"`
	TransportationFee         *TransportationFeeRequest `json:"transportation_fee"`
	Notes                     string                    `json:"notes" validate:"max=500"`
}

// UpdateSaleRequest edición de una venta no pagada.
type UpdateSaleRequest struct {
	CustomerID                string                    `json:"customer_id" validate:"omitempty,uuid4"`
	TherapistID               string                    `json:"therapist_id" validate:"omitempty,uuid4"`
	IncludeTherapistOnInvoice bool                      `json:"include_therapist_on_invoice"`
	Items                     []SaleItemRequest         `json:"items" validate:"required,min=1,dive"`
	VoucherCode               string                    `json:"voucher_code" validate:"max=40"`
	AdditionalFee             *AdditionalFeeRequest     `json:"additional_fee"`
	TransportationFee         *TransportationFeeRequest `json:"transportation_fee"`
	Notes                     string                    `json:"notes" validate:"max=500"`
}

// MarkPaidRequest cobro de una venta pendiente.
type MarkPaidRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,oneof=Cash Card Digital"`
}

// SaleItemResponse línea de venta con snapshot de precios.
type SaleItemResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	BasePrice int64  `json:"base_price"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Note      string `json:"note,omitempty"`
}

// FeeResponse recargo tal como quedó registrado.
type FeeResponse struct {
	Amount           int64  `json:"amount"`
	Description      string `json:"description,omitempty"`
	IncludeOnInvoice bool   `json:"include_on_invoice"`
}

// SaleResponse representación completa de una venta.
type SaleResponse struct {
	ID                string             `json:"id"`
	CashierID         string             `json:"cashier_id"`
	CashierName       string             `json:"cashier_name,omitempty"`
	CustomerID        string             `json:"customer_id"`
	CustomerName      string             `json:"customer_name,omitempty"`
	CustomerPhone     string             `json:"customer_phone,omitempty"`
	TherapistID       string             `json:"therapist_id,omitempty"`
	TherapistName     string             `json:"therapist_name,omitempty"`
	Items             []SaleItemResponse `json:"items,omitempty"`
	Subtotal          int64              `json:"subtotal"`
	Discount          int64              `json:"discount"`
	VoucherCode       string             `json:"voucher_code,omitempty"`
	AdditionalFee     *FeeResponse       `json:"additional_fee,omitempty"`
	TransportationFee *FeeResponse       `json:"transportation_fee,omitempty"`
	TotalAmount       int64              `json:"total_amount"`
	PaymentStatus     string             `json:"payment_status"`
	PaymentMethod     string             `json:"payment_method"`
	Status            string             `json:"status"`
	Notes             string             `json:"notes,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}
