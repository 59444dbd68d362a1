package dto

import "time"

// CreateAdjustmentRequest ajuste manual de stock.
type CreateAdjustmentRequest struct {
	ProductID  string `json:"product_id" validate:"required,uuid4"`
	QtyChanged int    `json:"qty_changed" validate:"required"`
	Reason     string `json:"reason" validate:"required"`
	Notes      string `json:"notes" validate:"max=300"`
}

// AdjustmentResponse ajuste registrado, con el stock resultante.
type AdjustmentResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name,omitempty"`
	QtyChanged  int       `json:"qty_changed"`
	Reason      string    `json:"reason"`
	Notes       string    `json:"notes,omitempty"`
	NewStock    int       `json:"new_stock"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}
