package dto

import "time"

// CreateProductRequest alta de producto en el catálogo.
type CreateProductRequest struct {
	SKU        string `json:"sku" validate:"required,max=40"`
	Name       string `json:"name" validate:"required,max=120"`
	CategoryID string `json:"category_id" validate:"omitempty,uuid4"`
	BasePrice  int64  `json:"base_price" validate:"gte=0"`
	Price      int64  `json:"price" validate:"gte=0"`
	Stock      int    `json:"stock" validate:"gte=0"`
	ExpiryDate string `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
	Supplier   string `json:"supplier" validate:"max=120"`
}

// UpdateProductRequest edición de producto. El stock no se edita por aquí,
// se mueve únicamente vía ventas y ajustes.
type UpdateProductRequest struct {
	Name       string `json:"name" validate:"required,max=120"`
	CategoryID string `json:"category_id" validate:"omitempty,uuid4"`
	BasePrice  int64  `json:"base_price" validate:"gte=0"`
	Price      int64  `json:"price" validate:"gte=0"`
	ExpiryDate string `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
	Supplier   string `json:"supplier" validate:"max=120"`
}

// ProductResponse representación de un producto.
type ProductResponse struct {
	ID         string     `json:"id"`
	SKU        string     `json:"sku"`
	Name       string     `json:"name"`
	CategoryID string     `json:"category_id,omitempty"`
	BasePrice  int64      `json:"base_price"`
	Price      int64      `json:"price"`
	Stock      int        `json:"stock"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	Supplier   string     `json:"supplier,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
