package dto

import "time"

// CategoryRequest alta o edición de categoría.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=80"`
	Description string `json:"description" validate:"max=300"`
}

// CategoryResponse representación de una categoría.
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CustomerRequest alta o edición de cliente.
type CustomerRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Phone   string `json:"phone" validate:"max=30"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address" validate:"max=200"`
}

// CustomerResponse representación de un cliente.
type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// TherapistRequest alta o edición de terapeuta.
type TherapistRequest struct {
	Name          string `json:"name" validate:"required,max=120"`
	FeePercentage int64  `json:"fee_percentage" validate:"gte=0,lte=100"`
	IsActive      *bool  `json:"is_active"`
}

// TherapistResponse representación de un terapeuta.
type TherapistResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	FeePercentage int64  `json:"fee_percentage"`
	IsActive      bool   `json:"is_active"`
}

// VoucherRequest alta o edición de voucher.
type VoucherRequest struct {
	Code        string `json:"code" validate:"required,max=40"`
	Description string `json:"description" validate:"max=200"`
	Type        string `json:"type" validate:"required,oneof=percentage fixed"`
	Value       int64  `json:"value" validate:"gt=0"`
	IsActive    *bool  `json:"is_active"`
}

// VoucherResponse representación de un voucher.
type VoucherResponse struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"`
	Value       int64  `json:"value"`
	IsActive    bool   `json:"is_active"`
}

// ExpenseRequest alta de gasto manual.
type ExpenseRequest struct {
	Description string `json:"description" validate:"required,max=200"`
	Category    string `json:"category" validate:"required,max=60"`
	Amount      int64  `json:"amount" validate:"gt=0"`
}

// ExpenseResponse representación de un gasto.
type ExpenseResponse struct {
	ID            string    `json:"id"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Amount        int64     `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
	CreatedByName string    `json:"created_by_name,omitempty"`
}

// SettingsRequest actualización del documento único de configuración.
type SettingsRequest struct {
	CompanyName      string `json:"company_name" validate:"required,max=120"`
	Address          string `json:"address" validate:"max=200"`
	ExpiringSoonDays int    `json:"expiring_soon_days" validate:"gte=1,lte=365"`
}

// SettingsResponse representación de la configuración.
type SettingsResponse struct {
	CompanyName      string    `json:"company_name"`
	Address          string    `json:"address,omitempty"`
	ExpiringSoonDays int       `json:"expiring_soon_days"`
	UpdatedAt        time.Time `json:"updated_at"`
}
