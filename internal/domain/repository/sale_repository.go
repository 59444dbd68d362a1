package repository

import "github.com/jmontoya/spapos-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale y sus ítems.
type SaleRepository interface {
	// Create persiste cabecera e ítems (mismo Querier, misma tx).
	Create(sale *entity.Sale) error
	// GetByID devuelve la venta con ítems y nombres resueltos (cashier/cliente/terapeuta).
	GetByID(id string) (*entity.Sale, error)
	// List devuelve cabeceras (sin ítems) con nombres resueltos, más recientes primero.
	List(limit, offset int) ([]*entity.Sale, error)
	// Update reescribe la cabecera y reemplaza los ítems (edición de venta Unpaid).
	Update(sale *entity.Sale) error
	// MarkPaid marca la venta como pagada con el método dado.
	// Devuelve false si la venta ya estaba pagada (guard condicional en el UPDATE).
	MarkPaid(saleID, paymentMethod string) (bool, error)
	// Retract marca la venta como retractada.
	// Devuelve false si ya estaba retractada (guard idempotente contra doble restauración).
	Retract(saleID string) (bool, error)
}
