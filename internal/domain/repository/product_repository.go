package repository

import "github.com/jmontoya/spapos-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate y UpdateStock son las primitivas del Stock Ledger: solo deben
// usarse con un repositorio atado a una transacción.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// GetForUpdate obtiene el producto y bloquea la fila (SELECT ... FOR UPDATE).
	GetForUpdate(id string) (*entity.Product, error)
	// UpdateStock fija el stock absoluto de un producto (la verificación de
	// no-negatividad ocurre en el Stock Ledger antes de llamar).
	UpdateStock(id string, stock int) error
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
