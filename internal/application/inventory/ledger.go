package inventory

import (
	"fmt"

	"github.com/jmontoya/spapos-api/internal/domain"
	"github.com/jmontoya/spapos-api/internal/domain/entity"
	"github.com/jmontoya/spapos-api/internal/domain/repository"
)

// Primitivas del libro de stock. Todas esperan un ProductRepository atado a
// una transacción: GetForUpdate bloquea la fila hasta el Commit o Rollback,
// de modo que la lectura del stock y su escritura son atómicas frente a
// ventas concurrentes del mismo producto.

// Decrement descuenta qty unidades del stock de un producto (salida por venta).
// Falla con InsufficientStockError si el stock disponible no alcanza.
func Decrement(products repository.ProductRepository, productID string, qty int) (*entity.Product, error) {
	product, err := products.GetForUpdate(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if product.Stock < qty {
		return nil, &domain.InsufficientStockError{
			ProductID:   product.ID,
			ProductName: product.Name,
			Available:   product.Stock,
			Requested:   qty,
		}
	}
	product.Stock -= qty
	if err := products.UpdateStock(product.ID, product.Stock); err != nil {
		return nil, fmt.Errorf("update stock: %w", err)
	}
	return product, nil
}

// Restore devuelve qty unidades al stock de un producto (retractación o
// conciliación de edición).
func Restore(products repository.ProductRepository, productID string, qty int) (*entity.Product, error) {
	product, err := products.GetForUpdate(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	product.Stock += qty
	if err := products.UpdateStock(product.ID, product.Stock); err != nil {
		return nil, fmt.Errorf("update stock: %w", err)
	}
	return product, nil
}

// Adjust aplica un delta manual (positivo o negativo) al stock de un producto.
// Rechaza el ajuste si el stock resultante quedaría negativo.
func Adjust(products repository.ProductRepository, productID string, delta int) (*entity.Product, error) {
	product, err := products.GetForUpdate(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	newStock := product.Stock + delta
	if newStock < 0 {
		return nil, fmt.Errorf("%w: %s tiene %d, ajuste de %d", domain.ErrNegativeStock,
			product.Name, product.Stock, delta)
	}
	product.Stock = newStock
	if err := products.UpdateStock(product.ID, product.Stock); err != nil {
		return nil, fmt.Errorf("update stock: %w", err)
	}
	return product, nil
}
