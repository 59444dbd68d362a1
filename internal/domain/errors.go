package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrUsernameTaken      = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrEmptyCart          = errors.New("la venta no tiene ítems")
	ErrProductNotFound    = errors.New("producto no encontrado")
	ErrCustomerNotFound   = errors.New("cliente no encontrado")
	ErrTherapistNotFound  = errors.New("terapeuta no encontrado")
	ErrVoucherNotFound    = errors.New("voucher no encontrado o inactivo")
	ErrSaleNotFound       = errors.New("venta no encontrada")
	ErrSalePaid           = errors.New("no se puede editar una venta pagada")
	ErrSaleAlreadyPaid    = errors.New("la venta ya fue pagada")
	ErrSaleRetracted      = errors.New("la venta ya fue retractada")
	ErrNegativeStock      = errors.New("el stock no puede quedar negativo")
)

// InsufficientStockError indica que un producto no tiene stock suficiente.
// Lleva el nombre del producto y las cantidades para que el cajero pueda actuar.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s: disponible %d, solicitado %d",
		e.ProductName, e.Available, e.Requested)
}

// IsInsufficientStock reporta si err es un InsufficientStockError.
func IsInsufficientStock(err error) bool {
	var ise *InsufficientStockError
	return errors.As(err, &ise)
}
