package sales

import (
	"context"

	"github.com/jmontoya/spapos-api/internal/domain/entity"
	"github.com/jmontoya/spapos-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repositorios atados a una misma transacción.
// El movimiento de stock y la escritura de la venta deben confirmarse juntos:
// si cualquier paso falla, se hace rollback de todo.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// ReceiptGenerator genera el recibo PDF de una venta.
type ReceiptGenerator interface {
	Generate(sale *entity.Sale, settings *entity.Settings) ([]byte, error)
}
