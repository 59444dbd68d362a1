package sales

import (
	"context"

	"github.com/jmontoya/spapos-api/internal/domain"
	"github.com/jmontoya/spapos-api/internal/domain/entity"
)

// GetReceiptPDF genera el recibo PDF de una venta con los datos de la tienda.
func (uc *UseCase) GetReceiptPDF(ctx context.Context, saleID string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrSaleNotFound
	}

	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.Settings{CompanyName: "SPA POS"}
	}

	return uc.receipts.Generate(sale, settings)
}
