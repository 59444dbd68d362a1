package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jmontoya/spapos-api/internal/application/dto"
	"github.com/jmontoya/spapos-api/internal/domain"
	"github.com/jmontoya/spapos-api/internal/domain/entity"
	"github.com/jmontoya/spapos-api/internal/domain/repository"
	"github.com/jmontoya/spapos-api/pkg/logger"
	"github.com/jmontoya/spapos-api/pkg/metrics"
	"github.com/jmontoya/spapos-api/pkg/validate"
)

// UseCase maneja los ajustes manuales de stock.
type UseCase struct {
	txRunner       TxRunner
	adjustmentRepo repository.AdjustmentRepository
	log            *logger.Logger
}

// NewUseCase construye el caso de uso de ajustes.
func NewUseCase(txRunner TxRunner, adjustmentRepo repository.AdjustmentRepository, log *logger.Logger) *UseCase {
	return &UseCase{txRunner: txRunner, adjustmentRepo: adjustmentRepo, log: log}
}

// CreateAdjustment aplica un ajuste manual de stock. Si la razón es una
// pérdida (Damaged, Lost, Expired) y la cantidad es negativa, registra en la
// misma transacción un gasto automático por |cantidad| * costo de adquisición.
func (uc *UseCase) CreateAdjustment(ctx context.Context, userID string, in dto.CreateAdjustmentRequest) (*dto.AdjustmentResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if in.QtyChanged == 0 {
		return nil, fmt.Errorf("%w: la cantidad ajustada no puede ser cero", domain.ErrInvalidInput)
	}
	if !entity.IsValidAdjustmentReason(in.Reason) {
		return nil, fmt.Errorf("%w: razón de ajuste desconocida %q", domain.ErrInvalidInput, in.Reason)
	}

	now := time.Now()
	adjustment := &entity.Adjustment{
		ID:              uuid.New().String(),
		ProductID:       in.ProductID,
		QuantityChanged: in.QtyChanged,
		Reason:          in.Reason,
		AdjustedBy:      userID,
		Notes:           in.Notes,
		CreatedAt:       now,
	}
	var newStock int

	err := uc.txRunner.RunAdjustment(ctx, func(
		productRepo repository.ProductRepository,
		adjustmentRepo repository.AdjustmentRepository,
		expenseRepo repository.ExpenseRepository,
	) error {
		product, err := Adjust(productRepo, in.ProductID, in.QtyChanged)
		if err != nil {
			return err
		}
		newStock = product.Stock
		adjustment.ProductName = product.Name

		if err := adjustmentRepo.Create(adjustment); err != nil {
			return err
		}

		// Pérdida de inventario: gasto automático valorado al costo.
		if in.QtyChanged < 0 && entity.IsLossReason(in.Reason) {
			lost := decimal.NewFromInt(int64(-in.QtyChanged))
			expense := &entity.Expense{
				ID:          uuid.New().String(),
				Description: fmt.Sprintf("Stock loss: %s x%d (%s)", product.Name, -in.QtyChanged, in.Reason),
				Amount:      product.BasePrice.Mul(lost),
				Category:    entity.ExpenseCategoryStockLoss,
				CreatedBy:   userID,
				CreatedAt:   now,
			}
			if err := expenseRepo.Create(expense); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordAdjustment(in.Reason)
	uc.log.Info().
		Str("product_id", in.ProductID).
		Int("qty_changed", in.QtyChanged).
		Str("reason", in.Reason).
		Int("new_stock", newStock).
		Msg("stock ajustado")

	return &dto.AdjustmentResponse{
		ID:          adjustment.ID,
		ProductID:   adjustment.ProductID,
		ProductName: adjustment.ProductName,
		QtyChanged:  adjustment.QuantityChanged,
		Reason:      adjustment.Reason,
		Notes:       adjustment.Notes,
		NewStock:    newStock,
		CreatedBy:   adjustment.AdjustedBy,
		CreatedAt:   adjustment.CreatedAt,
	}, nil
}

// ListAdjustments devuelve el historial de ajustes, más recientes primero.
func (uc *UseCase) ListAdjustments(ctx context.Context, page dto.PageRequest) ([]dto.AdjustmentResponse, error) {
	page.Normalize()
	adjustments, err := uc.adjustmentRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AdjustmentResponse, 0, len(adjustments))
	for _, a := range adjustments {
		out = append(out, dto.AdjustmentResponse{
			ID:          a.ID,
			ProductID:   a.ProductID,
			ProductName: a.ProductName,
			QtyChanged:  a.QuantityChanged,
			Reason:      a.Reason,
			Notes:       a.Notes,
			CreatedBy:   a.AdjustedBy,
			CreatedAt:   a.CreatedAt,
		})
	}
	return out, nil
}
