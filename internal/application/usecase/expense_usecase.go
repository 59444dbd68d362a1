package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jmontoya/spapos-api/internal/application/dto"
	"github.com/jmontoya/spapos-api/internal/domain"
	"github.com/jmontoya/spapos-api/internal/domain/entity"
	"github.com/jmontoya/spapos-api/internal/domain/repository"
	"github.com/jmontoya/spapos-api/pkg/validate"
)

// ExpenseUseCase gastos manuales del negocio. Los gastos por pérdida de stock
// los genera el caso de uso de ajustes, no este.
type ExpenseUseCase struct {
	expenseRepo repository.ExpenseRepository
}

func NewExpenseUseCase(expenseRepo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{expenseRepo: expenseRepo}
}

func (uc *ExpenseUseCase) Create(createdBy string, in dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	expense := &entity.Expense{
		ID:          uuid.New().String(),
		Description: in.Description,
		Amount:      decimal.NewFromInt(in.Amount),
		Category:    in.Category,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now(),
	}
	if err := uc.expenseRepo.Create(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

func (uc *ExpenseUseCase) List(page dto.PageRequest) ([]dto.ExpenseResponse, error) {
	page.Normalize()
	expenses, err := uc.expenseRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, *toExpenseResponse(e))
	}
	return out, nil
}

func (uc *ExpenseUseCase) Delete(id string) error {
	expense, err := uc.expenseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if expense == nil {
		return domain.ErrNotFound
	}
	return uc.expenseRepo.Delete(id)
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:            e.ID,
		Description:   e.Description,
		Category:      e.Category,
		Amount:        e.Amount.IntPart(),
		CreatedAt:     e.CreatedAt,
		CreatedByName: e.CreatedByName,
	}
}
