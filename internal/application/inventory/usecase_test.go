package inventory_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmontoya/spapos-api/internal/application/dto"
	"github.com/jmontoya/spapos-api/internal/application/inventory"
	"github.com/jmontoya/spapos-api/internal/domain"
	"github.com/jmontoya/spapos-api/internal/domain/entity"
	"github.com/jmontoya/spapos-api/internal/domain/repository"
	"github.com/jmontoya/spapos-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error { return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}
func (r *fakeProductRepo) UpdateStock(id string, stock int) error {
	if p, ok := r.byID[id]; ok {
		p.Stock = stock
	}
	return nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error                    { return nil }
func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Delete(id string) error                            { return nil }

type fakeAdjustmentRepo struct {
	created []*entity.Adjustment
}

func (r *fakeAdjustmentRepo) Create(a *entity.Adjustment) error {
	cp := *a
	r.created = append(r.created, &cp)
	return nil
}
func (r *fakeAdjustmentRepo) List(limit, offset int) ([]*entity.Adjustment, error) {
	return r.created, nil
}

type fakeExpenseRepo struct {
	created []*entity.Expense
}

func (r *fakeExpenseRepo) Create(e *entity.Expense) error {
	cp := *e
	r.created = append(r.created, &cp)
	return nil
}
func (r *fakeExpenseRepo) GetByID(id string) (*entity.Expense, error)        { return nil, nil }
func (r *fakeExpenseRepo) List(limit, offset int) ([]*entity.Expense, error) { return nil, nil }
func (r *fakeExpenseRepo) Delete(id string) error                            { return nil }

type fakeTxRunner struct {
	products    *fakeProductRepo
	adjustments *fakeAdjustmentRepo
	expenses    *fakeExpenseRepo
}

func (tx *fakeTxRunner) RunAdjustment(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	adjustmentRepo repository.AdjustmentRepository,
	expenseRepo repository.ExpenseRepository,
) error) error {
	stockBefore := make(map[string]int)
	for id, p := range tx.products.byID {
		stockBefore[id] = p.Stock
	}
	adjBefore := len(tx.adjustments.created)
	expBefore := len(tx.expenses.created)
	if err := fn(tx.products, tx.adjustments, tx.expenses); err != nil {
		// rollback
		for id, stock := range stockBefore {
			tx.products.byID[id].Stock = stock
		}
		tx.adjustments.created = tx.adjustments.created[:adjBefore]
		tx.expenses.created = tx.expenses.created[:expBefore]
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Entorno
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	uc          *inventory.UseCase
	products    *fakeProductRepo
	adjustments *fakeAdjustmentRepo
	expenses    *fakeExpenseRepo
	userID      string
	productID   string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		userID:    uuid.NewString(),
		productID: uuid.NewString(),
	}
	env.products = &fakeProductRepo{byID: map[string]*entity.Product{
		env.productID: {
			ID: env.productID, SKU: "CREMA-01", Name: "Crema corporal",
			BasePrice: decimal.NewFromInt(15000), Price: decimal.NewFromInt(35000), Stock: 8,
		},
	}}
	env.adjustments = &fakeAdjustmentRepo{}
	env.expenses = &fakeExpenseRepo{}

	log := logger.New(logger.Config{Env: "development", Level: "error"})
	env.uc = inventory.NewUseCase(
		&fakeTxRunner{products: env.products, adjustments: env.adjustments, expenses: env.expenses},
		env.adjustments, log,
	)
	return env
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: un ajuste positivo (conteo físico) sube el stock sin generar gasto.
func TestCreateAdjustment_PositivoSinGasto(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.uc.CreateAdjustment(context.Background(), env.userID, dto.CreateAdjustmentRequest{
		ProductID:  env.productID,
		QtyChanged: 4,
		Reason:     entity.AdjustmentReasonStockCount,
	})
	require.NoError(t, err)

	assert.Equal(t, 12, resp.NewStock)
	assert.Equal(t, "Crema corporal", resp.ProductName)
	assert.Len(t, env.adjustments.created, 1)
	assert.Empty(t, env.expenses.created, "un ajuste positivo no genera gasto")
}

// Caso 2: una pérdida (Damaged con cantidad negativa) genera un gasto
// automático de |cantidad| * costo de adquisición en la misma transacción.
func TestCreateAdjustment_PerdidaGeneraGasto(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.uc.CreateAdjustment(context.Background(), env.userID, dto.CreateAdjustmentRequest{
		ProductID:  env.productID,
		QtyChanged: -3,
		Reason:     entity.AdjustmentReasonDamaged,
		Notes:      "caja mojada",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.NewStock)

	require.Len(t, env.expenses.created, 1)
	expense := env.expenses.created[0]
	assert.Equal(t, entity.ExpenseCategoryStockLoss, expense.Category)
	assert.True(t, expense.Amount.Equal(decimal.NewFromInt(45000)), // 3 * 15000
		"gasto esperado 45000, obtenido %s", expense.Amount)
	assert.Equal(t, env.userID, expense.CreatedBy)
}

// Caso 3: una corrección de conteo negativa no es pérdida, no genera gasto.
func TestCreateAdjustment_ConteoNegativoSinGasto(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.uc.CreateAdjustment(context.Background(), env.userID, dto.CreateAdjustmentRequest{
		ProductID:  env.productID,
		QtyChanged: -2,
		Reason:     entity.AdjustmentReasonStockCount,
	})
	require.NoError(t, err)
	assert.Empty(t, env.expenses.created)
}

// Caso 4: un ajuste que dejaría el stock negativo se rechaza y nada persiste.
func TestCreateAdjustment_StockNegativoRechazado(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.uc.CreateAdjustment(context.Background(), env.userID, dto.CreateAdjustmentRequest{
		ProductID:  env.productID,
		QtyChanged: -20,
		Reason:     entity.AdjustmentReasonLost,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNegativeStock)
	assert.Equal(t, 8, env.products.byID[env.productID].Stock)
	assert.Empty(t, env.adjustments.created)
	assert.Empty(t, env.expenses.created)
}

// Caso 5: razón fuera del enum y cantidad cero se rechazan.
func TestCreateAdjustment_EntradaInvalida(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.uc.CreateAdjustment(context.Background(), env.userID, dto.CreateAdjustmentRequest{
		ProductID:  env.productID,
		QtyChanged: 1,
		Reason:     "Capricho",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = env.uc.CreateAdjustment(context.Background(), env.userID, dto.CreateAdjustmentRequest{
		ProductID:  env.productID,
		QtyChanged: 0,
		Reason:     entity.AdjustmentReasonDamaged,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Caso 6: producto inexistente.
func TestCreateAdjustment_ProductoInexistente(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.uc.CreateAdjustment(context.Background(), env.userID, dto.CreateAdjustmentRequest{
		ProductID:  uuid.NewString(),
		QtyChanged: 1,
		Reason:     entity.AdjustmentReasonInitial,
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
