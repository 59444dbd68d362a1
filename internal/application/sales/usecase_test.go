package sales_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmontoya/spapos-api/internal/application/dto"
	"github.com/jmontoya/spapos-api/internal/application/sales"
	"github.com/jmontoya/spapos-api/internal/domain"
	"github.com/jmontoya/spapos-api/internal/domain/entity"
	"github.com/jmontoya/spapos-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Entorno de test
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	uc        *sales.UseCase
	products  *fakeProductRepo
	salesRepo *fakeSaleRepo

	cashierID   string
	customerID  string
	therapistID string
	productA    string
	productB    string
}

// newTestEnv monta el caso de uso con dos productos (A: stock 10 a 50000,
// B: stock 5 a 20000), un cliente, un terapeuta activo y un voucher DESC10
// de 10%.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		cashierID:   uuid.NewString(),
		customerID:  uuid.NewString(),
		therapistID: uuid.NewString(),
		productA:    uuid.NewString(),
		productB:    uuid.NewString(),
	}

	env.products = newFakeProductRepo(
		&entity.Product{
			ID: env.productA, SKU: "MASAJE-60", Name: "Masaje relajante 60min",
			BasePrice: decimal.NewFromInt(30000), Price: decimal.NewFromInt(50000), Stock: 10,
		},
		&entity.Product{
			ID: env.productB, SKU: "ACEITE-01", Name: "Aceite esencial",
			BasePrice: decimal.NewFromInt(8000), Price: decimal.NewFromInt(20000), Stock: 5,
		},
	)
	env.salesRepo = newFakeSaleRepo()

	customers := newFakeCustomerRepo(&entity.Customer{
		ID: env.customerID, Name: "Sari Dewi", Phone: "0812000111",
	})
	therapists := newFakeTherapistRepo(&entity.Therapist{
		ID: env.therapistID, Name: "Ayu", FeePercentage: decimal.NewFromInt(10), IsActive: true,
	})
	vouchers := newFakeVoucherRepo(
		&entity.Voucher{
			ID: uuid.NewString(), Code: "DESC10",
			Type: entity.VoucherTypePercentage, Value: decimal.NewFromInt(10), IsActive: true,
		},
		&entity.Voucher{
			ID: uuid.NewString(), Code: "VIEJO",
			Type: entity.VoucherTypeFixed, Value: decimal.NewFromInt(5000), IsActive: false,
		},
	)

	log := logger.New(logger.Config{Env: "development", Level: "error"})
	env.uc = sales.NewUseCase(
		&fakeTxRunner{products: env.products, sales: env.salesRepo},
		env.salesRepo, customers, therapists, vouchers,
		&fakeSettingsRepo{}, &fakeReceiptGenerator{}, log,
	)
	return env
}

func (env *testEnv) createSale(t *testing.T, req dto.CreateSaleRequest) *dto.SaleResponse {
	t.Helper()
	resp, err := env.uc.CreateSale(context.Background(), env.cashierID, req)
	require.NoError(t, err)
	require.NotNil(t, resp)
	return resp
}

func baseRequest(env *testEnv) dto.CreateSaleRequest {
	return dto.CreateSaleRequest{
		CustomerID:    env.customerID,
		Items:         []dto.SaleItemRequest{{ProductID: env.productA, Quantity: 2}},
		PaymentStatus: entity.PaymentStatusPaid,
		PaymentMethod: entity.PaymentMethodCash,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateSale
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: venta pagada descuenta stock y guarda snapshot de nombre y precios.
func TestCreateSale_DescuentaStockYGuardaSnapshot(t *testing.T) {
	env := newTestEnv(t)

	resp := env.createSale(t, baseRequest(env))

	assert.Equal(t, 8, env.products.stock(env.productA), "stock de A debe bajar de 10 a 8")
	assert.Equal(t, int64(100000), resp.Subtotal)
	assert.Equal(t, int64(100000), resp.TotalAmount)
	assert.Equal(t, entity.PaymentStatusPaid, resp.PaymentStatus)
	assert.Equal(t, entity.SaleStatusCompleted, resp.Status)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Masaje relajante 60min", resp.Items[0].Name)
	assert.Equal(t, int64(50000), resp.Items[0].Price)
	assert.Equal(t, int64(30000), resp.Items[0].BasePrice)
}

// Caso 2: una venta Unpaid también reserva stock y queda con método Pending.
func TestCreateSale_UnpaidReservaStock(t *testing.T) {
	env := newTestEnv(t)

	req := baseRequest(env)
	req.PaymentStatus = entity.PaymentStatusUnpaid
	req.PaymentMethod = ""
	resp := env.createSale(t, req)

	assert.Equal(t, 8, env.products.stock(env.productA))
	assert.Equal(t, entity.PaymentStatusUnpaid, resp.PaymentStatus)
	assert.Equal(t, entity.PaymentMethodPending, resp.PaymentMethod)
}

// Caso 3: sin stock suficiente la venta se rechaza completa y nada cambia,
// aunque otras líneas sí tuvieran stock.
func TestCreateSale_StockInsuficienteHaceRollback(t *testing.T) {
	env := newTestEnv(t)

	req := baseRequest(env)
	req.Items = []dto.SaleItemRequest{
		{ProductID: env.productA, Quantity: 2},
		{ProductID: env.productB, Quantity: 6}, // stock de B es 5
	}
	_, err := env.uc.CreateSale(context.Background(), env.cashierID, req)

	require.Error(t, err)
	assert.True(t, domain.IsInsufficientStock(err))
	assert.Equal(t, 10, env.products.stock(env.productA), "el rollback debe restaurar A")
	assert.Equal(t, 5, env.products.stock(env.productB))

	list, err := env.salesRepo.List(10, 0)
	require.NoError(t, err)
	assert.Empty(t, list, "no debe persistirse ninguna venta")
}

// Caso 4: voucher de porcentaje, fee adicional y transporte (desglose completo).
func TestCreateSale_VoucherPorcentajeConFees(t *testing.T) {
	env := newTestEnv(t)

	req := baseRequest(env)
	req.VoucherCode = "desc10" // se normaliza a mayúsculas
	req.TherapistID = env.therapistID
	req.AdditionalFee = &dto.AdditionalFeeRequest{Amount: 3000, Description: "Propina"}
	req.TransportationFee = &dto.TransportationFeeRequest{Amount: 2000}
	resp := env.createSale(t, req)

	// subtotal 100000, descuento 10000, total 90000 + 3000 + 2000
	assert.Equal(t, int64(100000), resp.Subtotal)
	assert.Equal(t, int64(10000), resp.Discount)
	assert.Equal(t, int64(95000), resp.TotalAmount)
	assert.Equal(t, "DESC10", resp.VoucherCode)
	assert.Equal(t, "Ayu", resp.TherapistName)
}

// Caso 5: voucher inactivo o inexistente rechaza la venta.
func TestCreateSale_VoucherInactivo(t *testing.T) {
	env := newTestEnv(t)

	req := baseRequest(env)
	req.VoucherCode = "VIEJO"
	_, err := env.uc.CreateSale(context.Background(), env.cashierID, req)
	assert.ErrorIs(t, err, domain.ErrVoucherNotFound)

	req.VoucherCode = "NOEXISTE"
	_, err = env.uc.CreateSale(context.Background(), env.cashierID, req)
	assert.ErrorIs(t, err, domain.ErrVoucherNotFound)
}

// Caso 6: cliente inexistente.
func TestCreateSale_ClienteInexistente(t *testing.T) {
	env := newTestEnv(t)

	req := baseRequest(env)
	req.CustomerID = uuid.NewString()
	_, err := env.uc.CreateSale(context.Background(), env.cashierID, req)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

// Caso 7: venta de mostrador, sin cliente asociado. Debe crearse igual,
// descontar stock y dejar los campos de cliente vacíos.
func TestCreateSale_SinClienteEsVentaDeMostrador(t *testing.T) {
	env := newTestEnv(t)

	req := baseRequest(env)
	req.CustomerID = ""
	resp := env.createSale(t, req)

	assert.Equal(t, 8, env.products.stock(env.productA))
	assert.Empty(t, resp.CustomerID)
	assert.Empty(t, resp.CustomerName)
	assert.Empty(t, resp.CustomerPhone)
	assert.Equal(t, int64(100000), resp.TotalAmount)
}

// Caso 8: carrito vacío no pasa la validación.
func TestCreateSale_CarritoVacio(t *testing.T) {
	env := newTestEnv(t)

	req := baseRequest(env)
	req.Items = nil
	_, err := env.uc.CreateSale(context.Background(), env.cashierID, req)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateSale
// ──────────────────────────────────────────────────────────────────────────────

// Caso 9: la edición concilia por deltas: subir cantidad de A y agregar B
// descuenta solo la diferencia; el snapshot de A no cambia aunque el precio
// de catálogo haya cambiado entre revisiones.
func TestUpdateSale_ConciliaDeltasYConservaSnapshot(t *testing.T) {
	env := newTestEnv(t)

	req := baseRequest(env)
	req.PaymentStatus = entity.PaymentStatusUnpaid
	req.PaymentMethod = ""
	created := env.createSale(t, req) // A x2, stock A = 8

	// Sube el precio de catálogo de A después de la venta.
	productA, err := env.products.GetByID(env.productA)
	require.NoError(t, err)
	productA.Price = decimal.NewFromInt(60000)
	require.NoError(t, env.products.Update(productA))

	upd := dto.UpdateSaleRequest{
		CustomerID: env.customerID,
		Items: []dto.SaleItemRequest{
			{ProductID: env.productA, Quantity: 3},
			{ProductID: env.productB, Quantity: 1},
		},
	}
	resp, err := env.uc.UpdateSale(context.Background(), created.ID, upd)
	require.NoError(t, err)

	assert.Equal(t, 7, env.products.stock(env.productA), "delta de A es -1")
	assert.Equal(t, 4, env.products.stock(env.productB), "B es línea nueva, -1")

	// A conserva el precio snapshot 50000; B toma snapshot nuevo.
	require.Len(t, resp.Items, 2)
	assert.Equal(t, int64(50000), resp.Items[0].Price, "el snapshot de A no se re-toma")
	assert.Equal(t, int64(20000), resp.Items[1].Price)
	assert.Equal(t, int64(170000), resp.Subtotal) // 3*50000 + 1*20000
}

// Caso 10: quitar un producto restaura su stock completo.
func TestUpdateSale_QuitarProductoRestauraStock(t *testing.T) {
	env := newTestEnv(t)

	req := baseRequest(env)
	req.PaymentStatus = entity.PaymentStatusUnpaid
	req.PaymentMethod = ""
	req.Items = []dto.SaleItemRequest{
		{ProductID: env.productA, Quantity: 2},
		{ProductID: env.productB, Quantity: 3},
	}
	created := env.createSale(t, req) // A=8, B=2

	upd := dto.UpdateSaleRequest{
		CustomerID: env.customerID,
		Items:      []dto.SaleItemRequest{{ProductID: env.productA, Quantity: 2}},
	}
	_, err := env.uc.UpdateSale(context.Background(), created.ID, upd)
	require.NoError(t, err)

	assert.Equal(t, 8, env.products.stock(env.productA))
	assert.Equal(t, 5, env.products.stock(env.productB), "B debe volver a 5")
}

// Caso 11: una venta pagada no se edita.
func TestUpdateSale_VentaPagadaNoSeEdita(t *testing.T) {
	env := newTestEnv(t)

	created := env.createSale(t, baseRequest(env)) // Paid

	upd := dto.UpdateSaleRequest{
		CustomerID: env.customerID,
		Items:      []dto.SaleItemRequest{{ProductID: env.productA, Quantity: 1}},
	}
	_, err := env.uc.UpdateSale(context.Background(), created.ID, upd)
	assert.ErrorIs(t, err, domain.ErrSalePaid)
	assert.Equal(t, 8, env.products.stock(env.productA), "el stock no debe moverse")
}

// Caso 12: si el delta de la edición excede el stock, rollback completo.
func TestUpdateSale_DeltaSinStockHaceRollback(t *testing.T) {
	env := newTestEnv(t)

	req := baseRequest(env)
	req.PaymentStatus = entity.PaymentStatusUnpaid
	req.PaymentMethod = ""
	created := env.createSale(t, req) // A x2, stock 8

	upd := dto.UpdateSaleRequest{
		CustomerID: env.customerID,
		Items:      []dto.SaleItemRequest{{ProductID: env.productA, Quantity: 20}},
	}
	_, err := env.uc.UpdateSale(context.Background(), created.ID, upd)

	require.Error(t, err)
	assert.True(t, domain.IsInsufficientStock(err))
	assert.Equal(t, 8, env.products.stock(env.productA))

	unchanged, err := env.uc.GetSale(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, unchanged.Items, 1)
	assert.Equal(t, 2, unchanged.Items[0].Quantity, "la venta conserva su revisión anterior")
}

// Caso 13: la edición puede desasociar al cliente (queda como venta de
// mostrador).
func TestUpdateSale_QuitarClienteLaDejaComoMostrador(t *testing.T) {
	env := newTestEnv(t)

	req := baseRequest(env)
	req.PaymentStatus = entity.PaymentStatusUnpaid
	req.PaymentMethod = ""
	created := env.createSale(t, req)
	require.Equal(t, env.customerID, created.CustomerID)

	upd := dto.UpdateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: env.productA, Quantity: 2}},
	}
	resp, err := env.uc.UpdateSale(context.Background(), created.ID, upd)
	require.NoError(t, err)

	assert.Empty(t, resp.CustomerID)
	assert.Empty(t, resp.CustomerName)
	assert.Empty(t, resp.CustomerPhone)
}

// ──────────────────────────────────────────────────────────────────────────────
// MarkPaid / RetractSale
// ──────────────────────────────────────────────────────────────────────────────

// Caso 14: cobrar una venta pendiente fija estado y método sin tocar stock.
func TestMarkPaid_FijaEstadoYMetodo(t *testing.T) {
	env := newTestEnv(t)

	req := baseRequest(env)
	req.PaymentStatus = entity.PaymentStatusUnpaid
	req.PaymentMethod = ""
	created := env.createSale(t, req)

	resp, err := env.uc.MarkPaid(context.Background(), created.ID, dto.MarkPaidRequest{
		PaymentMethod: entity.PaymentMethodCard,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, resp.PaymentStatus)
	assert.Equal(t, entity.PaymentMethodCard, resp.PaymentMethod)
	assert.Equal(t, 8, env.products.stock(env.productA), "cobrar no mueve stock")
}

// Caso 15: cobrar dos veces falla la segunda.
func TestMarkPaid_DobleCobroFalla(t *testing.T) {
	env := newTestEnv(t)

	created := env.createSale(t, baseRequest(env)) // ya Paid

	_, err := env.uc.MarkPaid(context.Background(), created.ID, dto.MarkPaidRequest{
		PaymentMethod: entity.PaymentMethodCash,
	})
	assert.ErrorIs(t, err, domain.ErrSaleAlreadyPaid)
}

// Caso 16: retractar restaura el stock de todas las líneas.
func TestRetractSale_RestauraStock(t *testing.T) {
	env := newTestEnv(t)

	req := baseRequest(env)
	req.Items = []dto.SaleItemRequest{
		{ProductID: env.productA, Quantity: 2},
		{ProductID: env.productB, Quantity: 3},
	}
	created := env.createSale(t, req) // A=8, B=2

	resp, err := env.uc.RetractSale(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusRetracted, resp.Status)
	assert.Equal(t, 10, env.products.stock(env.productA))
	assert.Equal(t, 5, env.products.stock(env.productB))
}

// Caso 17: retractar dos veces no restaura stock dos veces (guard idempotente).
func TestRetractSale_DobleRetractacionNoDuplicaStock(t *testing.T) {
	env := newTestEnv(t)

	created := env.createSale(t, baseRequest(env)) // A=8

	_, err := env.uc.RetractSale(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, 10, env.products.stock(env.productA))

	_, err = env.uc.RetractSale(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrSaleRetracted)
	assert.Equal(t, 10, env.products.stock(env.productA), "el stock no debe duplicarse")
}

// Caso 18: retractar una venta inexistente.
func TestRetractSale_VentaInexistente(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.uc.RetractSale(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrSaleNotFound)
}

// Caso 19: el recibo PDF de una venta existente se genera con el fake.
func TestGetReceiptPDF(t *testing.T) {
	env := newTestEnv(t)

	created := env.createSale(t, baseRequest(env))

	pdf, err := env.uc.GetReceiptPDF(context.Background(), created.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)

	_, err = env.uc.GetReceiptPDF(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrSaleNotFound)
}
