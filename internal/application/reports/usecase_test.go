package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmontoya/spapos-api/internal/application/reports"
	"github.com/jmontoya/spapos-api/internal/domain/entity"
	"github.com/jmontoya/spapos-api/internal/domain/repository"
)

// fakeReportRepo devuelve filas fijas y registra los argumentos recibidos.
type fakeReportRepo struct {
	topRows       []repository.ProductSalesRow
	salesRows     []*entity.Sale
	revenue       decimal.Decimal
	therapistRows []repository.TherapistSalesRow

	lastTopLimit  int
	lastFrom      time.Time
	lastTo        time.Time
	lastRankLimit int
}

func (r *fakeReportRepo) TopProducts(ctx context.Context, limit int) ([]repository.ProductSalesRow, error) {
	r.lastTopLimit = limit
	return r.topRows, nil
}

func (r *fakeReportRepo) SalesBetween(ctx context.Context, from, to time.Time) ([]*entity.Sale, error) {
	r.lastFrom, r.lastTo = from, to
	return r.salesRows, nil
}

func (r *fakeReportRepo) PaidRevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	return r.revenue, nil
}

func (r *fakeReportRepo) TherapistLeaderboard(ctx context.Context, from, to *time.Time, limit int) ([]repository.TherapistSalesRow, error) {
	r.lastRankLimit = limit
	return r.therapistRows, nil
}

// Caso 1: el top de productos pide 5 filas y mapea cantidades y revenue.
func TestTopProducts(t *testing.T) {
	repo := &fakeReportRepo{topRows: []repository.ProductSalesRow{
		{ProductID: "p1", Name: "Masaje", TotalSold: 40, TotalRevenue: decimal.NewFromInt(2000000)},
		{ProductID: "p2", Name: "Aceite", TotalSold: 15, TotalRevenue: decimal.NewFromInt(300000)},
	}}
	uc := reports.NewUseCase(repo)

	out, err := uc.TopProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, repo.lastTopLimit)
	require.Len(t, out, 2)
	assert.Equal(t, "Masaje", out[0].Name)
	assert.Equal(t, int64(2000000), out[0].TotalRevenue)
}

// Caso 2: el ranking completo no limita filas.
func TestAllSellingProducts_SinLimite(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := reports.NewUseCase(repo)

	_, err := uc.AllSellingProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, repo.lastTopLimit)
}

// Caso 3: las ventas de hoy usan el rango [medianoche local, medianoche
// siguiente) y el revenue confirmado viene solo de ventas Paid.
func TestTodaySales_RangoDelDiaYRevenuePagado(t *testing.T) {
	paid := &entity.Sale{
		ID: "s1", TotalAmount: decimal.NewFromInt(150000),
		PaymentStatus: entity.PaymentStatusPaid, Status: entity.SaleStatusCompleted,
	}
	unpaid := &entity.Sale{
		ID: "s2", TotalAmount: decimal.NewFromInt(80000),
		PaymentStatus: entity.PaymentStatusUnpaid, Status: entity.SaleStatusCompleted,
	}
	repo := &fakeReportRepo{
		salesRows: []*entity.Sale{paid, unpaid},
		revenue:   decimal.NewFromInt(150000),
	}
	uc := reports.NewUseCase(repo)

	out, err := uc.TodaySales(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, out.SalesCount, "las Unpaid sí aparecen en la lista")
	assert.Equal(t, int64(150000), out.PaidRevenue, "solo las Paid suman al revenue")

	now := time.Now()
	wantFrom := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	wantTo := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	assert.Equal(t, wantFrom, repo.lastFrom)
	assert.Equal(t, wantTo, repo.lastTo)
}

// Caso 4: el ranking de terapeutas pide 10 filas.
func TestTherapistLeaderboard(t *testing.T) {
	repo := &fakeReportRepo{therapistRows: []repository.TherapistSalesRow{
		{TherapistID: "t1", Name: "Ayu", SalesCount: 12, TotalAmount: decimal.NewFromInt(900000)},
	}}
	uc := reports.NewUseCase(repo)

	out, err := uc.TherapistLeaderboard(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 10, repo.lastRankLimit)
	require.Len(t, out, 1)
	assert.Equal(t, "Ayu", out[0].Name)
	assert.Equal(t, int64(900000), out[0].TotalAmount)
}
