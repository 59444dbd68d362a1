package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmontoya/spapos-api/internal/application/reports"
	"github.com/jmontoya/spapos-api/internal/domain/entity"
	"github.com/jmontoya/spapos-api/internal/domain/repository"
	apphttp "github.com/jmontoya/spapos-api/internal/interfaces/http"
)

// fakeReportRepo registra los argumentos con que se consulta el ranking.
type fakeReportRepo struct {
	lastFrom *time.Time
	lastTo   *time.Time
}

func (r *fakeReportRepo) TopProducts(ctx context.Context, limit int) ([]repository.ProductSalesRow, error) {
	return nil, nil
}

func (r *fakeReportRepo) SalesBetween(ctx context.Context, from, to time.Time) ([]*entity.Sale, error) {
	return nil, nil
}

func (r *fakeReportRepo) PaidRevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (r *fakeReportRepo) TherapistLeaderboard(ctx context.Context, from, to *time.Time, limit int) ([]repository.TherapistSalesRow, error) {
	r.lastFrom, r.lastTo = from, to
	return nil, nil
}

func buildReportApp(repo *fakeReportRepo) *fiber.App {
	app := fiber.New()
	h := apphttp.NewReportHandler(reports.NewUseCase(repo))
	app.Get("/api/therapists/report", h.TherapistLeaderboard)
	return app
}

// Caso 1: ?from y ?to son inclusivos a nivel de día: una venta hecha durante
// el día "to" debe caer dentro del rango consultado al repositorio.
func TestTherapistReport_RangoIncluyeElDiaTo(t *testing.T) {
	repo := &fakeReportRepo{}
	app := buildReportApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/therapists/report?from=2026-03-01&to=2026-03-10", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NotNil(t, repo.lastFrom)
	require.NotNil(t, repo.lastTo)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local), *repo.lastFrom)
	assert.Equal(t, time.Date(2026, time.March, 11, 0, 0, 0, 0, time.Local), *repo.lastTo,
		"el límite superior debe ser la medianoche siguiente al día to")

	// Una venta de las 18:00 del día to queda dentro del rango [from, to).
	venta := time.Date(2026, time.March, 10, 18, 0, 0, 0, time.Local)
	assert.True(t, venta.Before(*repo.lastTo))
}

// Caso 2: sin query params el ranking consulta sin acotar fechas.
func TestTherapistReport_SinRangoNoFiltra(t *testing.T) {
	repo := &fakeReportRepo{}
	app := buildReportApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/therapists/report", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Nil(t, repo.lastFrom)
	assert.Nil(t, repo.lastTo)
}

// Caso 3: una fecha mal formada responde 400.
func TestTherapistReport_FechaInvalida(t *testing.T) {
	app := buildReportApp(&fakeReportRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/therapists/report?to=10-03-2026", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
