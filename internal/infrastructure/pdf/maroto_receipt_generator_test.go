package pdf

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmontoya/spapos-api/internal/domain/entity"
)

func sampleSale() *entity.Sale {
	return &entity.Sale{
		ID:            "a1b2c3d4-0000-0000-0000-000000000001",
		CashierID:     "00000000-0000-0000-0000-000000000002",
		CashierName:   "ana.cajera",
		CustomerName:  "Dewi Lestari",
		TherapistName: "Sari",
		Items: []entity.SaleItem{
			{
				ProductID: "00000000-0000-0000-0000-000000000003",
				Name:      "Masaje relajante 60min",
				BasePrice: decimal.NewFromInt(30000),
				Price:     decimal.NewFromInt(50000),
				Quantity:  2,
			},
			{
				ProductID: "00000000-0000-0000-0000-000000000004",
				Name:      "Aceite esencial",
				BasePrice: decimal.NewFromInt(10000),
				Price:     decimal.NewFromInt(20000),
				Quantity:  1,
				Note:      "lavanda",
			},
		},
		Subtotal:      decimal.NewFromInt(120000),
		Discount:      decimal.NewFromInt(12000),
		VoucherCode:   "DESC10",
		TotalAmount:   decimal.NewFromInt(108000),
		PaymentMethod: entity.PaymentMethodCash,
		PaymentStatus: entity.PaymentStatusPaid,
		Status:        entity.SaleStatusCompleted,
		CreatedAt:     time.Date(2025, 3, 14, 15, 30, 0, 0, time.Local),
	}
}

// Caso 1: Generate produce un PDF válido con los datos de la venta.
func TestGenerate_ProducePDF(t *testing.T) {
	gen := NewMarotoReceiptGenerator()
	settings := &entity.Settings{CompanyName: "Lotus Spa", Address: "Jl. Raya Ubud 88"}

	out, err := gen.Generate(sampleSale(), settings)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]), "la salida debe ser un PDF")
}

// Caso 2: una venta Unpaid también genera recibo (marcado como pendiente).
func TestGenerate_VentaUnpaid(t *testing.T) {
	gen := NewMarotoReceiptGenerator()
	sale := sampleSale()
	sale.PaymentStatus = entity.PaymentStatusUnpaid
	sale.PaymentMethod = entity.PaymentMethodPending

	out, err := gen.Generate(sale, &entity.Settings{CompanyName: "Lotus Spa"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

// Caso 3: formato de Rupiah con separador de miles indonesio.
func TestFormatRupiah(t *testing.T) {
	assert.Equal(t, "Rp 1.250.000", formatRupiah(decimal.NewFromInt(1250000)))
	assert.Equal(t, "Rp 0", formatRupiah(decimal.Zero))
	assert.Equal(t, "Rp 500", formatRupiah(decimal.NewFromInt(500)))
}

// Caso 4: el número corto del recibo es el primer bloque del UUID.
func TestShortID(t *testing.T) {
	assert.Equal(t, "A1B2C3D4", shortID("a1b2c3d4-0000-0000-0000-000000000001"))
	assert.Equal(t, "ABC", shortID("abc"))
}
