package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jmontoya/spapos-api/internal/domain/pricing"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// Escenario E de referencia: voucher 10% sobre subtotal 100000, fee adicional
// 5000, transporte 0 → total 95000.
func TestCompute_VoucherPorcentajeConFee(t *testing.T) {
	items := []pricing.LineItem{
		{Price: d(50000), Quantity: 2}, // subtotal 100000
	}
	voucher := &pricing.Voucher{Type: "percentage", Value: d(10)}

	b := pricing.Compute(items, voucher, d(5000), decimal.Zero)

	assert.True(t, b.Subtotal.Equal(d(100000)), "subtotal = %s", b.Subtotal)
	assert.True(t, b.Discount.Equal(d(10000)), "discount = %s", b.Discount)
	assert.True(t, b.Total.Equal(d(95000)), "total = %s", b.Total)
}

func TestCompute_VoucherFijo(t *testing.T) {
	items := []pricing.LineItem{
		{Price: d(30000), Quantity: 1},
		{Price: d(20000), Quantity: 2},
	}
	voucher := &pricing.Voucher{Type: "fixed", Value: d(15000)}

	b := pricing.Compute(items, voucher, decimal.Zero, decimal.Zero)

	assert.True(t, b.Subtotal.Equal(d(70000)))
	assert.True(t, b.Discount.Equal(d(15000)))
	assert.True(t, b.Total.Equal(d(55000)))
}

// Un voucher fijo mayor que el subtotal no produce total negativo: el neto se
// recorta a 0 antes de sumar los fees.
func TestCompute_VoucherFijoMayorQueSubtotal_RecortaACero(t *testing.T) {
	items := []pricing.LineItem{{Price: d(10000), Quantity: 1}}
	voucher := &pricing.Voucher{Type: "fixed", Value: d(50000)}

	b := pricing.Compute(items, voucher, d(2000), d(3000))

	// El descuento persiste sin tope; solo el total se recorta.
	assert.True(t, b.Discount.Equal(d(50000)))
	assert.True(t, b.Total.Equal(d(5000)), "total = fees cuando el neto queda en 0")
}

func TestCompute_SinVoucherNiFees(t *testing.T) {
	items := []pricing.LineItem{
		{Price: d(25000), Quantity: 3},
	}

	b := pricing.Compute(items, nil, decimal.Zero, decimal.Zero)

	assert.True(t, b.Subtotal.Equal(d(75000)))
	assert.True(t, b.Discount.IsZero())
	assert.True(t, b.Total.Equal(d(75000)))
}

func TestCompute_CarritoVacio(t *testing.T) {
	b := pricing.Compute(nil, nil, decimal.Zero, decimal.Zero)

	assert.True(t, b.Subtotal.IsZero())
	assert.True(t, b.Total.IsZero())
}

// El desglose persistido debe poder re-derivarse: computar dos veces con la
// misma entrada produce exactamente el mismo resultado.
func TestCompute_Determinista(t *testing.T) {
	items := []pricing.LineItem{
		{Price: d(120000), Quantity: 2},
		{Price: d(45000), Quantity: 1},
	}
	voucher := &pricing.Voucher{Type: "percentage", Value: d(15)}

	b1 := pricing.Compute(items, voucher, d(10000), d(20000))
	b2 := pricing.Compute(items, voucher, d(10000), d(20000))

	assert.True(t, b1.Subtotal.Equal(b2.Subtotal))
	assert.True(t, b1.Discount.Equal(b2.Discount))
	assert.True(t, b1.Total.Equal(b2.Total))

	// Invariante de la spec: total == max(0, subtotal-discount) + fees
	expected := b1.Subtotal.Sub(b1.Discount).Add(d(30000))
	assert.True(t, b1.Total.Equal(expected))
}
