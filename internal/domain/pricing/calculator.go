// Package pricing implementa la calculadora de desglose de la venta
// (servicio de dominio puro, sin efectos secundarios).
package pricing

import "github.com/shopspring/decimal"

// LineItem es la entrada mínima por línea: precio unitario y cantidad.
type LineItem struct {
	Price    decimal.Decimal
	Quantity int
}

// Voucher es el descuento aplicable: porcentaje sobre el subtotal o monto fijo.
type Voucher struct {
	Type  string // "percentage" | "fixed"
	Value decimal.Decimal
}

// Breakdown es el desglose resultante. Es re-derivable desde una venta
// persistida: Total == max(0, Subtotal-Discount) + fees, en unidades enteras
// de moneda (sin redondeos ocultos).
type Breakdown struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

var oneHundred = decimal.NewFromInt(100)

// Compute calcula subtotal, descuento y total.
//
//	subtotal = Σ price·quantity
//	discount = voucher percentage ? subtotal·value/100 : value (fijo, sin tope al subtotal)
//	total    = max(0, subtotal - discount) + additionalFee + transportationFee
func Compute(items []LineItem, voucher *Voucher, additionalFee, transportationFee decimal.Decimal) Breakdown {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	discount := decimal.Zero
	if voucher != nil {
		switch voucher.Type {
		case "percentage":
			discount = subtotal.Mul(voucher.Value).Div(oneHundred)
		case "fixed":
			discount = voucher.Value
		}
	}

	net := subtotal.Sub(discount)
	if net.IsNegative() {
		net = decimal.Zero
	}

	return Breakdown{
		Subtotal: subtotal,
		Discount: discount,
		Total:    net.Add(additionalFee).Add(transportationFee),
	}
}
