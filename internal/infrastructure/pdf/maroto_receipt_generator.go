// Package pdf implementa la generación del recibo de venta.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda + dirección      │
//	│  ───────────────────────────────────────────  │
//	│  VENTA: N° + fecha | cajero | cliente         │
//	│  ───────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | Precio | Subtotal   │
//	│  ───────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Descuento / Fees / TOTAL │
//	│  FOOTER: estado de pago + agradecimiento      │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jmontoya/spapos-api/internal/application/sales"
	"github.com/jmontoya/spapos-api/internal/domain/entity"
)

var _ sales.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 94, Blue: 74}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Formato de Rupiah con separador de miles indonesio (Rp 1.250.000).
var rupiahPrinter = message.NewPrinter(language.Indonesian)

func formatRupiah(d decimal.Decimal) string {
	return rupiahPrinter.Sprintf("Rp %d", d.IntPart())
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReceiptGenerator implementa sales.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// Generate genera el recibo PDF de la venta y devuelve sus bytes.
func (g *MarotoReceiptGenerator) Generate(sale *entity.Sale, settings *entity.Settings) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de venta", true).
		WithAuthor(settings.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(settings))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(saleInfoRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range itemRows(sale.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range totalsRows(sale) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(footerRow(sale))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la tienda + dirección.
func headerRow(settings *entity.Settings) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New(settings.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Align: align.Center, Top: 1,
			}),
			text.New(nonEmpty(settings.Address, ""), props.Text{
				Size: 8, Align: align.Center, Top: 9, Color: colorGray,
			}),
		),
	)
}

// saleInfoRow: número corto de la venta, fecha, cajero, cliente y terapeuta.
func saleInfoRow(sale *entity.Sale) core.Row {
	parties := "Cajero: " + nonEmpty(sale.CashierName, "—")
	if sale.CustomerName != "" {
		parties += "   |   Cliente: " + sale.CustomerName
	}
	if sale.IncludeTherapistOnInvoice && sale.TherapistName != "" {
		parties += "   |   Terapeuta: " + sale.TherapistName
	}
	return row.New(14).Add(
		col.New(7).Add(
			text.New("RECIBO "+shortID(sale.ID), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 1,
			}),
			text.New(parties, props.Text{Size: 7.5, Top: 8, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(sale.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de ítems.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto / servicio", 6, align.Left),
		h("Precio", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// itemRows: una fila por línea, con los precios snapshot de la venta.
func itemRows(items []entity.SaleItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		name := it.Name
		if it.Note != "" {
			name += " (" + it.Note + ")"
		}
		lineTotal := it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				formatRupiah(it.Price),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				formatRupiah(lineTotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRows: desglose de la venta. Los fees solo aparecen si la venta los
// marcó para el recibo.
func totalsRows(sale *entity.Sale) []core.Row {
	pair := func(label, value string, bold bool) core.Row {
		style := fontstyle.Normal
		size := 9.0
		color := (*props.Color)(nil)
		if bold {
			style = fontstyle.Bold
			size = 11
			color = colorPrimary
		}
		return row.New(6).Add(
			col.New(6),
			col.New(3).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: size - 1, Align: align.Right, Right: 2, Color: color,
			})),
			col.New(3).Add(text.New(value, props.Text{
				Style: style, Size: size - 1, Align: align.Right, Right: 1, Color: color,
			})),
		)
	}

	rows := []core.Row{pair("Subtotal:", formatRupiah(sale.Subtotal), false)}
	if !sale.Discount.IsZero() {
		label := "Descuento:"
		if sale.VoucherCode != "" {
			label = "Descuento (" + sale.VoucherCode + "):"
		}
		rows = append(rows, pair(label, "-"+formatRupiah(sale.Discount), false))
	}
	if sale.AdditionalFee.IncludeOnInvoice && !sale.AdditionalFee.Amount.IsZero() {
		label := nonEmpty(sale.AdditionalFee.Description, "Cargo adicional") + ":"
		rows = append(rows, pair(label, formatRupiah(sale.AdditionalFee.Amount), false))
	}
	if sale.TransportationFee.IncludeOnInvoice && !sale.TransportationFee.Amount.IsZero() {
		rows = append(rows, pair("Transporte:", formatRupiah(sale.TransportationFee.Amount), false))
	}
	rows = append(rows, pair("TOTAL:", formatRupiah(sale.TotalAmount), true))
	return rows
}

// footerRow: estado de pago y agradecimiento.
func footerRow(sale *entity.Sale) core.Row {
	status := "PAGADO (" + sale.PaymentMethod + ")"
	if !sale.IsPaid() {
		status = "PAGO PENDIENTE"
	}
	if sale.IsRetracted() {
		status = "VENTA ANULADA"
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New(status, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Center, Color: colorPrimary, Top: 1,
			}),
			text.New("¡Gracias por su visita!", props.Text{
				Size: 8, Align: align.Center, Top: 7, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// shortID devuelve el primer bloque del UUID en mayúsculas para el recibo.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return strings.ToUpper(id[:i])
	}
	return strings.ToUpper(id)
}
