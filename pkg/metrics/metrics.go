package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores de negocio expuestos en /metrics.
// Se registran en el registry global de Prometheus vía promauto.
var (
	SalesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spapos_sales_created_total",
			Help: "Total de ventas creadas, por estado de pago",
		},
		[]string{"payment_status"},
	)

	SalesRetractedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "spapos_sales_retracted_total",
			Help: "Total de ventas retractadas",
		},
	)

	InsufficientStockTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "spapos_insufficient_stock_total",
			Help: "Total de operaciones rechazadas por stock insuficiente",
		},
	)

	AdjustmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spapos_stock_adjustments_total",
			Help: "Total de ajustes de stock, por razón",
		},
		[]string{"reason"},
	)
)

// RecordSaleCreated incrementa el contador de ventas creadas.
func RecordSaleCreated(paymentStatus string) {
	SalesCreatedTotal.WithLabelValues(paymentStatus).Inc()
}

// RecordSaleRetracted incrementa el contador de retractaciones.
func RecordSaleRetracted() {
	SalesRetractedTotal.Inc()
}

// RecordInsufficientStock incrementa el contador de rechazos por stock.
func RecordInsufficientStock() {
	InsufficientStockTotal.Inc()
}

// RecordAdjustment incrementa el contador de ajustes por razón.
func RecordAdjustment(reason string) {
	AdjustmentsTotal.WithLabelValues(reason).Inc()
}
