package dto

// ProductSalesResponse fila del reporte de productos vendidos.
type ProductSalesResponse struct {
	ProductID    string `json:"product_id"`
	Name         string `json:"name"`
	TotalSold    int    `json:"total_sold"`
	TotalRevenue int64  `json:"total_revenue"`
}

// TodaySalesResponse ventas del día con el ingreso confirmado.
type TodaySalesResponse struct {
	Sales       []SaleResponse `json:"sales"`
	SalesCount  int            `json:"sales_count"`
	PaidRevenue int64          `json:"paid_revenue"`
}

// TherapistSalesResponse fila del ranking de terapeutas.
type TherapistSalesResponse struct {
	TherapistID string `json:"therapist_id"`
	Name        string `json:"name"`
	SalesCount  int    `json:"sales_count"`
	TotalAmount int64  `json:"total_amount"`
}
