package dto

import "github.com/shopspring/decimal"

// BestSellerDTO producto más vendido en una ventana.
type BestSellerDTO struct {
	ProductID         string          `json:"product_id"`
	ProductName       string          `json:"product_name"`
	TotalQuantitySold decimal.Decimal `json:"total_quantity_sold"`
}

// WindowStatsDTO rollup de una ventana de fechas: cantidad de ventas, suma de
// totales, top-5 productos y suma de pedidos a proveedores (vista de caja neta).
type WindowStatsDTO struct {
	TotalEarned         decimal.Decimal `json:"total_earned"`
	SalesCount          int64           `json:"sales_count"`
	BestSellingProducts []BestSellerDTO `json:"best_selling_products"`
	TotalOrders         decimal.Decimal `json:"total_orders"`
}

// StatisticsResponse las cuatro ventanas: hoy, semana en curso (lunes a
// domingo), mes calendario y rango a medida del caller.
type StatisticsResponse struct {
	SalesToday  WindowStatsDTO  `json:"sales_today"`
	SalesWeek   WindowStatsDTO  `json:"sales_week"`
	SalesMonth  WindowStatsDTO  `json:"sales_month"`
	SalesCustom *WindowStatsDTO `json:"sales_custom,omitempty"`
}

// StatisticsQuery filtros por ventana (cada una con su propio método de pago)
// y rango a medida opcional.
type StatisticsQuery struct {
	PaymentMethodToday     string `query:"payment_method_today"`
	PaymentMethodWeek      string `query:"payment_method_week"`
	PaymentMethodMonth     string `query:"payment_method_month"`
	PaymentMethodCustomize string `query:"payment_method_customize"`
	StartDate              string `query:"start_date"`
	EndDate                string `query:"end_date"`
}
