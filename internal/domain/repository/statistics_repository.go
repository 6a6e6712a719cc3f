package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// BestSeller producto más vendido en una ventana de fechas.
type BestSeller struct {
	ProductID     string
	ProductName   string
	TotalQuantity decimal.Decimal
}

// StatisticsRepository consultas de solo lectura para los rollups de ventas.
// Todos los rangos son [from, to) y los agregados sin filas devuelven cero.
type StatisticsRepository interface {
	// SalesSummary cuenta ventas y suma totales en la ventana, con filtro
	// opcional por método de pago.
	SalesSummary(ctx context.Context, from, to time.Time, paymentMethod string) (count int64, total decimal.Decimal, err error)
	// BestSellingProducts: top-N por cantidad vendida, desempate por id de
	// producto ascendente para salida reproducible.
	BestSellingProducts(ctx context.Context, from, to time.Time, limit int) ([]BestSeller, error)
	// SupplierOrdersTotal suma los totales de pedidos a proveedores en la ventana.
	SupplierOrdersTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
}
