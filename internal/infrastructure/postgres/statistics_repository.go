package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/panasystem/panasystem-api/internal/domain/repository"
)

var _ repository.StatisticsRepository = (*StatisticsRepo)(nil)

// StatisticsRepo consultas de solo lectura para los rollups de ventas.
type StatisticsRepo struct {
	q Querier
}

// NewStatisticsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStatisticsRepository(q Querier) *StatisticsRepo {
	return &StatisticsRepo{q: q}
}

// SalesSummary cuenta ventas y suma totales en [from, to), con filtro opcional
// por método de pago. Sin filas devuelve cero, nunca error.
func (r *StatisticsRepo) SalesSummary(ctx context.Context, from, to time.Time, paymentMethod string) (int64, decimal.Decimal, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(total), 0)
		FROM sales WHERE date >= $1 AND date < $2`
	args := []any{from, to}
	if paymentMethod != "" {
		query += " AND payment_method = $3"
		args = append(args, paymentMethod)
	}
	var count int64
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, args...).Scan(&count, &total); err != nil {
		return 0, decimal.Zero, fmt.Errorf("sales summary: %w", err)
	}
	return count, total, nil
}

// BestSellingProducts top-N por cantidad vendida en [from, to); desempate por
// id de producto ascendente para salida reproducible.
func (r *StatisticsRepo) BestSellingProducts(ctx context.Context, from, to time.Time, limit int) ([]repository.BestSeller, error) {
	rows, err := r.q.Query(ctx, `
		SELECT d.product_id, p.name, SUM(d.quantity) AS total_quantity
		FROM sale_details d
		JOIN sales s ON s.id = d.sale_id
		JOIN products p ON p.id = d.product_id
		WHERE s.date >= $1 AND s.date < $2
		GROUP BY d.product_id, p.name
		ORDER BY total_quantity DESC, d.product_id ASC
		LIMIT $3`,
		from, to, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("best selling products: %w", err)
	}
	defer rows.Close()
	var list []repository.BestSeller
	for rows.Next() {
		var b repository.BestSeller
		if err := rows.Scan(&b.ProductID, &b.ProductName, &b.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan best seller: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// SupplierOrdersTotal suma los totales de pedidos a proveedores en [from, to).
func (r *StatisticsRepo) SupplierOrdersTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(total), 0)
		FROM supplier_orders WHERE date >= $1 AND date < $2`,
		from, to,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("supplier orders total: %w", err)
	}
	return total, nil
}
