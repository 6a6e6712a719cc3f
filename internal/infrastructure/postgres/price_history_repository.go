package postgres

import (
	"context"
	"fmt"

	"github.com/panasystem/panasystem-api/internal/domain/entity"
	"github.com/panasystem/panasystem-api/internal/domain/repository"
)

var _ repository.PriceHistoryRepository = (*PriceHistoryRepo)(nil)

// PriceHistoryRepo persistencia del historial de precios (append-only, sin update ni delete).
type PriceHistoryRepo struct {
	q Querier
}

// NewPriceHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPriceHistoryRepository(q Querier) *PriceHistoryRepo {
	return &PriceHistoryRepo{q: q}
}

// Create agrega una versión de precio al historial.
func (r *PriceHistoryRepo) Create(ctx context.Context, h *entity.PriceHistory) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO price_history (id, product_id, public_price, wholesale_price, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		h.ID, h.ProductID, h.PublicPrice, h.WholesalePrice, h.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert price history: %w", err)
	}
	return nil
}

// ListByProduct devuelve el historial del más reciente al más antiguo.
func (r *PriceHistoryRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.PriceHistory, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, product_id, public_price, wholesale_price, created_at
		FROM price_history WHERE product_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		productID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list price history: %w", err)
	}
	defer rows.Close()
	var list []*entity.PriceHistory
	for rows.Next() {
		var h entity.PriceHistory
		if err := rows.Scan(&h.ID, &h.ProductID, &h.PublicPrice, &h.WholesalePrice, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan price history: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}
