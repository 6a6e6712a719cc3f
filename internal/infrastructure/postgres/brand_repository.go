package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/panasystem/panasystem-api/internal/domain"
	"github.com/panasystem/panasystem-api/internal/domain/entity"
	"github.com/panasystem/panasystem-api/internal/domain/repository"
)

var _ repository.BrandRepository = (*BrandRepo)(nil)

// BrandRepo persistencia de marcas.
type BrandRepo struct {
	q Querier
}

// NewBrandRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBrandRepository(q Querier) *BrandRepo {
	return &BrandRepo{q: q}
}

func (r *BrandRepo) Create(ctx context.Context, b *entity.Brand) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO brands (id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		b.ID, b.Name, b.Description, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert brand: %w", err)
	}
	return nil
}

func (r *BrandRepo) GetByID(ctx context.Context, id string) (*entity.Brand, error) {
	var b entity.Brand
	err := r.q.QueryRow(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM brands WHERE id = $1`, id,
	).Scan(&b.ID, &b.Name, &b.Description, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get brand: %w", err)
	}
	return &b, nil
}

func (r *BrandRepo) Update(ctx context.Context, b *entity.Brand) error {
	_, err := r.q.Exec(ctx, `
		UPDATE brands SET name = $2, description = $3, updated_at = $4 WHERE id = $1`,
		b.ID, b.Name, b.Description, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update brand: %w", err)
	}
	return nil
}

func (r *BrandRepo) List(ctx context.Context, limit, offset int) ([]*entity.Brand, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM brands ORDER BY name ASC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()
	var list []*entity.Brand
	for rows.Next() {
		var b entity.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

func (r *BrandRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete brand: %w", err)
	}
	return nil
}
