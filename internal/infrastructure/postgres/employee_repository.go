package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/panasystem/panasystem-api/internal/domain/entity"
	"github.com/panasystem/panasystem-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo persistencia de empleados.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO employees (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`,
		e.ID, e.Name, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	var e entity.Employee
	err := r.q.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at FROM employees WHERE id = $1`, id,
	).Scan(&e.ID, &e.Name, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	_, err := r.q.Exec(ctx, `
		UPDATE employees SET name = $2, updated_at = $3 WHERE id = $1`,
		e.ID, e.Name, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepo) List(ctx context.Context, limit, offset int) ([]*entity.Employee, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name, created_at, updated_at
		FROM employees ORDER BY name ASC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}
