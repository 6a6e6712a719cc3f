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

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)
var _ repository.ExpenseCategoryRepository = (*ExpenseCategoryRepo)(nil)

// ExpenseRepo persistencia de gastos.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

const expenseColumns = `id, date, supplier_id, total, category_id, employee_id, description, created_at, updated_at`

func (r *ExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Date, e.SupplierID, e.Total, e.CategoryID, e.EmployeeID, e.Description, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

func (r *ExpenseRepo) GetByID(ctx context.Context, id string) (*entity.Expense, error) {
	var e entity.Expense
	err := r.q.QueryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id).Scan(
		&e.ID, &e.Date, &e.SupplierID, &e.Total, &e.CategoryID, &e.EmployeeID, &e.Description, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return &e, nil
}

func (r *ExpenseRepo) Update(ctx context.Context, e *entity.Expense) error {
	_, err := r.q.Exec(ctx, `
		UPDATE expenses SET date = $2, supplier_id = $3, total = $4, category_id = $5, employee_id = $6, description = $7, updated_at = $8
		WHERE id = $1`,
		e.ID, e.Date, e.SupplierID, e.Total, e.CategoryID, e.EmployeeID, e.Description, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	return nil
}

func (r *ExpenseRepo) List(ctx context.Context, filter repository.ExpenseFilter) ([]*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE 1=1`
	args := []any{}
	i := 1
	if filter.SupplierID != "" {
		query += fmt.Sprintf(" AND supplier_id = $%d", i)
		args = append(args, filter.SupplierID)
		i++
	}
	if filter.CategoryID != "" {
		query += fmt.Sprintf(" AND category_id = $%d", i)
		args = append(args, filter.CategoryID)
		i++
	}
	if filter.EmployeeID != "" {
		query += fmt.Sprintf(" AND employee_id = $%d", i)
		args = append(args, filter.EmployeeID)
		i++
	}
	if filter.DateFrom != nil {
		query += fmt.Sprintf(" AND date >= $%d", i)
		args = append(args, *filter.DateFrom)
		i++
	}
	if filter.DateTo != nil {
		query += fmt.Sprintf(" AND date < $%d", i)
		args = append(args, *filter.DateTo)
		i++
	}
	query += fmt.Sprintf(" ORDER BY date DESC LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(&e.ID, &e.Date, &e.SupplierID, &e.Total, &e.CategoryID, &e.EmployeeID, &e.Description, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

func (r *ExpenseRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}

// ExpenseCategoryRepo persistencia de categorías de gasto.
type ExpenseCategoryRepo struct {
	q Querier
}

// NewExpenseCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewExpenseCategoryRepository(q Querier) *ExpenseCategoryRepo {
	return &ExpenseCategoryRepo{q: q}
}

func (r *ExpenseCategoryRepo) Create(ctx context.Context, c *entity.ExpenseCategory) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO expense_categories (id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Name, c.Description, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert expense category: %w", err)
	}
	return nil
}

func (r *ExpenseCategoryRepo) GetByID(ctx context.Context, id string) (*entity.ExpenseCategory, error) {
	var c entity.ExpenseCategory
	err := r.q.QueryRow(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM expense_categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense category: %w", err)
	}
	return &c, nil
}

func (r *ExpenseCategoryRepo) Update(ctx context.Context, c *entity.ExpenseCategory) error {
	_, err := r.q.Exec(ctx, `
		UPDATE expense_categories SET name = $2, description = $3, updated_at = $4 WHERE id = $1`,
		c.ID, c.Name, c.Description, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update expense category: %w", err)
	}
	return nil
}

func (r *ExpenseCategoryRepo) List(ctx context.Context, limit, offset int) ([]*entity.ExpenseCategory, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM expense_categories ORDER BY name ASC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list expense categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.ExpenseCategory
	for rows.Next() {
		var c entity.ExpenseCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan expense category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *ExpenseCategoryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM expense_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense category: %w", err)
	}
	return nil
}
