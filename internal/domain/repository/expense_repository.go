package repository

import (
	"context"
	"time"

	"github.com/panasystem/panasystem-api/internal/domain/entity"
)

// ExpenseFilter criterios para el listado de gastos.
type ExpenseFilter struct {
	SupplierID string
	CategoryID string
	EmployeeID string
	DateFrom   *time.Time
	DateTo     *time.Time // exclusivo
	Limit      int
	Offset     int
}

// ExpenseRepository puerto de persistencia para Expense.
type ExpenseRepository interface {
	Create(ctx context.Context, e *entity.Expense) error
	GetByID(ctx context.Context, id string) (*entity.Expense, error)
	Update(ctx context.Context, e *entity.Expense) error
	List(ctx context.Context, filter ExpenseFilter) ([]*entity.Expense, error)
	Delete(ctx context.Context, id string) error
}

// ExpenseCategoryRepository puerto de persistencia para ExpenseCategory.
type ExpenseCategoryRepository interface {
	Create(ctx context.Context, c *entity.ExpenseCategory) error
	GetByID(ctx context.Context, id string) (*entity.ExpenseCategory, error)
	Update(ctx context.Context, c *entity.ExpenseCategory) error
	List(ctx context.Context, limit, offset int) ([]*entity.ExpenseCategory, error)
	Delete(ctx context.Context, id string) error
}
