package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/panasystem/panasystem-api/internal/application/dto"
	"github.com/panasystem/panasystem-api/internal/domain"
	"github.com/panasystem/panasystem-api/internal/domain/entity"
	"github.com/panasystem/panasystem-api/internal/domain/repository"
)

// ExpenseUseCase gestiona gastos del negocio.
type ExpenseUseCase struct {
	repo         repository.ExpenseRepository
	categoryRepo repository.ExpenseCategoryRepository
	employeeRepo repository.EmployeeRepository
	supplierRepo repository.SupplierRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(
	repo repository.ExpenseRepository,
	categoryRepo repository.ExpenseCategoryRepository,
	employeeRepo repository.EmployeeRepository,
	supplierRepo repository.SupplierRepository,
) *ExpenseUseCase {
	return &ExpenseUseCase{
		repo:         repo,
		categoryRepo: categoryRepo,
		employeeRepo: employeeRepo,
		supplierRepo: supplierRepo,
	}
}

func (uc *ExpenseUseCase) Create(ctx context.Context, in dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	if err := uc.validate(ctx, in); err != nil {
		return nil, err
	}
	now := time.Now()
	e := &entity.Expense{
		ID:          uuid.New().String(),
		Date:        now,
		SupplierID:  in.Supplier,
		Total:       in.Total,
		CategoryID:  in.Category,
		EmployeeID:  in.Employee,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Date != nil {
		e.Date = *in.Date
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return expenseToResponse(e), nil
}

func (uc *ExpenseUseCase) GetByID(ctx context.Context, id string) (*dto.ExpenseResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return expenseToResponse(e), nil
}

func (uc *ExpenseUseCase) Update(ctx context.Context, id string, in dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.validate(ctx, in); err != nil {
		return nil, err
	}
	if in.Date != nil {
		e.Date = *in.Date
	}
	e.SupplierID = in.Supplier
	e.Total = in.Total
	e.CategoryID = in.Category
	e.EmployeeID = in.Employee
	e.Description = in.Description
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return expenseToResponse(e), nil
}

func (uc *ExpenseUseCase) List(ctx context.Context, filter repository.ExpenseFilter) ([]dto.ExpenseResponse, error) {
	items, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(items))
	for _, e := range items {
		out = append(out, *expenseToResponse(e))
	}
	return out, nil
}

func (uc *ExpenseUseCase) Delete(ctx context.Context, id string) error {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ExpenseUseCase) validate(ctx context.Context, in dto.ExpenseRequest) error {
	if in.Total.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("el total debe ser mayor a cero: %w", domain.ErrInvalidInput)
	}
	if in.Category == "" || in.Employee == "" {
		return fmt.Errorf("el gasto requiere categoría y empleado: %w", domain.ErrInvalidInput)
	}
	c, err := uc.categoryRepo.GetByID(ctx, in.Category)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("categoría de gasto con id %s no existe: %w", in.Category, domain.ErrInvalidInput)
	}
	emp, err := uc.employeeRepo.GetByID(ctx, in.Employee)
	if err != nil {
		return err
	}
	if emp == nil {
		return fmt.Errorf("empleado con id %s no existe: %w", in.Employee, domain.ErrInvalidInput)
	}
	if in.Supplier != nil {
		s, err := uc.supplierRepo.GetByID(ctx, *in.Supplier)
		if err != nil {
			return err
		}
		if s == nil {
			return fmt.Errorf("proveedor con id %s no existe: %w", *in.Supplier, domain.ErrInvalidInput)
		}
	}
	return nil
}

func expenseToResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:          e.ID,
		Date:        e.Date,
		Supplier:    e.SupplierID,
		Total:       e.Total,
		Category:    e.CategoryID,
		Employee:    e.EmployeeID,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}
