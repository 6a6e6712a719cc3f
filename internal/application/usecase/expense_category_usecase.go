package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/panasystem/panasystem-api/internal/application/dto"
	"github.com/panasystem/panasystem-api/internal/domain"
	"github.com/panasystem/panasystem-api/internal/domain/entity"
	"github.com/panasystem/panasystem-api/internal/domain/repository"
)

// ExpenseCategoryUseCase CRUD de categorías de gasto.
type ExpenseCategoryUseCase struct {
	repo repository.ExpenseCategoryRepository
}

// NewExpenseCategoryUseCase construye el caso de uso.
func NewExpenseCategoryUseCase(repo repository.ExpenseCategoryRepository) *ExpenseCategoryUseCase {
	return &ExpenseCategoryUseCase{repo: repo}
}

func (uc *ExpenseCategoryUseCase) Create(ctx context.Context, in dto.NamedRequest) (*dto.NamedResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	c := &entity.ExpenseCategory{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return expenseCategoryToNamed(c), nil
}

func (uc *ExpenseCategoryUseCase) GetByID(ctx context.Context, id string) (*dto.NamedResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return expenseCategoryToNamed(c), nil
}

func (uc *ExpenseCategoryUseCase) Update(ctx context.Context, id string, in dto.NamedRequest) (*dto.NamedResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		c.Name = in.Name
	}
	c.Description = in.Description
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return expenseCategoryToNamed(c), nil
}

func (uc *ExpenseCategoryUseCase) List(ctx context.Context, limit, offset int) ([]dto.NamedResponse, error) {
	items, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NamedResponse, 0, len(items))
	for _, c := range items {
		out = append(out, *expenseCategoryToNamed(c))
	}
	return out, nil
}

func (uc *ExpenseCategoryUseCase) Delete(ctx context.Context, id string) error {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func expenseCategoryToNamed(c *entity.ExpenseCategory) *dto.NamedResponse {
	return &dto.NamedResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
