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

// CategoryUseCase CRUD de categorías de producto.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

func (uc *CategoryUseCase) Create(ctx context.Context, in dto.NamedRequest) (*dto.NamedResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	c := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return categoryToNamed(c), nil
}

func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.NamedResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return categoryToNamed(c), nil
}

func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.NamedRequest) (*dto.NamedResponse, error) {
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
	return categoryToNamed(c), nil
}

func (uc *CategoryUseCase) List(ctx context.Context, limit, offset int) ([]dto.NamedResponse, error) {
	items, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NamedResponse, 0, len(items))
	for _, c := range items {
		out = append(out, *categoryToNamed(c))
	}
	return out, nil
}

func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func categoryToNamed(c *entity.Category) *dto.NamedResponse {
	return &dto.NamedResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
