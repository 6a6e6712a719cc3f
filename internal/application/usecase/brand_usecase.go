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

// BrandUseCase CRUD de marcas.
type BrandUseCase struct {
	repo repository.BrandRepository
}

// NewBrandUseCase construye el caso de uso.
func NewBrandUseCase(repo repository.BrandRepository) *BrandUseCase {
	return &BrandUseCase{repo: repo}
}

func (uc *BrandUseCase) Create(ctx context.Context, in dto.NamedRequest) (*dto.NamedResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	b := &entity.Brand{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return brandToNamed(b), nil
}

func (uc *BrandUseCase) GetByID(ctx context.Context, id string) (*dto.NamedResponse, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return brandToNamed(b), nil
}

func (uc *BrandUseCase) Update(ctx context.Context, id string, in dto.NamedRequest) (*dto.NamedResponse, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		b.Name = in.Name
	}
	b.Description = in.Description
	b.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return brandToNamed(b), nil
}

func (uc *BrandUseCase) List(ctx context.Context, limit, offset int) ([]dto.NamedResponse, error) {
	items, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NamedResponse, 0, len(items))
	for _, b := range items {
		out = append(out, *brandToNamed(b))
	}
	return out, nil
}

func (uc *BrandUseCase) Delete(ctx context.Context, id string) error {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func brandToNamed(b *entity.Brand) *dto.NamedResponse {
	return &dto.NamedResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
