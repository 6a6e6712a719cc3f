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

// EmployeeUseCase CRUD de empleados.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	e := &entity.Employee{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return employeeToResponse(e), nil
}

func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return employeeToResponse(e), nil
}

func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		e.Name = in.Name
	}
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return employeeToResponse(e), nil
}

func (uc *EmployeeUseCase) List(ctx context.Context, limit, offset int) ([]dto.EmployeeResponse, error) {
	items, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(items))
	for _, e := range items {
		out = append(out, *employeeToResponse(e))
	}
	return out, nil
}

func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func employeeToResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
