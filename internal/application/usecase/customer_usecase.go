package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/panasystem/panasystem-api/internal/application/dto"
	"github.com/panasystem/panasystem-api/internal/domain"
	"github.com/panasystem/panasystem-api/internal/domain/entity"
	"github.com/panasystem/panasystem-api/internal/domain/repository"
)

// CustomerUseCase CRUD de clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("el cliente requiere nombre: %w", domain.ErrInvalidInput)
	}
	if err := validateCity(in.City); err != nil {
		return nil, err
	}
	now := time.Now()
	c := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Celular:   in.Celular,
		Email:     in.Email,
		Address:   in.Address,
		City:      in.City,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return customerToResponse(c), nil
}

func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return customerToResponse(c), nil
}

func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if err := validateCity(in.City); err != nil {
		return nil, err
	}
	if in.Name != "" {
		c.Name = in.Name
	}
	c.Celular = in.Celular
	c.Email = in.Email
	c.Address = in.Address
	c.City = in.City
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return customerToResponse(c), nil
}

// List busca clientes por nombre si search no es vacío.
func (uc *CustomerUseCase) List(ctx context.Context, search string, limit, offset int) ([]dto.CustomerResponse, error) {
	items, err := uc.repo.List(ctx, search, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(items))
	for _, c := range items {
		out = append(out, *customerToResponse(c))
	}
	return out, nil
}

func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func validateCity(city string) error {
	switch city {
	case "", entity.CityArroyoCabral, entity.CityLuca:
		return nil
	}
	return fmt.Errorf("ciudad %q desconocida: %w", city, domain.ErrInvalidInput)
}

func customerToResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Celular:   c.Celular,
		Email:     c.Email,
		Address:   c.Address,
		City:      c.City,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
