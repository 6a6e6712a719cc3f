package repository

import (
	"context"

	"github.com/panasystem/panasystem-api/internal/domain/entity"
)

// CustomerRepository puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(ctx context.Context, c *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	Update(ctx context.Context, c *entity.Customer) error
	// List busca por nombre si search no es vacío.
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Customer, error)
	Delete(ctx context.Context, id string) error
}

// EmployeeRepository puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(ctx context.Context, e *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	Update(ctx context.Context, e *entity.Employee) error
	List(ctx context.Context, limit, offset int) ([]*entity.Employee, error)
	Delete(ctx context.Context, id string) error
}
