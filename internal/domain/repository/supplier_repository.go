package repository

import (
	"context"

	"github.com/panasystem/panasystem-api/internal/domain/entity"
)

// SupplierRepository puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(ctx context.Context, s *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	Update(ctx context.Context, s *entity.Supplier) error
	List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error)
	Delete(ctx context.Context, id string) error
}

// SupplierOrderRepository puerto para pedidos a proveedores y sus líneas.
// Delete elimina también los detalles (cascada).
type SupplierOrderRepository interface {
	Create(ctx context.Context, o *entity.SupplierOrder) error
	GetByID(ctx context.Context, id string) (*entity.SupplierOrder, error)
	Update(ctx context.Context, o *entity.SupplierOrder) error
	List(ctx context.Context, limit, offset int) ([]*entity.SupplierOrder, error)
	Delete(ctx context.Context, id string) error

	CreateDetail(ctx context.Context, d *entity.SupplierOrderDetail) error
	ListDetailsByOrder(ctx context.Context, orderID string) ([]*entity.SupplierOrderDetail, error)
	DeleteDetailsByOrder(ctx context.Context, orderID string) error
}
