package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/panasystem/panasystem-api/internal/domain/entity"
)

// ProductFilter criterios de búsqueda para el listado de productos.
type ProductFilter struct {
	Search     string // busca en nombre y código de barras
	CategoryID string
	SupplierID string
	Limit      int
	Offset     int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Update no toca precios ni stock: los precios se escriben solo vía
// UpdatePrices (con su fila en price_history a cargo del caso de uso) y el
// stock solo vía UpdateStock.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdatePrices(ctx context.Context, productID string, public decimal.Decimal, wholesale *decimal.Decimal) error
	UpdateStock(ctx context.Context, productID string, stock *decimal.Decimal) error
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
}

// PriceHistoryRepository puerto del historial de precios (append-only).
type PriceHistoryRepository interface {
	Create(ctx context.Context, h *entity.PriceHistory) error
	// ListByProduct devuelve el historial del más reciente al más antiguo.
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.PriceHistory, error)
}

// CategoryRepository puerto de persistencia para Category.
type CategoryRepository interface {
	Create(ctx context.Context, c *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	Update(ctx context.Context, c *entity.Category) error
	List(ctx context.Context, limit, offset int) ([]*entity.Category, error)
	Delete(ctx context.Context, id string) error
}

// BrandRepository puerto de persistencia para Brand.
type BrandRepository interface {
	Create(ctx context.Context, b *entity.Brand) error
	GetByID(ctx context.Context, id string) (*entity.Brand, error)
	Update(ctx context.Context, b *entity.Brand) error
	List(ctx context.Context, limit, offset int) ([]*entity.Brand, error)
	Delete(ctx context.Context, id string) error
}
