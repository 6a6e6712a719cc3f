package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/panasystem/panasystem-api/internal/domain"
	"github.com/panasystem/panasystem-api/internal/domain/entity"
	"github.com/panasystem/panasystem-api/internal/domain/repository"
)

// UpdatePriceInTx fija los precios del producto, los persiste y agrega una
// fila al historial con los valores nuevos. El historial crece siempre, aunque
// los valores no cambien: es un libro de auditoría append-only.
// Debe invocarse con repositorios atados a la transacción en curso.
func UpdatePriceInTx(
	ctx context.Context,
	productRepo repository.ProductRepository,
	historyRepo repository.PriceHistoryRepository,
	product *entity.Product,
	public decimal.Decimal,
	wholesale *decimal.Decimal,
) error {
	if !public.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if wholesale != nil && !wholesale.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	product.PublicPrice = public
	product.WholesalePrice = wholesale
	if err := productRepo.UpdatePrices(ctx, product.ID, public, wholesale); err != nil {
		return err
	}
	return historyRepo.Create(ctx, &entity.PriceHistory{
		ID:             uuid.New().String(),
		ProductID:      product.ID,
		PublicPrice:    public,
		WholesalePrice: wholesale,
		CreatedAt:      time.Now(),
	})
}

// DecrementStockInTx descuenta stock tras una venta. Si el producto no lleva
// control de stock (CurrentStock nil) la operación es un no-op exitoso. Si el
// stock es insuficiente devuelve ErrInsufficientStock sin modificar nada.
func DecrementStockInTx(
	ctx context.Context,
	productRepo repository.ProductRepository,
	product *entity.Product,
	quantity decimal.Decimal,
) error {
	if product.CurrentStock == nil {
		return nil
	}
	if product.CurrentStock.LessThan(quantity) {
		return domain.ErrInsufficientStock
	}
	remaining := product.CurrentStock.Sub(quantity)
	product.CurrentStock = &remaining
	return productRepo.UpdateStock(ctx, product.ID, product.CurrentStock)
}
