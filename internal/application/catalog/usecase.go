package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/panasystem/panasystem-api/internal/application/dto"
	"github.com/panasystem/panasystem-api/internal/domain"
	"github.com/panasystem/panasystem-api/internal/domain/entity"
	"github.com/panasystem/panasystem-api/internal/domain/repository"
)

// ProductUseCase administra el catálogo: CRUD de productos, versionado de
// precios e historial. El stock y los precios nunca se escriben directo desde
// el request: pasan por UpdatePriceInTx / DecrementStockInTx.
type ProductUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	historyRepo  repository.PriceHistoryRepository
	categoryRepo repository.CategoryRepository
	brandRepo    repository.BrandRepository
	supplierRepo repository.SupplierRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	historyRepo repository.PriceHistoryRepository,
	categoryRepo repository.CategoryRepository,
	brandRepo repository.BrandRepository,
	supplierRepo repository.SupplierRepository,
) *ProductUseCase {
	return &ProductUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		historyRepo:  historyRepo,
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
		supplierRepo: supplierRepo,
	}
}

// Create da de alta un producto y registra la primera fila del historial de
// precios (siempre, aunque no haya precio mayorista). Producto e historial
// quedan en la misma transacción.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Category == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.PublicPrice.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.WholesalePrice != nil && !in.WholesalePrice.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.CurrentStock != nil && in.CurrentStock.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkRefs(ctx, in.Category, in.Brand, in.Supplier); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		Barcode:        in.Barcode,
		Name:           in.Name,
		CategoryID:     in.Category,
		BrandID:        in.Brand,
		SupplierID:     in.Supplier,
		PublicPrice:    in.PublicPrice,
		WholesalePrice: in.WholesalePrice,
		CurrentStock:   in.CurrentStock,
		Description:    in.Description,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := uc.txRunner.RunCatalog(ctx, func(
		productRepo repository.ProductRepository,
		historyRepo repository.PriceHistoryRepository,
	) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		// El alta de producto equivale a una primera invocación de
		// update_price: el historial arranca con los valores iniciales.
		return historyRepo.Create(ctx, &entity.PriceHistory{
			ID:             uuid.New().String(),
			ProductID:      product.ID,
			PublicPrice:    product.PublicPrice,
			WholesalePrice: product.WholesalePrice,
			CreatedAt:      now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update aplica una actualización parcial. Si cambia el precio público, o se
// envía explícitamente un precio mayorista distinto, el cambio pasa por
// UpdatePriceInTx y suma una fila al historial. El stock enviado aquí es una
// corrección manual (reposición); las ventas lo descuentan por su lado.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Barcode != nil {
		product.Barcode = in.Barcode
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		product.CategoryID = *in.Category
	}
	if in.Brand != nil {
		product.BrandID = in.Brand
	}
	if in.Supplier != nil {
		product.SupplierID = in.Supplier
	}
	if err := uc.checkRefs(ctx, product.CategoryID, product.BrandID, product.SupplierID); err != nil {
		return nil, err
	}
	if in.CurrentStock != nil && in.CurrentStock.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	newPublic := product.PublicPrice
	if in.PublicPrice != nil {
		newPublic = *in.PublicPrice
	}
	newWholesale := product.WholesalePrice
	if in.WholesalePrice != nil {
		newWholesale = in.WholesalePrice
	}
	priceChanged := !newPublic.Equal(product.PublicPrice) ||
		(in.WholesalePrice != nil && !decimalPtrEqual(in.WholesalePrice, product.WholesalePrice))

	product.UpdatedAt = time.Now()
	err = uc.txRunner.RunCatalog(ctx, func(
		productRepo repository.ProductRepository,
		historyRepo repository.PriceHistoryRepository,
	) error {
		if err := productRepo.Update(ctx, product); err != nil {
			return err
		}
		if in.CurrentStock != nil {
			product.CurrentStock = in.CurrentStock
			if err := productRepo.UpdateStock(ctx, product.ID, product.CurrentStock); err != nil {
				return err
			}
		}
		if priceChanged {
			return UpdatePriceInTx(ctx, productRepo, historyRepo, product, newPublic, newWholesale)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID devuelve un producto o ErrNotFound.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista productos con búsqueda por nombre/código de barras y filtros.
func (uc *ProductUseCase) List(ctx context.Context, filter repository.ProductFilter) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Delete elimina un producto. Sus líneas de venta, líneas de pedido e
// historial de precios caen en cascada.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(ctx, id)
}

// PriceHistory devuelve el historial de precios, del más reciente al más antiguo.
func (uc *ProductUseCase) PriceHistory(ctx context.Context, productID string, limit, offset int) ([]dto.PriceHistoryResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	rows, err := uc.historyRepo.ListByProduct(ctx, productID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PriceHistoryResponse, 0, len(rows))
	for _, h := range rows {
		out = append(out, dto.PriceHistoryResponse{
			ID:             h.ID,
			ProductID:      h.ProductID,
			PublicPrice:    h.PublicPrice,
			WholesalePrice: h.WholesalePrice,
			CreatedAt:      h.CreatedAt,
		})
	}
	return out, nil
}

// checkRefs valida que categoría (obligatoria), marca y proveedor (opcionales) existan.
func (uc *ProductUseCase) checkRefs(ctx context.Context, categoryID string, brandID, supplierID *string) error {
	cat, err := uc.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if cat == nil {
		return domain.ErrNotFound
	}
	if brandID != nil {
		b, err := uc.brandRepo.GetByID(ctx, *brandID)
		if err != nil {
			return err
		}
		if b == nil {
			return domain.ErrNotFound
		}
	}
	if supplierID != nil {
		s, err := uc.supplierRepo.GetByID(ctx, *supplierID)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

func decimalPtrEqual(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:             p.ID,
		Barcode:        p.Barcode,
		Name:           p.Name,
		Category:       p.CategoryID,
		Brand:          p.BrandID,
		Supplier:       p.SupplierID,
		PublicPrice:    p.PublicPrice,
		WholesalePrice: p.WholesalePrice,
		CurrentStock:   p.CurrentStock,
		Description:    p.Description,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
