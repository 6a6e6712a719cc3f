package catalog_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/panasystem/panasystem-api/internal/application/catalog"
	"github.com/panasystem/panasystem-api/internal/domain/entity"
	"github.com/panasystem/panasystem-api/internal/domain/repository"
)

// Dobles de test en memoria para el catálogo. El historial conserva el orden
// de inserción y lo devuelve invertido, igual que el ORDER BY created_at DESC
// del repo real.

var (
	_ repository.ProductRepository      = (*fakeProductRepo)(nil)
	_ repository.PriceHistoryRepository = (*fakeHistoryRepo)(nil)
	_ repository.CategoryRepository     = (*fakeCategoryRepo)(nil)
	_ repository.BrandRepository        = (*fakeBrandRepo)(nil)
	_ repository.SupplierRepository     = (*fakeSupplierRepo)(nil)
	_ catalog.TxRunner                  = (*fakeTxRunner)(nil)
)

// ── fakeProductRepo ───────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func cloneProduct(p *entity.Product) *entity.Product {
	c := *p
	if p.Barcode != nil {
		v := *p.Barcode
		c.Barcode = &v
	}
	if p.BrandID != nil {
		v := *p.BrandID
		c.BrandID = &v
	}
	if p.SupplierID != nil {
		v := *p.SupplierID
		c.SupplierID = &v
	}
	if p.WholesalePrice != nil {
		v := *p.WholesalePrice
		c.WholesalePrice = &v
	}
	if p.CurrentStock != nil {
		v := *p.CurrentStock
		c.CurrentStock = &v
	}
	return &c
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = cloneProduct(p)
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return cloneProduct(p), nil
}

func (r *fakeProductRepo) GetByBarcode(_ context.Context, barcode string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Barcode != nil && *p.Barcode == barcode {
			return cloneProduct(p), nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	stored, ok := r.products[p.ID]
	if !ok {
		return nil
	}
	c := cloneProduct(p)
	// Igual que el repo real: Update no toca precios ni stock.
	c.PublicPrice = stored.PublicPrice
	c.WholesalePrice = stored.WholesalePrice
	c.CurrentStock = stored.CurrentStock
	r.products[p.ID] = c
	return nil
}

func (r *fakeProductRepo) UpdatePrices(_ context.Context, productID string, public decimal.Decimal, wholesale *decimal.Decimal) error {
	p, ok := r.products[productID]
	if !ok {
		return nil
	}
	p.PublicPrice = public
	if wholesale != nil {
		v := *wholesale
		p.WholesalePrice = &v
	} else {
		p.WholesalePrice = nil
	}
	return nil
}

func (r *fakeProductRepo) UpdateStock(_ context.Context, productID string, stock *decimal.Decimal) error {
	p, ok := r.products[productID]
	if !ok {
		return nil
	}
	if stock != nil {
		v := *stock
		p.CurrentStock = &v
	} else {
		p.CurrentStock = nil
	}
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, _ repository.ProductFilter) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, cloneProduct(p))
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(r.products, id)
	return nil
}

// ── fakeHistoryRepo ───────────────────────────────────────────────────────────

type fakeHistoryRepo struct {
	rows []*entity.PriceHistory
}

func (r *fakeHistoryRepo) Create(_ context.Context, h *entity.PriceHistory) error {
	c := *h
	if h.WholesalePrice != nil {
		v := *h.WholesalePrice
		c.WholesalePrice = &v
	}
	r.rows = append(r.rows, &c)
	return nil
}

func (r *fakeHistoryRepo) ListByProduct(_ context.Context, productID string, limit, offset int) ([]*entity.PriceHistory, error) {
	var out []*entity.PriceHistory
	for i := len(r.rows) - 1; i >= 0; i-- {
		if r.rows[i].ProductID == productID {
			c := *r.rows[i]
			out = append(out, &c)
		}
	}
	if offset > 0 {
		if offset >= len(out) {
			return nil, nil
		}
		out = out[offset:]
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// ── Repos de referencia ───────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	return r.categories[id], nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) List(_ context.Context, _, _ int) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	delete(r.categories, id)
	return nil
}

type fakeBrandRepo struct {
	brands map[string]*entity.Brand
}

func (r *fakeBrandRepo) Create(_ context.Context, b *entity.Brand) error {
	r.brands[b.ID] = b
	return nil
}

func (r *fakeBrandRepo) GetByID(_ context.Context, id string) (*entity.Brand, error) {
	return r.brands[id], nil
}

func (r *fakeBrandRepo) Update(_ context.Context, b *entity.Brand) error {
	r.brands[b.ID] = b
	return nil
}

func (r *fakeBrandRepo) List(_ context.Context, _, _ int) ([]*entity.Brand, error) {
	out := make([]*entity.Brand, 0, len(r.brands))
	for _, b := range r.brands {
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBrandRepo) Delete(_ context.Context, id string) error {
	delete(r.brands, id)
	return nil
}

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (r *fakeSupplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *fakeSupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	return r.suppliers[id], nil
}

func (r *fakeSupplierRepo) Update(_ context.Context, s *entity.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *fakeSupplierRepo) List(_ context.Context, _, _ int) ([]*entity.Supplier, error) {
	out := make([]*entity.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSupplierRepo) Delete(_ context.Context, id string) error {
	delete(r.suppliers, id)
	return nil
}

// ── fakeTxRunner ──────────────────────────────────────────────────────────────

type fakeTxRunner struct {
	productRepo *fakeProductRepo
	historyRepo *fakeHistoryRepo
}

func (r *fakeTxRunner) RunCatalog(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	historyRepo repository.PriceHistoryRepository,
) error) error {
	return fn(r.productRepo, r.historyRepo)
}
