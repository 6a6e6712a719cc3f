package sales_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/panasystem/panasystem-api/internal/application/sales"
	"github.com/panasystem/panasystem-api/internal/domain/entity"
	"github.com/panasystem/panasystem-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test en memoria. El fakeTxRunner imita la semántica transaccional
// real: toma un snapshot de los repos antes de ejecutar fn y lo restaura si fn
// falla, así los tests pueden verificar que un lote fallido no deja rastro.
// ──────────────────────────────────────────────────────────────────────────────

var (
	_ repository.SaleRepository     = (*fakeSaleRepo)(nil)
	_ repository.ProductRepository  = (*fakeProductRepo)(nil)
	_ repository.CustomerRepository = (*fakeCustomerRepo)(nil)
	_ sales.TxRunner                = (*fakeTxRunner)(nil)
)

// ── fakeSaleRepo ──────────────────────────────────────────────────────────────

type fakeSaleRepo struct {
	ids     []string
	sales   map[string]*entity.Sale
	details map[string][]*entity.SaleDetail
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{
		sales:   make(map[string]*entity.Sale),
		details: make(map[string][]*entity.SaleDetail),
	}
}

func cloneSale(s *entity.Sale) *entity.Sale {
	c := *s
	if s.CustomerID != nil {
		v := *s.CustomerID
		c.CustomerID = &v
	}
	if s.Total != nil {
		v := *s.Total
		c.Total = &v
	}
	if s.TotalCharged != nil {
		v := *s.TotalCharged
		c.TotalCharged = &v
	}
	return &c
}

func (r *fakeSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	r.ids = append(r.ids, sale.ID)
	r.sales[sale.ID] = cloneSale(sale)
	return nil
}

func (r *fakeSaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	return cloneSale(s), nil
}

func (r *fakeSaleRepo) Update(_ context.Context, sale *entity.Sale) error {
	r.sales[sale.ID] = cloneSale(sale)
	return nil
}

func (r *fakeSaleRepo) List(_ context.Context, filter repository.SaleFilter) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, id := range r.ids {
		s, ok := r.sales[id]
		if !ok {
			continue
		}
		if filter.PaymentMethod != "" && s.PaymentMethod != filter.PaymentMethod {
			continue
		}
		if filter.IsBakery != nil && s.IsBakery != *filter.IsBakery {
			continue
		}
		if filter.Delivered != nil && s.Delivered != *filter.Delivered {
			continue
		}
		if filter.DateFrom != nil && s.Date.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && !s.Date.Before(*filter.DateTo) {
			continue
		}
		out = append(out, cloneSale(s))
	}
	return out, nil
}

func (r *fakeSaleRepo) Delete(_ context.Context, id string) error {
	delete(r.sales, id)
	delete(r.details, id)
	return nil
}

func (r *fakeSaleRepo) CreateDetail(_ context.Context, detail *entity.SaleDetail) error {
	d := *detail
	r.details[detail.SaleID] = append(r.details[detail.SaleID], &d)
	return nil
}

func (r *fakeSaleRepo) ListDetailsBySale(_ context.Context, saleID string) ([]*entity.SaleDetail, error) {
	out := make([]*entity.SaleDetail, 0, len(r.details[saleID]))
	for _, d := range r.details[saleID] {
		c := *d
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeSaleRepo) DeleteDetailsBySale(_ context.Context, saleID string) error {
	delete(r.details, saleID)
	return nil
}

func (r *fakeSaleRepo) Totals(_ context.Context, filter repository.TotalsFilter) (int64, decimal.Decimal, error) {
	var count int64
	sum := decimal.Zero
	for _, s := range r.sales {
		if s.Date.Before(filter.DateFrom) || !s.Date.Before(filter.DateTo) {
			continue
		}
		if filter.IsBakery != nil && s.IsBakery != *filter.IsBakery {
			continue
		}
		if filter.PaymentMethod != "" && s.PaymentMethod != filter.PaymentMethod {
			continue
		}
		count++
		if s.Total != nil {
			sum = sum.Add(*s.Total)
		}
	}
	return count, sum, nil
}

type saleSnapshot struct {
	ids     []string
	sales   map[string]*entity.Sale
	details map[string][]*entity.SaleDetail
}

func (r *fakeSaleRepo) snapshot() saleSnapshot {
	snap := saleSnapshot{
		ids:     append([]string(nil), r.ids...),
		sales:   make(map[string]*entity.Sale, len(r.sales)),
		details: make(map[string][]*entity.SaleDetail, len(r.details)),
	}
	for id, s := range r.sales {
		snap.sales[id] = cloneSale(s)
	}
	for id, ds := range r.details {
		cp := make([]*entity.SaleDetail, 0, len(ds))
		for _, d := range ds {
			c := *d
			cp = append(cp, &c)
		}
		snap.details[id] = cp
	}
	return snap
}

func (r *fakeSaleRepo) restore(snap saleSnapshot) {
	r.ids = snap.ids
	r.sales = snap.sales
	r.details = snap.details
}

// ── fakeProductRepo ───────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		r.products[p.ID] = cloneProduct(p)
	}
	return r
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

func (r *fakeProductRepo) snapshot() map[string]*entity.Product {
	snap := make(map[string]*entity.Product, len(r.products))
	for id, p := range r.products {
		snap[id] = cloneProduct(p)
	}
	return snap
}

func (r *fakeProductRepo) restore(snap map[string]*entity.Product) {
	r.products = snap
}

// ── fakeCustomerRepo ──────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newFakeCustomerRepo(customers ...*entity.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{customers: make(map[string]*entity.Customer)}
	for _, c := range customers {
		cc := *c
		r.customers[c.ID] = &cc
	}
	return r
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	cc := *c
	r.customers[c.ID] = &cc
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	cc := *c
	return &cc, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	cc := *c
	r.customers[c.ID] = &cc
	return nil
}

func (r *fakeCustomerRepo) List(_ context.Context, _ string, _, _ int) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		cc := *c
		out = append(out, &cc)
	}
	return out, nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id string) error {
	delete(r.customers, id)
	return nil
}

// ── fakeTxRunner ──────────────────────────────────────────────────────────────

type fakeTxRunner struct {
	saleRepo    *fakeSaleRepo
	productRepo *fakeProductRepo
}

func (r *fakeTxRunner) RunSales(_ context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
) error) error {
	saleSnap := r.saleRepo.snapshot()
	productSnap := r.productRepo.snapshot()
	if err := fn(r.saleRepo, r.productRepo); err != nil {
		r.saleRepo.restore(saleSnap)
		r.productRepo.restore(productSnap)
		return err
	}
	return nil
}
