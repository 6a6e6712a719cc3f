package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panasystem/panasystem-api/internal/application/dto"
	"github.com/panasystem/panasystem-api/internal/application/usecase"
	"github.com/panasystem/panasystem-api/internal/domain"
	"github.com/panasystem/panasystem-api/internal/domain/entity"
	"github.com/panasystem/panasystem-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles mínimos: los pedidos solo necesitan GetByID de productos y
// proveedores, el resto de los métodos no se ejercita acá.
// ──────────────────────────────────────────────────────────────────────────────

var (
	_ repository.SupplierOrderRepository = (*fakeOrderRepo)(nil)
	_ usecase.OrdersTxRunner             = (*fakeOrdersTx)(nil)
)

type fakeOrderRepo struct {
	orders  map[string]*entity.SupplierOrder
	details map[string][]*entity.SupplierOrderDetail
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:  make(map[string]*entity.SupplierOrder),
		details: make(map[string][]*entity.SupplierOrderDetail),
	}
}

func (r *fakeOrderRepo) Create(_ context.Context, o *entity.SupplierOrder) error {
	c := *o
	r.orders[o.ID] = &c
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.SupplierOrder, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	c := *o
	return &c, nil
}

func (r *fakeOrderRepo) Update(_ context.Context, o *entity.SupplierOrder) error {
	c := *o
	r.orders[o.ID] = &c
	return nil
}

func (r *fakeOrderRepo) List(_ context.Context, _, _ int) ([]*entity.SupplierOrder, error) {
	out := make([]*entity.SupplierOrder, 0, len(r.orders))
	for _, o := range r.orders {
		c := *o
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id string) error {
	delete(r.orders, id)
	delete(r.details, id)
	return nil
}

func (r *fakeOrderRepo) CreateDetail(_ context.Context, d *entity.SupplierOrderDetail) error {
	c := *d
	r.details[d.OrderID] = append(r.details[d.OrderID], &c)
	return nil
}

func (r *fakeOrderRepo) ListDetailsByOrder(_ context.Context, orderID string) ([]*entity.SupplierOrderDetail, error) {
	out := make([]*entity.SupplierOrderDetail, 0, len(r.details[orderID]))
	for _, d := range r.details[orderID] {
		c := *d
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeOrderRepo) DeleteDetailsByOrder(_ context.Context, orderID string) error {
	delete(r.details, orderID)
	return nil
}

type fakeOrdersTx struct {
	orderRepo *fakeOrderRepo
}

func (r *fakeOrdersTx) RunOrders(_ context.Context, fn func(orderRepo repository.SupplierOrderRepository) error) error {
	return fn(r.orderRepo)
}

// fakeSupplierByID y fakeProductByID implementan solo GetByID con datos fijos.

type fakeSupplierByID struct {
	repository.SupplierRepository
	suppliers map[string]*entity.Supplier
}

func (r *fakeSupplierByID) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	return r.suppliers[id], nil
}

type fakeProductByID struct {
	repository.ProductRepository
	products map[string]*entity.Product
}

func (r *fakeProductByID) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.products[id], nil
}

func newOrderUC() (*usecase.SupplierOrderUseCase, *fakeOrderRepo) {
	orderRepo := newFakeOrderRepo()
	supplierRepo := &fakeSupplierByID{suppliers: map[string]*entity.Supplier{
		"sup-molino": {ID: "sup-molino", Name: "Molino del centro"},
	}}
	productRepo := &fakeProductByID{products: map[string]*entity.Product{
		"prod-harina": {ID: "prod-harina", Name: "Harina 000", PublicPrice: decimal.RequireFromString("900")},
		"prod-grasa":  {ID: "prod-grasa", Name: "Grasa vacuna", PublicPrice: decimal.RequireFromString("1500")},
	}}
	uc := usecase.NewSupplierOrderUseCase(&fakeOrdersTx{orderRepo: orderRepo}, orderRepo, supplierRepo, productRepo)
	return uc, orderRepo
}

func orderRequest() dto.SupplierOrderRequest {
	return dto.SupplierOrderRequest{
		Supplier:      "sup-molino",
		PaymentMethod: entity.PaymentTransfer,
		Wholesale:     true,
		Details: []dto.SupplierOrderDetailRequest{
			{Product: "prod-harina", Quantity: decimal.RequireFromString("25"), UnitPrice: decimal.RequireFromString("850.50")},
			{Product: "prod-grasa", Quantity: decimal.RequireFromString("2"), UnitPrice: decimal.RequireFromString("1400")},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// El total del pedido siempre se deriva de las líneas: 25×850.50 + 2×1400.
func TestSupplierOrderCreate_TotalDerivado(t *testing.T) {
	uc, _ := newOrderUC()

	out, err := uc.Create(context.Background(), orderRequest())
	require.NoError(t, err)
	require.Len(t, out.Details, 2)
	assert.True(t, out.Details[0].Subtotal.Equal(decimal.RequireFromString("21262.50")))
	assert.True(t, out.Details[1].Subtotal.Equal(decimal.RequireFromString("2800")))
	assert.True(t, out.Total.Equal(decimal.RequireFromString("24062.50")))
	assert.True(t, out.Wholesale)
}

func TestSupplierOrderCreate_Validaciones(t *testing.T) {
	uc, _ := newOrderUC()

	req := orderRequest()
	req.Supplier = ""
	_, err := uc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "proveedor requerido")

	req = orderRequest()
	req.Supplier = "sup-fantasma"
	_, err = uc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "proveedor inexistente")

	req = orderRequest()
	req.PaymentMethod = "cheque"
	_, err = uc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "método de pago desconocido")

	req = orderRequest()
	req.Details[0].Quantity = decimal.Zero
	_, err = uc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad positiva")

	req = orderRequest()
	req.Details[0].Product = "prod-fantasma"
	_, err = uc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "producto inexistente")
}

func TestSupplierOrderCreate_SinMetodoDePagoEsValido(t *testing.T) {
	uc, _ := newOrderUC()
	req := orderRequest()
	req.PaymentMethod = ""
	_, err := uc.Create(context.Background(), req)
	assert.NoError(t, err, "el método de pago del pedido es opcional")
}

// Update reemplaza todas las líneas y recalcula el total.
func TestSupplierOrderUpdate_ReemplazaLineas(t *testing.T) {
	uc, orderRepo := newOrderUC()
	created, err := uc.Create(context.Background(), orderRequest())
	require.NoError(t, err)

	req := orderRequest()
	req.Details = []dto.SupplierOrderDetailRequest{
		{Product: "prod-grasa", Quantity: decimal.RequireFromString("1"), UnitPrice: decimal.RequireFromString("1450")},
	}
	out, err := uc.Update(context.Background(), created.ID, req)
	require.NoError(t, err)
	require.Len(t, out.Details, 1)
	assert.True(t, out.Total.Equal(decimal.RequireFromString("1450")))

	stored, err := orderRepo.ListDetailsByOrder(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestSupplierOrderUpdate_NoExiste(t *testing.T) {
	uc, _ := newOrderUC()
	_, err := uc.Update(context.Background(), "nope", orderRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSupplierOrderDelete(t *testing.T) {
	uc, _ := newOrderUC()
	created, err := uc.Create(context.Background(), orderRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))
	_, err = uc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
