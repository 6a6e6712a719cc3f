package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/panasystem/panasystem-api/internal/application/dto"
	"github.com/panasystem/panasystem-api/internal/domain"
	"github.com/panasystem/panasystem-api/internal/domain/entity"
	"github.com/panasystem/panasystem-api/internal/domain/repository"
)

// OrdersTxRunner ejecuta fn dentro de una transacción con el repositorio de
// pedidos ligado a ella.
type OrdersTxRunner interface {
	RunOrders(ctx context.Context, fn func(orderRepo repository.SupplierOrderRepository) error) error
}

// SupplierOrderUseCase gestiona pedidos a proveedores. Cabecera y líneas se
// escriben en una sola transacción; el total siempre se recalcula a partir de
// las líneas, nunca lo fija el cliente.
type SupplierOrderUseCase struct {
	txRunner     OrdersTxRunner
	orderRepo    repository.SupplierOrderRepository
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
}

// NewSupplierOrderUseCase construye el caso de uso.
func NewSupplierOrderUseCase(
	txRunner OrdersTxRunner,
	orderRepo repository.SupplierOrderRepository,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
) *SupplierOrderUseCase {
	return &SupplierOrderUseCase{
		txRunner:     txRunner,
		orderRepo:    orderRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
	}
}

// Create da de alta un pedido con sus líneas.
func (uc *SupplierOrderUseCase) Create(ctx context.Context, in dto.SupplierOrderRequest) (*dto.SupplierOrderResponse, error) {
	if err := uc.validate(ctx, in); err != nil {
		return nil, err
	}

	now := time.Now()
	order := &entity.SupplierOrder{
		ID:            uuid.New().String(),
		Date:          now,
		SupplierID:    in.Supplier,
		PaymentMethod: in.PaymentMethod,
		Wholesale:     in.Wholesale,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if in.Date != nil {
		order.Date = *in.Date
	}

	var details []*entity.SupplierOrderDetail
	err := uc.txRunner.RunOrders(ctx, func(orderRepo repository.SupplierOrderRepository) error {
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}
		var err error
		details, err = uc.writeDetails(ctx, orderRepo, order, in.Details)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, details), nil
}

// Update reemplaza la cabecera y, si vienen líneas, todas las líneas.
func (uc *SupplierOrderUseCase) Update(ctx context.Context, id string, in dto.SupplierOrderRequest) (*dto.SupplierOrderResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.validate(ctx, in); err != nil {
		return nil, err
	}

	order.SupplierID = in.Supplier
	order.PaymentMethod = in.PaymentMethod
	order.Wholesale = in.Wholesale
	if in.Date != nil {
		order.Date = *in.Date
	}
	order.UpdatedAt = time.Now()

	var details []*entity.SupplierOrderDetail
	err = uc.txRunner.RunOrders(ctx, func(orderRepo repository.SupplierOrderRepository) error {
		if err := orderRepo.DeleteDetailsByOrder(ctx, order.ID); err != nil {
			return err
		}
		var err error
		details, err = uc.writeDetails(ctx, orderRepo, order, in.Details)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, details), nil
}

func (uc *SupplierOrderUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierOrderResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.orderRepo.ListDetailsByOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, details), nil
}

func (uc *SupplierOrderUseCase) List(ctx context.Context, limit, offset int) ([]dto.SupplierOrderResponse, error) {
	orders, err := uc.orderRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierOrderResponse, 0, len(orders))
	for _, o := range orders {
		details, err := uc.orderRepo.ListDetailsByOrder(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *toOrderResponse(o, details))
	}
	return out, nil
}

func (uc *SupplierOrderUseCase) Delete(ctx context.Context, id string) error {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.orderRepo.Delete(ctx, id)
}

func (uc *SupplierOrderUseCase) validate(ctx context.Context, in dto.SupplierOrderRequest) error {
	if in.Supplier == "" {
		return fmt.Errorf("el pedido requiere proveedor: %w", domain.ErrInvalidInput)
	}
	if in.PaymentMethod != "" && !entity.ValidPaymentMethod(in.PaymentMethod) {
		return fmt.Errorf("método de pago %q desconocido: %w", in.PaymentMethod, domain.ErrInvalidInput)
	}
	s, err := uc.supplierRepo.GetByID(ctx, in.Supplier)
	if err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("proveedor con id %s no existe: %w", in.Supplier, domain.ErrInvalidInput)
	}
	for _, d := range in.Details {
		if d.Quantity.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("la cantidad debe ser mayor a cero: %w", domain.ErrInvalidInput)
		}
		p, err := uc.productRepo.GetByID(ctx, d.Product)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("producto con id %s no existe: %w", d.Product, domain.ErrInvalidInput)
		}
	}
	return nil
}

// writeDetails persiste las líneas del pedido y actualiza el total de la
// cabecera con la suma exacta de los subtotales.
func (uc *SupplierOrderUseCase) writeDetails(
	ctx context.Context,
	orderRepo repository.SupplierOrderRepository,
	order *entity.SupplierOrder,
	lines []dto.SupplierOrderDetailRequest,
) ([]*entity.SupplierOrderDetail, error) {
	details := make([]*entity.SupplierOrderDetail, 0, len(lines))
	total := decimal.Zero
	for _, l := range lines {
		d := &entity.SupplierOrderDetail{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			ProductID: l.Product,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		}
		d.ComputeSubtotal()
		if err := orderRepo.CreateDetail(ctx, d); err != nil {
			return nil, err
		}
		details = append(details, d)
		total = total.Add(d.Subtotal)
	}
	order.Total = total
	if err := orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return details, nil
}

func toOrderResponse(o *entity.SupplierOrder, details []*entity.SupplierOrderDetail) *dto.SupplierOrderResponse {
	out := &dto.SupplierOrderResponse{
		ID:            o.ID,
		Date:          o.Date,
		Supplier:      o.SupplierID,
		PaymentMethod: o.PaymentMethod,
		Wholesale:     o.Wholesale,
		Total:         o.Total,
		Details:       make([]dto.SupplierOrderDetailResponse, 0, len(details)),
		CreatedAt:     o.CreatedAt,
	}
	for _, d := range details {
		out.Details = append(out.Details, dto.SupplierOrderDetailResponse{
			ID:        d.ID,
			Product:   d.ProductID,
			Quantity:  d.Quantity,
			UnitPrice: d.UnitPrice,
			Subtotal:  d.Subtotal,
		})
	}
	return out
}
