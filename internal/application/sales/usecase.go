package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/panasystem/panasystem-api/internal/application/catalog"
	"github.com/panasystem/panasystem-api/internal/application/dto"
	"github.com/panasystem/panasystem-api/internal/domain"
	"github.com/panasystem/panasystem-api/internal/domain/entity"
	"github.com/panasystem/panasystem-api/internal/domain/repository"
)

// SaleUseCase orquesta el ciclo de vida de las ventas: alta en lote atómica
// con resolución de precios y descuento de stock, actualización parcial con
// reemplazo total de líneas, listados con filtros, totales y ticket PDF.
type SaleUseCase struct {
	txRunner     TxRunner
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	receiptGen   ReceiptPDFGenerator
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	txRunner TxRunner,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	receiptGen ReceiptPDFGenerator,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner:     txRunner,
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		receiptGen:   receiptGen,
	}
}

// CreateSales crea una o varias ventas en una sola transacción. Por cada
// línea resuelve el precio unitario (mayorista si la venta es de panadería y
// el producto lo tiene) y descuenta stock. Cualquier fallo — producto
// inexistente, cantidad inválida, stock insuficiente — revierte el lote
// completo, no solo la venta ofensora.
func (uc *SaleUseCase) CreateSales(ctx context.Context, batch []dto.CreateSaleRequest) ([]dto.SaleResponse, error) {
	if len(batch) == 0 {
		return nil, domain.ErrInvalidInput
	}

	// Validación de cabeceras fuera de la tx (solo lectura).
	for i := range batch {
		if err := uc.validateHeader(ctx, &batch[i]); err != nil {
			return nil, err
		}
	}

	var responses []dto.SaleResponse
	err := uc.txRunner.RunSales(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		responses = responses[:0]
		for i := range batch {
			resp, err := uc.createOneInTx(ctx, saleRepo, productRepo, &batch[i])
			if err != nil {
				return err
			}
			responses = append(responses, *resp)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return responses, nil
}

// validateHeader valida método de pago, montos informados y cliente referenciado.
func (uc *SaleUseCase) validateHeader(ctx context.Context, in *dto.CreateSaleRequest) error {
	if in.PaymentMethod == "" {
		in.PaymentMethod = entity.PaymentCash
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return fmt.Errorf("método de pago %q desconocido: %w", in.PaymentMethod, domain.ErrInvalidInput)
	}
	if in.Total != nil && !in.Total.GreaterThan(decimal.Zero) {
		return fmt.Errorf("total debe ser mayor a cero: %w", domain.ErrInvalidInput)
	}
	if in.TotalCharged != nil && in.TotalCharged.IsNegative() {
		return fmt.Errorf("total_charged no puede ser negativo: %w", domain.ErrInvalidInput)
	}
	// Venta rápida: sin líneas, el total del caller es obligatorio.
	if len(in.SaleDetails) == 0 && in.Total == nil {
		return fmt.Errorf("una venta sin detalles requiere total: %w", domain.ErrInvalidInput)
	}
	if in.Customer != nil {
		c, err := uc.customerRepo.GetByID(ctx, *in.Customer)
		if err != nil {
			return err
		}
		if c == nil {
			return fmt.Errorf("cliente con id %s no existe: %w", *in.Customer, domain.ErrNotFound)
		}
	}
	return nil
}

// createOneInTx persiste una venta del lote con sus líneas dentro de la tx.
func (uc *SaleUseCase) createOneInTx(
	ctx context.Context,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	in *dto.CreateSaleRequest,
) (*dto.SaleResponse, error) {
	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	delivered := true
	if in.Delivered != nil {
		delivered = *in.Delivered
	}

	sale := &entity.Sale{
		ID:            uuid.New().String(),
		Date:          date,
		CustomerID:    in.Customer,
		IsBakery:      in.IsBakery,
		PaymentMethod: in.PaymentMethod,
		Total:         in.Total,
		TotalCharged:  in.TotalCharged,
		Delivered:     delivered,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	details, err := uc.createDetailsInTx(ctx, saleRepo, productRepo, sale, in.SaleDetails)
	if err != nil {
		return nil, err
	}

	// calculate_total: con al menos una línea el total es la suma de
	// subtotales; sin líneas queda el total informado (venta rápida).
	if computed := entity.CalculateTotal(details); computed != nil {
		sale.Total = computed
	}
	// total_charged por defecto toma el total en el primer guardado; después
	// no se recalcula aunque el total cambie.
	if sale.TotalCharged == nil {
		sale.TotalCharged = sale.Total
	}
	if err := saleRepo.Update(ctx, sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale, details), nil
}

// createDetailsInTx resuelve precio, descuenta stock y persiste cada línea.
func (uc *SaleUseCase) createDetailsInTx(
	ctx context.Context,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	sale *entity.Sale,
	lines []dto.SaleDetailRequest,
) ([]*entity.SaleDetail, error) {
	details := make([]*entity.SaleDetail, 0, len(lines))
	for _, line := range lines {
		if !line.Quantity.GreaterThan(decimal.Zero) {
			return nil, fmt.Errorf("cantidad debe ser mayor a cero (producto %s): %w", line.Product, domain.ErrInvalidInput)
		}
		product, err := productRepo.GetByID(ctx, line.Product)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("producto con id %s no existe: %w", line.Product, domain.ErrInvalidInput)
		}

		unitPrice := entity.ResolveUnitPrice(sale.IsBakery, product)
		if err := catalog.DecrementStockInTx(ctx, productRepo, product, line.Quantity); err != nil {
			if err == domain.ErrInsufficientStock {
				return nil, fmt.Errorf("producto %s: %w", product.Name, domain.ErrInsufficientStock)
			}
			return nil, err
		}

		detail := &entity.SaleDetail{
			ID:        uuid.New().String(),
			SaleID:    sale.ID,
			ProductID: product.ID,
			Quantity:  line.Quantity,
			UnitPrice: unitPrice,
		}
		detail.ComputeSubtotal()
		if err := saleRepo.CreateDetail(ctx, detail); err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	return details, nil
}

// UpdateSale aplica una actualización parcial de cabecera. Si el request trae
// la clave sale_details, TODAS las líneas existentes se borran y reemplazan
// (sin diff incremental) y el total se recalcula; si no la trae, líneas y
// total quedan como estaban. total_charged solo cambia si el caller lo envía.
func (uc *SaleUseCase) UpdateSale(ctx context.Context, id string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}

	if in.Date != nil {
		sale.Date = *in.Date
	}
	if in.Customer != nil {
		c, err := uc.customerRepo.GetByID(ctx, *in.Customer)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, fmt.Errorf("cliente con id %s no existe: %w", *in.Customer, domain.ErrNotFound)
		}
		sale.CustomerID = in.Customer
	}
	if in.IsBakery != nil {
		sale.IsBakery = *in.IsBakery
	}
	if in.PaymentMethod != nil {
		if !entity.ValidPaymentMethod(*in.PaymentMethod) {
			return nil, fmt.Errorf("método de pago %q desconocido: %w", *in.PaymentMethod, domain.ErrInvalidInput)
		}
		sale.PaymentMethod = *in.PaymentMethod
	}
	if in.TotalCharged != nil {
		if in.TotalCharged.IsNegative() {
			return nil, fmt.Errorf("total_charged no puede ser negativo: %w", domain.ErrInvalidInput)
		}
		sale.TotalCharged = in.TotalCharged
	}
	// delivered se alterna libremente: no hay máquina de estados.
	if in.Delivered != nil {
		sale.Delivered = *in.Delivered
	}
	sale.UpdatedAt = time.Now()

	var details []*entity.SaleDetail
	if in.SaleDetails == nil {
		if err := uc.saleRepo.Update(ctx, sale); err != nil {
			return nil, err
		}
		details, err = uc.saleRepo.ListDetailsBySale(ctx, sale.ID)
		if err != nil {
			return nil, err
		}
		return toSaleResponse(sale, details), nil
	}

	// Reemplazo total de líneas + recálculo, en una sola transacción.
	err = uc.txRunner.RunSales(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := saleRepo.DeleteDetailsBySale(ctx, sale.ID); err != nil {
			return err
		}
		var err error
		details, err = uc.createDetailsInTx(ctx, saleRepo, productRepo, sale, *in.SaleDetails)
		if err != nil {
			return err
		}
		if computed := entity.CalculateTotal(details); computed != nil {
			sale.Total = computed
		}
		return saleRepo.Update(ctx, sale)
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, details), nil
}

// GetSale devuelve una venta con sus líneas o ErrNotFound.
func (uc *SaleUseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.saleRepo.ListDetailsBySale(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, details), nil
}

// ListSales lista ventas con filtros y orden.
func (uc *SaleUseCase) ListSales(ctx context.Context, filter repository.SaleFilter) (*dto.SaleListResponse, error) {
	salesList, err := uc.saleRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(salesList))
	for _, s := range salesList {
		details, err := uc.saleRepo.ListDetailsBySale(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, *toSaleResponse(s, details))
	}
	return &dto.SaleListResponse{Items: items, Limit: filter.Limit, Offset: filter.Offset}, nil
}

// DeleteSale elimina una venta y sus líneas (cascada).
func (uc *SaleUseCase) DeleteSale(ctx context.Context, id string) error {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	return uc.saleRepo.Delete(ctx, id)
}

// Totals agrega cantidad y suma de ventas en [date_from, date_to] con filtros
// opcionales. Fechas en formato YYYY-MM-DD; el rango incluye el día final
// completo. Cero ventas en el rango devuelve 0/0, nunca error.
func (uc *SaleUseCase) Totals(ctx context.Context, dateFrom, dateTo, paymentMethod string, isBakery *bool) (*dto.TotalsResponse, error) {
	if dateFrom == "" || dateTo == "" {
		return nil, fmt.Errorf("date_from y date_to son requeridos: %w", domain.ErrInvalidInput)
	}
	from, err := time.Parse("2006-01-02", dateFrom)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	to, err := time.Parse("2006-01-02", dateTo)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	if paymentMethod != "" && !entity.ValidPaymentMethod(paymentMethod) {
		return nil, fmt.Errorf("método de pago %q desconocido: %w", paymentMethod, domain.ErrInvalidInput)
	}
	count, sum, err := uc.saleRepo.Totals(ctx, repository.TotalsFilter{
		DateFrom:      from,
		DateTo:        to.AddDate(0, 0, 1), // exclusivo: incluye el día final completo
		IsBakery:      isBakery,
		PaymentMethod: paymentMethod,
	})
	if err != nil {
		return nil, err
	}
	return &dto.TotalsResponse{TotalSales: count, SumTotal: sum}, nil
}

// Receipt genera el ticket PDF de una venta.
func (uc *SaleUseCase) Receipt(ctx context.Context, id string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.saleRepo.ListDetailsBySale(ctx, id)
	if err != nil {
		return nil, err
	}
	customerName := "Consumidor final"
	if sale.CustomerID != nil {
		if c, err := uc.customerRepo.GetByID(ctx, *sale.CustomerID); err == nil && c != nil {
			customerName = c.Name
		}
	}
	lines := make([]ReceiptLine, 0, len(details))
	for _, d := range details {
		name := d.ProductID
		if p, err := uc.productRepo.GetByID(ctx, d.ProductID); err == nil && p != nil {
			name = p.Name
		}
		lines = append(lines, ReceiptLine{
			ProductName: name,
			Quantity:    d.Quantity,
			UnitPrice:   d.UnitPrice,
			Subtotal:    d.Subtotal,
		})
	}
	return uc.receiptGen.GenerateReceipt(ctx, sale, customerName, lines)
}

func toSaleResponse(sale *entity.Sale, details []*entity.SaleDetail) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            sale.ID,
		Date:          sale.Date,
		Customer:      sale.CustomerID,
		IsBakery:      sale.IsBakery,
		PaymentMethod: sale.PaymentMethod,
		Total:         sale.Total,
		TotalCharged:  sale.TotalCharged,
		Delivered:     sale.Delivered,
		SaleDetails:   make([]dto.SaleDetailResponse, 0, len(details)),
		CreatedAt:     sale.CreatedAt,
		UpdatedAt:     sale.UpdatedAt,
	}
	for _, d := range details {
		resp.SaleDetails = append(resp.SaleDetails, dto.SaleDetailResponse{
			ID:        d.ID,
			Product:   d.ProductID,
			Quantity:  d.Quantity,
			UnitPrice: d.UnitPrice,
			Subtotal:  d.Subtotal,
		})
	}
	return resp
}
