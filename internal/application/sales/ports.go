package sales

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/panasystem/panasystem-api/internal/domain/entity"
	"github.com/panasystem/panasystem-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Todo el lote de ventas — cabeceras, líneas y
// descuentos de stock — entra en UNA transacción: si falla la venta N de un
// lote de M, no queda ninguna fila de ninguna de las M.
type TxRunner interface {
	RunSales(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// ReceiptLine línea del ticket de venta, con el nombre del producto resuelto.
type ReceiptLine struct {
	ProductName string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// ReceiptPDFGenerator genera el ticket PDF de una venta.
type ReceiptPDFGenerator interface {
	GenerateReceipt(ctx context.Context, sale *entity.Sale, customerName string, lines []ReceiptLine) ([]byte, error)
}
