package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago.
const (
	PaymentCash     = "efv" // Efectivo
	PaymentTransfer = "trf" // Transferencia
	PaymentCard     = "crd" // Tarjeta de Débito/Crédito
	PaymentQR       = "qr"  // QR
)

// ValidPaymentMethod indica si el código de método de pago es conocido.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentTransfer, PaymentCard, PaymentQR:
		return true
	}
	return false
}

// Sale representa una venta. Si IsBakery es true, el precio por línea es el
// mayorista cuando el producto lo tiene. Total es nulo hasta que se calcula;
// una "venta rápida" (sin detalles) conserva el total informado por el caller.
// TotalCharged nunca queda nulo después de persistir: por defecto toma Total.
type Sale struct {
	ID            string
	Date          time.Time
	CustomerID    *string
	IsBakery      bool
	PaymentMethod string
	Total         *decimal.Decimal
	TotalCharged  *decimal.Decimal
	Delivered     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SaleDetail es una línea de venta. Subtotal siempre se recalcula como
// Quantity × UnitPrice al guardar; nunca se confía en el valor de entrada.
// Una línea no sobrevive a su venta (borrado en cascada).
type SaleDetail struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// ComputeSubtotal fija Subtotal = Quantity × UnitPrice (decimal exacto).
func (d *SaleDetail) ComputeSubtotal() {
	d.Subtotal = d.Quantity.Mul(d.UnitPrice)
}

// CalculateTotal devuelve la suma de subtotales si hay al menos un detalle.
// Con cero detalles devuelve nil: el total informado por el caller queda en
// pie (modo venta rápida).
func CalculateTotal(details []*SaleDetail) *decimal.Decimal {
	if len(details) == 0 {
		return nil
	}
	total := decimal.Zero
	for _, d := range details {
		total = total.Add(d.Subtotal)
	}
	return &total
}

// ResolveUnitPrice resuelve el precio unitario de una línea: mayorista si la
// venta es de panadería y el producto lo tiene; si no, precio al público.
func ResolveUnitPrice(isBakery bool, p *Product) decimal.Decimal {
	if isBakery && p.WholesalePrice != nil {
		return *p.WholesalePrice
	}
	return p.PublicPrice
}
