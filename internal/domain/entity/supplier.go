package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier representa un proveedor (viajante).
type Supplier struct {
	ID        string
	Name      string
	Celular   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SupplierOrder representa un pedido a un proveedor. Total = suma de los
// subtotales de sus líneas; se recalcula cada vez que se guardan detalles.
// Solo alimenta estadísticas y contabilidad, el motor de ventas no lo toca.
type SupplierOrder struct {
	ID            string
	Date          time.Time
	SupplierID    string
	PaymentMethod string
	Wholesale     bool
	Total         decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SupplierOrderDetail es una línea de pedido a proveedor.
// Subtotal = Quantity × UnitPrice, recalculado al guardar.
type SupplierOrderDetail struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// ComputeSubtotal fija Subtotal = Quantity × UnitPrice.
func (d *SupplierOrderDetail) ComputeSubtotal() {
	d.Subtotal = d.Quantity.Mul(d.UnitPrice)
}
