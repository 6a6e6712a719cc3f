package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Categorías y marcas ───────────────────────────────────────────────────────

// NamedRequest entrada para entidades de referencia con nombre y descripción
// (categorías de producto, marcas, categorías de gasto).
type NamedRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NamedResponse salida para entidades de referencia.
type NamedResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ── Proveedores ───────────────────────────────────────────────────────────────

// SupplierRequest entrada para crear/actualizar un proveedor.
type SupplierRequest struct {
	Name    string `json:"name"`
	Celular string `json:"celular"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Celular   string    `json:"celular"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ── Pedidos a proveedores ─────────────────────────────────────────────────────

// SupplierOrderDetailRequest línea de pedido; el subtotal se deriva.
type SupplierOrderDetailRequest struct {
	Product   string          `json:"product"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// SupplierOrderRequest entrada para crear/reemplazar un pedido a proveedor.
type SupplierOrderRequest struct {
	Date          *time.Time                   `json:"date"`
	Supplier      string                       `json:"supplier"`
	PaymentMethod string                       `json:"payment_method"`
	Wholesale     bool                         `json:"wholesale"`
	Details       []SupplierOrderDetailRequest `json:"details"`
}

// SupplierOrderDetailResponse línea de pedido persistida.
type SupplierOrderDetailResponse struct {
	ID        string          `json:"id"`
	Product   string          `json:"product"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SupplierOrderResponse pedido con líneas y total derivado.
type SupplierOrderResponse struct {
	ID            string                        `json:"id"`
	Date          time.Time                     `json:"date"`
	Supplier      string                        `json:"supplier"`
	PaymentMethod string                        `json:"payment_method"`
	Wholesale     bool                          `json:"wholesale"`
	Total         decimal.Decimal               `json:"total"`
	Details       []SupplierOrderDetailResponse `json:"details"`
	CreatedAt     time.Time                     `json:"created_at"`
}

// ── Clientes ──────────────────────────────────────────────────────────────────

// CustomerRequest entrada para crear un cliente.
type CustomerRequest struct {
	Name     string  `json:"name"`
	Celular  string  `json:"celular"`
	Email    *string `json:"email"`
	Address  string  `json:"address"`
	City     string  `json:"city"`
	IsActive *bool   `json:"is_active"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Celular   string    `json:"celular"`
	Email     *string   `json:"email"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ── Empleados ─────────────────────────────────────────────────────────────────

// EmployeeRequest entrada para crear/actualizar un empleado.
type EmployeeRequest struct {
	Name string `json:"name"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ── Gastos ────────────────────────────────────────────────────────────────────

// ExpenseRequest entrada para crear un gasto.
type ExpenseRequest struct {
	Date        *time.Time      `json:"date"`
	Supplier    *string         `json:"supplier"`
	Total       decimal.Decimal `json:"total"`
	Category    string          `json:"category"`
	Employee    string          `json:"employee"`
	Description string          `json:"description"`
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Supplier    *string         `json:"supplier"`
	Total       decimal.Decimal `json:"total"`
	Category    string          `json:"category"`
	Employee    string          `json:"employee"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}
