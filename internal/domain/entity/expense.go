package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory clasifica gastos (mercadería, servicios, sueldos...).
type ExpenseCategory struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Expense representa un gasto del negocio. El proveedor es opcional
// (hay gastos sin proveedor asociado); categoría y empleado son obligatorios.
type Expense struct {
	ID          string
	Date        time.Time
	SupplierID  *string
	Total       decimal.Decimal
	CategoryID  string
	EmployeeID  string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
