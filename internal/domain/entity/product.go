package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category representa una categoría de productos.
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Brand representa una marca de productos.
type Brand struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Product representa un producto del catálogo.
// PublicPrice y WholesalePrice solo se modifican vía UpdatePrice (catálogo),
// que además registra la versión en price_history. CurrentStock solo se
// modifica vía DecrementStock; nil significa que el producto no lleva control
// de stock (el descuento es no-op).
type Product struct {
	ID             string
	Barcode        *string // único cuando está presente
	Name           string
	CategoryID     string
	BrandID        *string
	SupplierID     *string
	PublicPrice    decimal.Decimal
	WholesalePrice *decimal.Decimal
	CurrentStock   *decimal.Decimal
	Description    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PriceHistory registra cada cambio de precio de un producto.
// Los registros son inmutables — nunca se eliminan ni modifican, aunque los
// valores no cambien. Se listan del más reciente al más antiguo.
type PriceHistory struct {
	ID             string
	ProductID      string
	PublicPrice    decimal.Decimal
	WholesalePrice *decimal.Decimal
	CreatedAt      time.Time
}
