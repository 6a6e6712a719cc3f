package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. El precio al público es
// obligatorio y mayor a cero; el mayorista es opcional (nil = sin precio
// mayorista, las ventas de panadería caen al precio público).
type CreateProductRequest struct {
	Barcode        *string          `json:"barcode"`
	Name           string           `json:"name"`
	Category       string           `json:"category"`
	Brand          *string          `json:"brand"`
	Supplier       *string          `json:"supplier"`
	PublicPrice    decimal.Decimal  `json:"public_price"`
	WholesalePrice *decimal.Decimal `json:"wholesale_price"`
	CurrentStock   *decimal.Decimal `json:"current_stock"`
	Description    string           `json:"description"`
}

// UpdateProductRequest actualización parcial: un puntero nil significa "campo
// ausente, no tocar". Un cambio de precio público, o de precio mayorista
// enviado explícitamente, genera una fila nueva en el historial de precios.
type UpdateProductRequest struct {
	Barcode        *string          `json:"barcode"`
	Name           *string          `json:"name"`
	Category       *string          `json:"category"`
	Brand          *string          `json:"brand"`
	Supplier       *string          `json:"supplier"`
	PublicPrice    *decimal.Decimal `json:"public_price"`
	WholesalePrice *decimal.Decimal `json:"wholesale_price"`
	CurrentStock   *decimal.Decimal `json:"current_stock"`
	Description    *string          `json:"description"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             string           `json:"id"`
	Barcode        *string          `json:"barcode"`
	Name           string           `json:"name"`
	Category       string           `json:"category"`
	Brand          *string          `json:"brand"`
	Supplier       *string          `json:"supplier"`
	PublicPrice    decimal.Decimal  `json:"public_price"`
	WholesalePrice *decimal.Decimal `json:"wholesale_price"`
	CurrentStock   *decimal.Decimal `json:"current_stock"`
	Description    string           `json:"description"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// PriceHistoryResponse una fila del historial de precios.
type PriceHistoryResponse struct {
	ID             string           `json:"id"`
	ProductID      string           `json:"product"`
	PublicPrice    decimal.Decimal  `json:"public_price"`
	WholesalePrice *decimal.Decimal `json:"wholesale_price"`
	CreatedAt      time.Time        `json:"created_at"`
}
