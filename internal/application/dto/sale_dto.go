package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleDetailRequest línea de venta entrante: solo producto y cantidad.
// El precio unitario lo resuelve el motor de ventas y el subtotal se deriva.
type SaleDetailRequest struct {
	Product  string          `json:"product"`
	Quantity decimal.Decimal `json:"quantity"`
}

// CreateSaleRequest entrada para crear una venta. Total solo se acepta para
// ventas rápidas (sin detalles); con detalles el total siempre se calcula.
type CreateSaleRequest struct {
	Date          *time.Time          `json:"date"`
	Customer      *string             `json:"customer"`
	IsBakery      bool                `json:"is_bakery"`
	PaymentMethod string              `json:"payment_method"`
	Total         *decimal.Decimal    `json:"total"`
	TotalCharged  *decimal.Decimal    `json:"total_charged"`
	Delivered     *bool               `json:"delivered"`
	SaleDetails   []SaleDetailRequest `json:"sale_details"`
}

// UpdateSaleRequest actualización parcial de una venta. La presencia de la
// clave sale_details (puntero no nil) reemplaza TODAS las líneas existentes y
// recalcula el total; su ausencia deja líneas y total intactos.
type UpdateSaleRequest struct {
	Date          *time.Time           `json:"date"`
	Customer      *string              `json:"customer"`
	IsBakery      *bool                `json:"is_bakery"`
	PaymentMethod *string              `json:"payment_method"`
	TotalCharged  *decimal.Decimal     `json:"total_charged"`
	Delivered     *bool                `json:"delivered"`
	SaleDetails   *[]SaleDetailRequest `json:"sale_details"`
}

// SaleDetailResponse línea de venta con precio resuelto y subtotal derivado.
type SaleDetailResponse struct {
	ID        string          `json:"id"`
	Product   string          `json:"product"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse salida de una venta con sus líneas.
type SaleResponse struct {
	ID            string               `json:"id"`
	Date          time.Time            `json:"date"`
	Customer      *string              `json:"customer"`
	IsBakery      bool                 `json:"is_bakery"`
	PaymentMethod string               `json:"payment_method"`
	Total         *decimal.Decimal     `json:"total"`
	TotalCharged  *decimal.Decimal     `json:"total_charged"`
	Delivered     bool                 `json:"delivered"`
	SaleDetails   []SaleDetailResponse `json:"sale_details"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items  []SaleResponse `json:"items"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// TotalsResponse agregado de ventas en un rango.
type TotalsResponse struct {
	TotalSales int64           `json:"total_sales"`
	SumTotal   decimal.Decimal `json:"sum_total"`
}
