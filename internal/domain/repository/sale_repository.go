package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/panasystem/panasystem-api/internal/domain/entity"
)

// SaleFilter criterios para el listado de ventas.
type SaleFilter struct {
	CustomerID    string
	IsBakery      *bool
	PaymentMethod string
	Delivered     *bool
	DateFrom      *time.Time
	DateTo        *time.Time // exclusivo
	Uncharged     bool       // total_charged < total
	OrderBy       string     // "date" | "-date" | "total" | "-total"
	Limit         int
	Offset        int
}

// TotalsFilter criterios para el agregado de totales de ventas.
type TotalsFilter struct {
	DateFrom      time.Time
	DateTo        time.Time // exclusivo
	IsBakery      *bool
	PaymentMethod string
}

// SaleRepository puerto de persistencia para Sale y sus líneas.
// Delete elimina también los detalles (cascada). Totals trata "sin filas"
// como cero, nunca como error.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	List(ctx context.Context, filter SaleFilter) ([]*entity.Sale, error)
	Delete(ctx context.Context, id string) error

	CreateDetail(ctx context.Context, detail *entity.SaleDetail) error
	ListDetailsBySale(ctx context.Context, saleID string) ([]*entity.SaleDetail, error)
	DeleteDetailsBySale(ctx context.Context, saleID string) error

	Totals(ctx context.Context, filter TotalsFilter) (count int64, sum decimal.Decimal, err error)
}
