package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/panasystem/panasystem-api/internal/domain/entity"
	"github.com/panasystem/panasystem-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo persistencia de ventas y sus líneas sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, date, customer_id, is_bakery, payment_method, total, total_charged, delivered, created_at, updated_at`

// Create persiste la cabecera de una venta.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Date, s.CustomerID, s.IsBakery, s.PaymentMethod,
		s.Total, s.TotalCharged, s.Delivered, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Date, &s.CustomerID, &s.IsBakery, &s.PaymentMethod,
		&s.Total, &s.TotalCharged, &s.Delivered, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// Update actualiza la cabecera de una venta.
func (r *SaleRepo) Update(ctx context.Context, s *entity.Sale) error {
	query := `
		UPDATE sales SET date = $2, customer_id = $3, is_bakery = $4, payment_method = $5, total = $6, total_charged = $7, delivered = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Date, s.CustomerID, s.IsBakery, s.PaymentMethod,
		s.Total, s.TotalCharged, s.Delivered, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// List lista ventas con filtros y orden opcionales.
func (r *SaleRepo) List(ctx context.Context, filter repository.SaleFilter) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE 1=1`
	args := []any{}
	i := 1
	if filter.CustomerID != "" {
		query += fmt.Sprintf(" AND customer_id = $%d", i)
		args = append(args, filter.CustomerID)
		i++
	}
	if filter.IsBakery != nil {
		query += fmt.Sprintf(" AND is_bakery = $%d", i)
		args = append(args, *filter.IsBakery)
		i++
	}
	if filter.PaymentMethod != "" {
		query += fmt.Sprintf(" AND payment_method = $%d", i)
		args = append(args, filter.PaymentMethod)
		i++
	}
	if filter.Delivered != nil {
		query += fmt.Sprintf(" AND delivered = $%d", i)
		args = append(args, *filter.Delivered)
		i++
	}
	if filter.DateFrom != nil {
		query += fmt.Sprintf(" AND date >= $%d", i)
		args = append(args, *filter.DateFrom)
		i++
	}
	if filter.DateTo != nil {
		query += fmt.Sprintf(" AND date < $%d", i)
		args = append(args, *filter.DateTo)
		i++
	}
	if filter.Uncharged {
		query += " AND total IS NOT NULL AND total_charged < total"
	}
	query += " ORDER BY " + saleOrderBy(filter.OrderBy)
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.Date, &s.CustomerID, &s.IsBakery, &s.PaymentMethod,
			&s.Total, &s.TotalCharged, &s.Delivered, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// saleOrderBy traduce el criterio de orden a SQL; solo admite columnas conocidas.
func saleOrderBy(orderBy string) string {
	switch orderBy {
	case "date":
		return "date ASC"
	case "total":
		return "total ASC"
	case "-total":
		return "total DESC"
	default: // "-date" o vacío: más recientes primero
		return "date DESC"
	}
}

// Delete elimina una venta; las líneas caen por cascada (FK ON DELETE CASCADE).
func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

// CreateDetail persiste una línea de venta.
func (r *SaleRepo) CreateDetail(ctx context.Context, d *entity.SaleDetail) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO sale_details (id, sale_id, product_id, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		d.ID, d.SaleID, d.ProductID, d.Quantity, d.UnitPrice, d.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert sale detail: %w", err)
	}
	return nil
}

// ListDetailsBySale devuelve las líneas de una venta.
func (r *SaleRepo) ListDetailsBySale(ctx context.Context, saleID string) ([]*entity.SaleDetail, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, sale_id, product_id, quantity, unit_price, subtotal
		FROM sale_details WHERE sale_id = $1 ORDER BY id`,
		saleID,
	)
	if err != nil {
		return nil, fmt.Errorf("list sale details: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleDetail
	for rows.Next() {
		var d entity.SaleDetail
		if err := rows.Scan(&d.ID, &d.SaleID, &d.ProductID, &d.Quantity, &d.UnitPrice, &d.Subtotal); err != nil {
			return nil, fmt.Errorf("scan sale detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// DeleteDetailsBySale elimina todas las líneas de una venta (reemplazo total en update).
func (r *SaleRepo) DeleteDetailsBySale(ctx context.Context, saleID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM sale_details WHERE sale_id = $1`, saleID)
	if err != nil {
		return fmt.Errorf("delete sale details: %w", err)
	}
	return nil
}

// Totals cuenta y suma totales de ventas en [DateFrom, DateTo). Sin filas devuelve cero.
func (r *SaleRepo) Totals(ctx context.Context, filter repository.TotalsFilter) (int64, decimal.Decimal, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(total), 0)
		FROM sales WHERE date >= $1 AND date < $2`
	args := []any{filter.DateFrom, filter.DateTo}
	i := 3
	if filter.IsBakery != nil {
		query += fmt.Sprintf(" AND is_bakery = $%d", i)
		args = append(args, *filter.IsBakery)
		i++
	}
	if filter.PaymentMethod != "" {
		query += fmt.Sprintf(" AND payment_method = $%d", i)
		args = append(args, filter.PaymentMethod)
	}
	var count int64
	var sum decimal.Decimal
	if err := r.q.QueryRow(ctx, query, args...).Scan(&count, &sum); err != nil {
		return 0, decimal.Zero, fmt.Errorf("sales totals: %w", err)
	}
	return count, sum, nil
}
