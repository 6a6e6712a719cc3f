package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/panasystem/panasystem-api/internal/domain/entity"
	"github.com/panasystem/panasystem-api/internal/domain/repository"
)

var _ repository.SupplierOrderRepository = (*SupplierOrderRepo)(nil)

// SupplierOrderRepo persistencia de pedidos a proveedores y sus líneas.
type SupplierOrderRepo struct {
	q Querier
}

// NewSupplierOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierOrderRepository(q Querier) *SupplierOrderRepo {
	return &SupplierOrderRepo{q: q}
}

const orderColumns = `id, date, supplier_id, payment_method, wholesale, total, created_at, updated_at`

func (r *SupplierOrderRepo) Create(ctx context.Context, o *entity.SupplierOrder) error {
	query := `
		INSERT INTO supplier_orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.Date, o.SupplierID, o.PaymentMethod, o.Wholesale, o.Total, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supplier order: %w", err)
	}
	return nil
}

func (r *SupplierOrderRepo) GetByID(ctx context.Context, id string) (*entity.SupplierOrder, error) {
	var o entity.SupplierOrder
	err := r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM supplier_orders WHERE id = $1`, id).Scan(
		&o.ID, &o.Date, &o.SupplierID, &o.PaymentMethod, &o.Wholesale, &o.Total, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier order: %w", err)
	}
	return &o, nil
}

func (r *SupplierOrderRepo) Update(ctx context.Context, o *entity.SupplierOrder) error {
	_, err := r.q.Exec(ctx, `
		UPDATE supplier_orders SET date = $2, supplier_id = $3, payment_method = $4, wholesale = $5, total = $6, updated_at = $7
		WHERE id = $1`,
		o.ID, o.Date, o.SupplierID, o.PaymentMethod, o.Wholesale, o.Total, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier order: %w", err)
	}
	return nil
}

func (r *SupplierOrderRepo) List(ctx context.Context, limit, offset int) ([]*entity.SupplierOrder, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+orderColumns+` FROM supplier_orders ORDER BY date DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list supplier orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.SupplierOrder
	for rows.Next() {
		var o entity.SupplierOrder
		if err := rows.Scan(&o.ID, &o.Date, &o.SupplierID, &o.PaymentMethod, &o.Wholesale, &o.Total, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Delete elimina un pedido; las líneas caen por cascada (FK ON DELETE CASCADE).
func (r *SupplierOrderRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM supplier_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier order: %w", err)
	}
	return nil
}

func (r *SupplierOrderRepo) CreateDetail(ctx context.Context, d *entity.SupplierOrderDetail) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO supplier_order_details (id, order_id, product_id, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		d.ID, d.OrderID, d.ProductID, d.Quantity, d.UnitPrice, d.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert supplier order detail: %w", err)
	}
	return nil
}

func (r *SupplierOrderRepo) ListDetailsByOrder(ctx context.Context, orderID string) ([]*entity.SupplierOrderDetail, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, order_id, product_id, quantity, unit_price, subtotal
		FROM supplier_order_details WHERE order_id = $1 ORDER BY id`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("list supplier order details: %w", err)
	}
	defer rows.Close()
	var list []*entity.SupplierOrderDetail
	for rows.Next() {
		var d entity.SupplierOrderDetail
		if err := rows.Scan(&d.ID, &d.OrderID, &d.ProductID, &d.Quantity, &d.UnitPrice, &d.Subtotal); err != nil {
			return nil, fmt.Errorf("scan supplier order detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

func (r *SupplierOrderRepo) DeleteDetailsByOrder(ctx context.Context, orderID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM supplier_order_details WHERE order_id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("delete supplier order details: %w", err)
	}
	return nil
}
