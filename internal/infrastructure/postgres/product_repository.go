package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/panasystem/panasystem-api/internal/domain"
	"github.com/panasystem/panasystem-api/internal/domain/entity"
	"github.com/panasystem/panasystem-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, barcode, name, category_id, brand_id, supplier_id, public_price, wholesale_price, current_stock, description, created_at, updated_at`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Barcode, p.Name, p.CategoryID, p.BrandID, p.SupplierID,
		p.PublicPrice, p.WholesalePrice, p.CurrentStock, p.Description,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get product")
}

// GetByBarcode obtiene un producto por código de barras.
func (r *ProductRepo) GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE barcode = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, barcode), "get product by barcode")
}

// Update actualiza un producto. No toca precios ni stock: esos campos solo se
// escriben vía UpdatePrices y UpdateStock.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET barcode = $2, name = $3, category_id = $4, brand_id = $5, supplier_id = $6, description = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Barcode, p.Name, p.CategoryID, p.BrandID, p.SupplierID, p.Description, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdatePrices escribe solo los precios (usado por el catálogo junto con el historial).
func (r *ProductRepo) UpdatePrices(ctx context.Context, productID string, public decimal.Decimal, wholesale *decimal.Decimal) error {
	_, err := r.q.Exec(ctx,
		`UPDATE products SET public_price = $2, wholesale_price = $3, updated_at = now() WHERE id = $1`,
		productID, public, wholesale,
	)
	if err != nil {
		return fmt.Errorf("update product prices: %w", err)
	}
	return nil
}

// UpdateStock escribe solo el stock (usado por el motor de ventas y el restock manual).
func (r *ProductRepo) UpdateStock(ctx context.Context, productID string, stock *decimal.Decimal) error {
	_, err := r.q.Exec(ctx,
		`UPDATE products SET current_stock = $2, updated_at = now() WHERE id = $1`,
		productID, stock,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// List lista productos con búsqueda por nombre/código de barras y filtros opcionales.
func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []any{}
	i := 1
	if filter.Search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR barcode ILIKE $%d)", i, i)
		args = append(args, "%"+filter.Search+"%")
		i++
	}
	if filter.CategoryID != "" {
		query += fmt.Sprintf(" AND category_id = $%d", i)
		args = append(args, filter.CategoryID)
		i++
	}
	if filter.SupplierID != "" {
		query += fmt.Sprintf(" AND supplier_id = $%d", i)
		args = append(args, filter.SupplierID)
		i++
	}
	query += fmt.Sprintf(" ORDER BY name ASC LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	if err := scanProduct(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

func scanProduct(row pgx.Row, p *entity.Product) error {
	return row.Scan(
		&p.ID, &p.Barcode, &p.Name, &p.CategoryID, &p.BrandID, &p.SupplierID,
		&p.PublicPrice, &p.WholesalePrice, &p.CurrentStock, &p.Description,
		&p.CreatedAt, &p.UpdatedAt,
	)
}
