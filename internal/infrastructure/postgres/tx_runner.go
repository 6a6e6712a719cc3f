package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/panasystem/panasystem-api/internal/application/catalog"
	"github.com/panasystem/panasystem-api/internal/application/sales"
	"github.com/panasystem/panasystem-api/internal/application/usecase"
	"github.com/panasystem/panasystem-api/internal/domain/repository"
)

// Ensure TxRunner implements sales.TxRunner, catalog.TxRunner y usecase.OrdersTxRunner.
var _ sales.TxRunner = (*TxRunner)(nil)
var _ catalog.TxRunner = (*TxRunner)(nil)
var _ usecase.OrdersTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSales inicia una transacción con repos de ventas y catálogo atados a ella
// (lote de ventas: cabeceras, líneas y descuentos de stock en una unidad).
func (r *TxRunner) RunSales(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	saleRepo := NewSaleRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(saleRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCatalog inicia una transacción con repos de producto e historial de
// precios (escritura de precio + versión en una unidad).
func (r *TxRunner) RunCatalog(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	historyRepo repository.PriceHistoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	historyRepo := NewPriceHistoryRepository(tx)

	if err := fn(productRepo, historyRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunOrders inicia una transacción con el repo de pedidos a proveedores
// (cabecera, líneas y total recalculado en una unidad).
func (r *TxRunner) RunOrders(ctx context.Context, fn func(
	orderRepo repository.SupplierOrderRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewSupplierOrderRepository(tx)

	if err := fn(orderRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
