package catalog

import (
	"context"

	"github.com/panasystem/panasystem-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. La escritura del producto y el alta en el
// historial de precios deben quedar en la misma unidad atómica.
type TxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		historyRepo repository.PriceHistoryRepository,
	) error) error
}
