package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/omarvides/tienda-stock/internal/application/inventory"
	"github.com/omarvides/tienda-stock/internal/domain/repository"
	"github.com/omarvides/tienda-stock/internal/infrastructure/cache"
)

// Ensure TxRunner implements inventory.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Es la pieza
// que garantiza la atomicidad del motor de movimientos: asiento y stock se
// confirman juntos o se revierten juntos.
type TxRunner struct {
	pool  *pgxpool.Pool
	cache cache.Client
}

// NewTxRunner construye el runner. cache puede ser nil (sin invalidación).
func NewTxRunner(pool *pgxpool.Pool, cache cache.Client) *TxRunner {
	return &TxRunner{pool: pool, cache: cache}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. El repo de productos recibe el caché para invalidar la
// entrada del producto cuyo stock cambió.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewStockMovementRepository(tx)
	productRepo := NewProductRepository(tx, r.cache)

	if err := fn(movRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
