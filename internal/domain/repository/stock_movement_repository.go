package repository

import "github.com/omarvides/tienda-stock/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia del libro de
// movimientos. Solo inserta y lee: los movimientos son inmutables y se
// eliminan únicamente en cascada con su producto.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	// List devuelve movimientos del más reciente al más antiguo (fecha DESC,
	// empates por id DESC). productID vacío = todos los productos.
	List(productID string, limit, offset int) ([]*entity.StockMovement, error)
}
