package repository

import "github.com/omarvides/tienda-stock/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate y UpdateStock existen para el motor de movimientos: deben
// usarse con una implementación atada a la misma transacción.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	// GetForUpdate carga el producto bloqueando su fila (SELECT ... FOR UPDATE).
	// Retorna nil, nil si no existe.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock fija el stock calculado por el motor de movimientos.
	UpdateStock(productID string, stock int) error
	List(limit, offset int) ([]*entity.Product, error)
	// ListLowStock lista productos con stock <= stock_minimo (reporte informativo).
	ListLowStock() ([]*entity.Product, error)
	Delete(id string) error
}
