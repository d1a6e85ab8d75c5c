package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto de la tienda. Stock es la cantidad actual en
// bodega y solo cambia a través del motor de movimientos (nunca por un UPDATE
// directo del CRUD). StockMin y StockMax son umbrales informativos para
// alertas de reposición; no se aplican como invariantes duros.
type Product struct {
	ID          string
	Name        string // nombre, único en la tienda
	Code        string // id_producto, código externo opcional
	Description string
	PhotoURL    string // la foto vive en un storage externo; aquí solo la URL
	SalePrice   decimal.Decimal
	Stock       int // invariante: nunca negativo
	StockMin    int
	StockMax    int
	UpdatedAt   time.Time // ultimo_registro
	CreatedAt   time.Time // fecha_creacion
}

// BelowMinimum indica si el producto está en o por debajo del stock mínimo.
func (p *Product) BelowMinimum() bool {
	return p.Stock <= p.StockMin
}
