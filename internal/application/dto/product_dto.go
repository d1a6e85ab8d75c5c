package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Stock es el stock
// inicial; después de la creación solo cambia vía movimientos.
type CreateProductRequest struct {
	Name        string          `json:"nombre"`
	Code        string          `json:"id_producto"`
	Description string          `json:"descripcion"`
	PhotoURL    string          `json:"foto"`
	SalePrice   decimal.Decimal `json:"precio_venta"`
	Stock       int             `json:"stock"`
	StockMin    *int            `json:"stock_minimo"`
	StockMax    *int            `json:"stock_maximo"`
}

// UpdateProductRequest entrada para actualizar un producto. No incluye stock:
// el stock solo se modifica a través del libro de movimientos.
type UpdateProductRequest struct {
	Name        *string          `json:"nombre"`
	Code        *string          `json:"id_producto"`
	Description *string          `json:"descripcion"`
	PhotoURL    *string          `json:"foto"`
	SalePrice   *decimal.Decimal `json:"precio_venta"`
	StockMin    *int             `json:"stock_minimo"`
	StockMax    *int             `json:"stock_maximo"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"nombre"`
	Code        string          `json:"id_producto,omitempty"`
	Description string          `json:"descripcion"`
	PhotoURL    string          `json:"foto,omitempty"`
	SalePrice   decimal.Decimal `json:"precio_venta"`
	Stock       int             `json:"stock"`
	StockMin    int             `json:"stock_minimo"`
	StockMax    int             `json:"stock_maximo"`
	UpdatedAt   time.Time       `json:"ultimo_registro"`
	CreatedAt   time.Time       `json:"fecha_creacion"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// LowStockResponse reporte de productos en o por debajo del stock mínimo.
type LowStockResponse struct {
	Total int               `json:"total"`
	Items []ProductResponse `json:"items"`
}
