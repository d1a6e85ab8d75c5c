package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/omarvides/tienda-stock/internal/domain"
	"github.com/omarvides/tienda-stock/internal/domain/entity"
	"github.com/omarvides/tienda-stock/internal/domain/repository"
	"github.com/omarvides/tienda-stock/internal/infrastructure/cache"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productCacheTTL = time.Minute

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx), con caché cache-aside opcional para GetByID.
type ProductRepo struct {
	q     Querier
	cache cache.Client
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
// cache puede ser nil (sin caché).
func NewProductRepository(q Querier, cache cache.Client) *ProductRepo {
	return &ProductRepo{q: q, cache: cache}
}

func productCacheKey(id string) string { return "producto:" + id }

const productColumns = `id, nombre, id_producto, descripcion, foto, precio_venta, stock, stock_minimo, stock_maximo, ultimo_registro, fecha_creacion`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO productos (id, nombre, id_producto, descripcion, foto, precio_venta, stock, stock_minimo, stock_maximo, ultimo_registro, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Code, product.Description, product.PhotoURL,
		product.SalePrice, product.Stock, product.StockMin, product.StockMax,
		product.UpdatedAt, product.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID (cache-aside cuando hay caché).
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	if r.cache != nil {
		if raw, err := r.cache.Get(context.Background(), productCacheKey(id)); err == nil {
			var p entity.Product
			if err := json.Unmarshal(raw, &p); err == nil {
				return &p, nil
			}
		}
	}
	query := `SELECT ` + productColumns + ` FROM productos WHERE id = $1`
	p, err := r.scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil || p == nil {
		return p, err
	}
	if r.cache != nil {
		if raw, err := json.Marshal(p); err == nil {
			_ = r.cache.Set(context.Background(), productCacheKey(id), raw, productCacheTTL)
		}
	}
	return p, nil
}

// GetByName obtiene un producto por nombre (único en la tienda).
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM productos WHERE nombre = $1`
	return r.scanProduct(r.q.QueryRow(context.Background(), query, name))
}

// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
// Siempre va a BD: el motor de movimientos no puede leer del caché.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM productos WHERE id = $1 FOR UPDATE`
	return r.scanProduct(r.q.QueryRow(context.Background(), query, id))
}

// Update actualiza los campos editables de un producto. El stock no se toca
// aquí: solo cambia vía UpdateStock dentro del motor de movimientos.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE productos SET nombre = $2, id_producto = $3, descripcion = $4, foto = $5, precio_venta = $6, stock_minimo = $7, stock_maximo = $8, ultimo_registro = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Code, product.Description, product.PhotoURL,
		product.SalePrice, product.StockMin, product.StockMax, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	r.invalidate(product.ID)
	return nil
}

// UpdateStock fija el stock calculado por el motor de movimientos.
func (r *ProductRepo) UpdateStock(productID string, stock int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock = $2, ultimo_registro = now() WHERE id = $1`,
		productID, stock,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	r.invalidate(productID)
	return nil
}

// List lista productos con paginación, más recientes primero.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM productos ORDER BY fecha_creacion DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// ListLowStock lista productos con stock <= stock_minimo (reporte informativo).
func (r *ProductRepo) ListLowStock() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM productos WHERE stock <= stock_minimo ORDER BY stock ASC, nombre ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// Delete elimina un producto; sus movimientos caen en cascada (FK).
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	r.invalidate(id)
	return nil
}

func (r *ProductRepo) invalidate(id string) {
	if r.cache != nil {
		_ = r.cache.Delete(context.Background(), productCacheKey(id))
	}
}

func (r *ProductRepo) scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Code, &p.Description, &p.PhotoURL, &p.SalePrice,
		&p.Stock, &p.StockMin, &p.StockMax, &p.UpdatedAt, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Code, &p.Description, &p.PhotoURL, &p.SalePrice,
			&p.Stock, &p.StockMin, &p.StockMax, &p.UpdatedAt, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
