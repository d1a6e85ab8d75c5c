package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/omarvides/tienda-stock/internal/application/dto"
	"github.com/omarvides/tienda-stock/internal/domain"
	"github.com/omarvides/tienda-stock/internal/domain/entity"
	"github.com/omarvides/tienda-stock/internal/domain/repository"
)

// Umbrales informativos por defecto (los mismos del sistema original).
const (
	defaultStockMin = 5
	defaultStockMax = 100
)

// ProductUseCase casos de uso CRUD para productos. El stock inicial se fija al
// crear; después solo cambia vía el motor de movimientos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. El nombre es único en la tienda.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	stockMin := defaultStockMin
	if in.StockMin != nil && *in.StockMin >= 0 {
		stockMin = *in.StockMin
	}
	stockMax := defaultStockMax
	if in.StockMax != nil && *in.StockMax >= 0 {
		stockMax = *in.StockMax
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Code:        in.Code,
		Description: in.Description,
		PhotoURL:    in.PhotoURL,
		SalePrice:   in.SalePrice,
		Stock:       in.Stock,
		StockMin:    stockMin,
		StockMax:    stockMax,
		UpdatedAt:   now,
		CreatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Retorna nil, nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. No permite modificar el stock: eso se hace
// registrando movimientos.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil && *in.Name != product.Name {
		existing, _ := uc.repo.GetByName(*in.Name)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		product.Name = *in.Name
	}
	if in.Code != nil {
		product.Code = *in.Code
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.PhotoURL != nil {
		product.PhotoURL = *in.PhotoURL
	}
	if in.SalePrice != nil {
		product.SalePrice = *in.SalePrice
	}
	if in.StockMin != nil {
		product.StockMin = *in.StockMin
	}
	if in.StockMax != nil {
		product.StockMax = *in.StockMax
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListLowStock reporte de productos en o por debajo de su stock mínimo.
// Solo informativo: los umbrales nunca bloquean movimientos.
func (uc *ProductUseCase) ListLowStock() (*dto.LowStockResponse, error) {
	list, err := uc.repo.ListLowStock()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.LowStockResponse{Total: len(items), Items: items}, nil
}

// Delete elimina un producto. Sus movimientos se eliminan en cascada (el libro
// nunca queda huérfano, y stock e historial desaparecen juntos).
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Code:        p.Code,
		Description: p.Description,
		PhotoURL:    p.PhotoURL,
		SalePrice:   p.SalePrice,
		Stock:       p.Stock,
		StockMin:    p.StockMin,
		StockMax:    p.StockMax,
		UpdatedAt:   p.UpdatedAt,
		CreatedAt:   p.CreatedAt,
	}
}
