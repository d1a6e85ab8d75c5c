package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarvides/tienda-stock/internal/application/dto"
	"github.com/omarvides/tienda-stock/internal/domain"
	"github.com/omarvides/tienda-stock/internal/domain/entity"
)

// fakeProductRepo repositorio de productos en memoria para los casos de uso CRUD.
type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{byID: make(map[string]*entity.Product)}
	for _, p := range products {
		r.byID[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.byID[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.byID[id], nil
}

func (r *fakeProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.byID[id], nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.byID[p.ID] = p
	return nil
}

func (r *fakeProductRepo) UpdateStock(productID string, stock int) error {
	if p := r.byID[productID]; p != nil {
		p.Stock = stock
	}
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		if p.Stock <= p.StockMin {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

func TestProductCreate_AplicaUmbralesPorDefecto(t *testing.T) {
	repo := newFakeProductRepo()
	uc := NewProductUseCase(repo)

	out, err := uc.Create(dto.CreateProductRequest{
		Name:      "Arroz Diana",
		SalePrice: decimal.NewFromFloat(3500.50),
		Stock:     12,
	})

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, 12, out.Stock)
	assert.Equal(t, 5, out.StockMin)
	assert.Equal(t, 100, out.StockMax)
	assert.True(t, out.SalePrice.Equal(decimal.NewFromFloat(3500.50)))
}

func TestProductCreate_UmbralesExplicitos(t *testing.T) {
	repo := newFakeProductRepo()
	uc := NewProductUseCase(repo)

	min, max := 2, 40
	out, err := uc.Create(dto.CreateProductRequest{
		Name:     "Aceite Premier",
		Stock:    10,
		StockMin: &min,
		StockMax: &max,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, out.StockMin)
	assert.Equal(t, 40, out.StockMax)
}

func TestProductCreate_NombreDuplicado(t *testing.T) {
	repo := newFakeProductRepo(&entity.Product{ID: "p1", Name: "Arroz Diana", Stock: 5})
	uc := NewProductUseCase(repo)

	out, err := uc.Create(dto.CreateProductRequest{Name: "Arroz Diana", Stock: 1})

	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Nil(t, out)
}

func TestProductCreate_Invalido(t *testing.T) {
	repo := newFakeProductRepo()
	uc := NewProductUseCase(repo)

	_, err := uc.Create(dto.CreateProductRequest{Name: "", Stock: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateProductRequest{Name: "Panela", Stock: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_NoTocaElStock(t *testing.T) {
	repo := newFakeProductRepo(&entity.Product{ID: "p1", Name: "Arroz Diana", Stock: 33, StockMin: 5, StockMax: 100})
	uc := NewProductUseCase(repo)

	nombre := "Arroz Diana Premium"
	precio := decimal.NewFromInt(4200)
	out, err := uc.Update("p1", dto.UpdateProductRequest{
		Name:      &nombre,
		SalePrice: &precio,
	})

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Arroz Diana Premium", out.Name)
	assert.True(t, out.SalePrice.Equal(precio))
	// El stock solo cambia vía movimientos
	assert.Equal(t, 33, out.Stock)
	assert.Equal(t, 33, repo.byID["p1"].Stock)
}

func TestProductUpdate_NombreDuplicado(t *testing.T) {
	repo := newFakeProductRepo(
		&entity.Product{ID: "p1", Name: "Arroz Diana", Stock: 1},
		&entity.Product{ID: "p2", Name: "Aceite Premier", Stock: 1},
	)
	uc := NewProductUseCase(repo)

	nombre := "Aceite Premier"
	_, err := uc.Update("p1", dto.UpdateProductRequest{Name: &nombre})

	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, "Arroz Diana", repo.byID["p1"].Name)
}

func TestProductUpdate_Inexistente(t *testing.T) {
	repo := newFakeProductRepo()
	uc := NewProductUseCase(repo)

	out, err := uc.Update("no-existe", dto.UpdateProductRequest{})

	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductListLowStock_FiltraPorUmbral(t *testing.T) {
	repo := newFakeProductRepo(
		&entity.Product{ID: "p1", Name: "Arroz Diana", Stock: 3, StockMin: 5},
		&entity.Product{ID: "p2", Name: "Aceite Premier", Stock: 5, StockMin: 5}, // en el umbral: cuenta
		&entity.Product{ID: "p3", Name: "Panela", Stock: 50, StockMin: 5},
	)
	uc := NewProductUseCase(repo)

	out, err := uc.ListLowStock()

	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)
	nombres := make(map[string]bool)
	for _, item := range out.Items {
		nombres[item.Name] = true
	}
	assert.True(t, nombres["Arroz Diana"])
	assert.True(t, nombres["Aceite Premier"])
	assert.False(t, nombres["Panela"])
}
