package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarvides/tienda-stock/internal/application/dto"
	"github.com/omarvides/tienda-stock/internal/application/inventory"
	"github.com/omarvides/tienda-stock/internal/domain"
	"github.com/omarvides/tienda-stock/internal/domain/entity"
	"github.com/omarvides/tienda-stock/internal/domain/repository"
	httpiface "github.com/omarvides/tienda-stock/internal/interfaces/http"
)

// memStore fake en memoria sin transacciones reales: suficiente para probar el
// mapeo HTTP (status, códigos y cuerpos). La semántica transaccional se prueba
// en el paquete inventory.
type memStore struct {
	products map[string]*entity.Product
	moves    []*entity.StockMovement
}

func (s *memStore) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(&memMovRepo{s}, &memProductRepo{s})
}

type memMovRepo struct{ s *memStore }

func (r *memMovRepo) Create(m *entity.StockMovement) error {
	cp := *m
	r.s.moves = append(r.s.moves, &cp)
	return nil
}

func (r *memMovRepo) GetByID(id string) (*entity.StockMovement, error) {
	for _, m := range r.s.moves {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

// List devuelve del más reciente al más antiguo, como el repositorio real.
func (r *memMovRepo) List(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	var filtered []*entity.StockMovement
	for _, m := range r.s.moves {
		if productID == "" || m.ProductID == productID {
			filtered = append(filtered, m)
		}
	}
	var out []*entity.StockMovement
	for i := len(filtered) - 1; i >= 0; i-- {
		out = append(out, filtered[i])
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(p *entity.Product) error { return nil }
func (r *memProductRepo) Update(p *entity.Product) error { return nil }
func (r *memProductRepo) Delete(id string) error         { return nil }
func (r *memProductRepo) ListLowStock() ([]*entity.Product, error) {
	return nil, nil
}
func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *memProductRepo) GetByName(name string) (*entity.Product, error) {
	return nil, nil
}
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.s.products[id], nil
}
func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.s.products[id], nil
}
func (r *memProductRepo) UpdateStock(productID string, stock int) error {
	p := r.s.products[productID]
	if p == nil {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}

func newTestApp(store *memStore) *fiber.App {
	app := fiber.New()
	handler := httpiface.NewMovementHandler(
		inventory.NewRegisterMovementUseCase(store),
		inventory.NewListMovementsUseCase(&memMovRepo{store}),
	)
	app.Post("/api/movimientos", handler.Register)
	app.Get("/api/movimientos", handler.List)
	return app
}

func postMovimiento(t *testing.T, app *fiber.App, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/api/movimientos", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func TestMovementHandler_RegisterCreated(t *testing.T) {
	store := &memStore{products: map[string]*entity.Product{
		"p1": {ID: "p1", Name: "Arroz Diana", Stock: 10},
	}}
	app := newTestApp(store)

	status, raw := postMovimiento(t, app, `{"producto":"p1","tipo":"salida","cantidad":5,"nota":"venta"}`)

	require.Equal(t, fiber.StatusCreated, status)

	var out dto.MovementResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "p1", out.ProductID)
	assert.Equal(t, "salida", out.Type)
	assert.Equal(t, 5, out.Quantity)
	assert.Equal(t, "venta", out.Note)
	assert.False(t, out.Date.IsZero())

	assert.Equal(t, 5, store.products["p1"].Stock)
}

func TestMovementHandler_RegisterStockInsuficiente(t *testing.T) {
	store := &memStore{products: map[string]*entity.Product{
		"p1": {ID: "p1", Name: "Arroz Diana", Stock: 10},
	}}
	app := newTestApp(store)

	status, raw := postMovimiento(t, app, `{"producto":"p1","tipo":"salida","cantidad":20}`)

	require.Equal(t, fiber.StatusBadRequest, status)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "STOCK_INSUFICIENTE", out.Code)
	assert.Equal(t, "Stock insuficiente. Solo tienes 10 unidades de Arroz Diana.", out.Message)

	assert.Equal(t, 10, store.products["p1"].Stock)
}

func TestMovementHandler_RegisterValidacion(t *testing.T) {
	store := &memStore{products: map[string]*entity.Product{
		"p1": {ID: "p1", Name: "Arroz Diana", Stock: 10},
	}}
	app := newTestApp(store)

	cases := []struct {
		name string
		body string
	}{
		{"cantidad cero", `{"producto":"p1","tipo":"entrada","cantidad":0}`},
		{"cantidad negativa", `{"producto":"p1","tipo":"salida","cantidad":-3}`},
		{"tipo desconocido", `{"producto":"p1","tipo":"ajuste","cantidad":1}`},
		{"producto vacío", `{"producto":"","tipo":"entrada","cantidad":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, raw := postMovimiento(t, app, tc.body)
			require.Equal(t, fiber.StatusBadRequest, status)

			var out dto.ErrorResponse
			require.NoError(t, json.Unmarshal(raw, &out))
			assert.Equal(t, "VALIDATION", out.Code)
		})
	}
}

func TestMovementHandler_RegisterProductoInexistente(t *testing.T) {
	store := &memStore{products: map[string]*entity.Product{}}
	app := newTestApp(store)

	status, raw := postMovimiento(t, app, `{"producto":"no-existe","tipo":"entrada","cantidad":1}`)

	require.Equal(t, fiber.StatusNotFound, status)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "NOT_FOUND", out.Code)
}

func TestMovementHandler_ListMasRecientesPrimero(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	store := &memStore{
		products: map[string]*entity.Product{"p1": {ID: "p1", Name: "Arroz Diana", Stock: 50}},
		moves: []*entity.StockMovement{
			{ID: "m1", ProductID: "p1", Type: "entrada", Quantity: 10, CreatedAt: base},
			{ID: "m2", ProductID: "p1", Type: "salida", Quantity: 3, CreatedAt: base.Add(time.Hour)},
			{ID: "m3", ProductID: "p2", Type: "entrada", Quantity: 1, CreatedAt: base.Add(2 * time.Hour)},
		},
	}
	app := newTestApp(store)

	req := httptest.NewRequest(fiber.MethodGet, "/api/movimientos?producto=p1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.MovementListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Items, 2)
	assert.Equal(t, "m2", out.Items[0].ID)
	assert.Equal(t, "m1", out.Items[1].ID)
	assert.Equal(t, 20, out.Page.Limit)
}

func TestMovementHandler_ListProductoSinMovimientos(t *testing.T) {
	store := &memStore{products: map[string]*entity.Product{}}
	app := newTestApp(store)

	req := httptest.NewRequest(fiber.MethodGet, "/api/movimientos?producto=desconocido", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	// Lista vacía, no 404: consultar el libro de un producto sin historia es válido
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.MovementListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Empty(t, out.Items)
}
