package inventory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarvides/tienda-stock/internal/domain"
	"github.com/omarvides/tienda-stock/internal/domain/entity"
	"github.com/omarvides/tienda-stock/internal/domain/repository"
)

// fakeStore simula la BD en memoria con semántica transaccional: cada Run
// trabaja sobre una copia y solo publica los cambios si fn retorna nil. El
// mutex serializa transacciones igual que lo hace el bloqueo de fila.
type fakeStore struct {
	mu       sync.Mutex
	products map[string]*entity.Product
	moves    []*entity.StockMovement

	failMovementCreate bool
	failUpdateStock    bool
	failCommit         bool
	runCalls           int
}

func newFakeStore(products ...*entity.Product) *fakeStore {
	s := &fakeStore{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		s.products[p.ID] = &cp
	}
	return s
}

func (s *fakeStore) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runCalls++

	staged := &stagedTx{store: s, products: make(map[string]*entity.Product)}
	if err := fn(&fakeMovementRepo{tx: staged}, &fakeProductRepo{tx: staged}); err != nil {
		return err
	}
	if s.failCommit {
		return errors.New("commit: conexión perdida")
	}
	// Commit: publicar cambios
	for id, p := range staged.products {
		s.products[id] = p
	}
	s.moves = append(s.moves, staged.moves...)
	return nil
}

type stagedTx struct {
	store    *fakeStore
	products map[string]*entity.Product
	moves    []*entity.StockMovement
}

func (tx *stagedTx) getProduct(id string) *entity.Product {
	if p, ok := tx.products[id]; ok {
		return p
	}
	if p, ok := tx.store.products[id]; ok {
		cp := *p
		tx.products[id] = &cp
		return &cp
	}
	return nil
}

type fakeMovementRepo struct{ tx *stagedTx }

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	if r.tx.store.failMovementCreate {
		return errors.New("insert movimiento: fallo inyectado")
	}
	cp := *m
	r.tx.moves = append(r.tx.moves, &cp)
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	for _, m := range r.tx.store.moves {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) List(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.tx.store.moves {
		if productID == "" || m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeProductRepo struct{ tx *stagedTx }

func (r *fakeProductRepo) Create(p *entity.Product) error  { return nil }
func (r *fakeProductRepo) Update(p *entity.Product) error  { return nil }
func (r *fakeProductRepo) Delete(id string) error          { return nil }
func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) GetByName(name string) (*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.tx.getProduct(id), nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.tx.getProduct(id), nil
}

func (r *fakeProductRepo) UpdateStock(productID string, stock int) error {
	if r.tx.store.failUpdateStock {
		return errors.New("update stock: fallo inyectado")
	}
	p := r.tx.getProduct(productID)
	if p == nil {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}

func producto(id, nombre string, stock int) *entity.Product {
	return &entity.Product{ID: id, Name: nombre, Stock: stock, StockMin: 5, StockMax: 100}
}

func TestRegisterMovement_SalidaDescuentaStock(t *testing.T) {
	store := newFakeStore(producto("p1", "Arroz Diana", 10))
	uc := NewRegisterMovementUseCase(store)

	mov, err := uc.RegisterMovement(context.Background(), MovementInput{
		ProductID: "p1",
		Type:      entity.MovementTypeSalida,
		Quantity:  5,
		Note:      "venta mostrador",
	})

	require.NoError(t, err)
	require.NotNil(t, mov)
	assert.NotEmpty(t, mov.ID)
	assert.Equal(t, entity.MovementTypeSalida, mov.Type)
	assert.Equal(t, 5, mov.Quantity)
	assert.Equal(t, 5, store.products["p1"].Stock)
	assert.Len(t, store.moves, 1)
}

func TestRegisterMovement_EntradaSumaStockSinTope(t *testing.T) {
	// stock_maximo es informativo: una entrada puede superarlo
	store := newFakeStore(producto("p1", "Arroz Diana", 10))
	uc := NewRegisterMovementUseCase(store)

	mov, err := uc.RegisterMovement(context.Background(), MovementInput{
		ProductID: "p1",
		Type:      entity.MovementTypeEntrada,
		Quantity:  100,
	})

	require.NoError(t, err)
	require.NotNil(t, mov)
	assert.Equal(t, 110, store.products["p1"].Stock)
}

func TestRegisterMovement_StockInsuficiente(t *testing.T) {
	store := newFakeStore(producto("p1", "Arroz Diana", 10))
	uc := NewRegisterMovementUseCase(store)

	mov, err := uc.RegisterMovement(context.Background(), MovementInput{
		ProductID: "p1",
		Type:      entity.MovementTypeSalida,
		Quantity:  20,
	})

	require.Error(t, err)
	assert.Nil(t, mov)

	var insufficientErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, "Arroz Diana", insufficientErr.ProductName)
	assert.Equal(t, 10, insufficientErr.Available)
	assert.Equal(t, 20, insufficientErr.Requested)
	assert.Equal(t, "Stock insuficiente. Solo tienes 10 unidades de Arroz Diana.", err.Error())

	// Rollback: ni asiento ni cambio de stock
	assert.Equal(t, 10, store.products["p1"].Stock)
	assert.Empty(t, store.moves)
}

func TestRegisterMovement_SalidaExactaDejaStockEnCero(t *testing.T) {
	store := newFakeStore(producto("p1", "Arroz Diana", 10))
	uc := NewRegisterMovementUseCase(store)

	_, err := uc.RegisterMovement(context.Background(), MovementInput{
		ProductID: "p1",
		Type:      entity.MovementTypeSalida,
		Quantity:  10,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, store.products["p1"].Stock)
}

func TestRegisterMovement_CantidadInvalida(t *testing.T) {
	store := newFakeStore(producto("p1", "Arroz Diana", 10))
	uc := NewRegisterMovementUseCase(store)

	for _, cantidad := range []int{0, -5} {
		_, err := uc.RegisterMovement(context.Background(), MovementInput{
			ProductID: "p1",
			Type:      entity.MovementTypeEntrada,
			Quantity:  cantidad,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "cantidad=%d", cantidad)
	}

	// La validación sin estado rechaza antes de abrir transacción
	assert.Equal(t, 0, store.runCalls)
}

func TestRegisterMovement_TipoInvalido(t *testing.T) {
	store := newFakeStore(producto("p1", "Arroz Diana", 10))
	uc := NewRegisterMovementUseCase(store)

	for _, tipo := range []string{"", "ENTRADA", "ajuste", "transferencia"} {
		_, err := uc.RegisterMovement(context.Background(), MovementInput{
			ProductID: "p1",
			Type:      tipo,
			Quantity:  1,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidMovementType, "tipo=%q", tipo)
	}
	assert.Equal(t, 0, store.runCalls)
}

func TestRegisterMovement_ProductoInexistente(t *testing.T) {
	store := newFakeStore()
	uc := NewRegisterMovementUseCase(store)

	_, err := uc.RegisterMovement(context.Background(), MovementInput{
		ProductID: "no-existe",
		Type:      entity.MovementTypeEntrada,
		Quantity:  1,
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, store.moves)
}

func TestRegisterMovement_AtomicidadAnteFallos(t *testing.T) {
	cases := []struct {
		name  string
		setup func(s *fakeStore)
	}{
		{"falla insert del movimiento", func(s *fakeStore) { s.failMovementCreate = true }},
		{"falla update del stock", func(s *fakeStore) { s.failUpdateStock = true }},
		{"falla el commit", func(s *fakeStore) { s.failCommit = true }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore(producto("p1", "Arroz Diana", 10))
			tc.setup(store)
			uc := NewRegisterMovementUseCase(store)

			_, err := uc.RegisterMovement(context.Background(), MovementInput{
				ProductID: "p1",
				Type:      entity.MovementTypeSalida,
				Quantity:  3,
			})

			require.Error(t, err)
			// Nada se publica a medias
			assert.Equal(t, 10, store.products["p1"].Stock)
			assert.Empty(t, store.moves)
		})
	}
}

func TestRegisterMovement_SalidasConcurrentesNoSobrevenden(t *testing.T) {
	// 10 unidades y 10 goroutines pidiendo 2 cada una: exactamente 5 deben
	// lograrlo y el stock final debe ser 0, nunca negativo.
	store := newFakeStore(producto("p1", "Arroz Diana", 10))
	uc := NewRegisterMovementUseCase(store)

	const goroutines = 10
	var wg sync.WaitGroup
	var exitos, rechazos int32
	var contadorMu sync.Mutex

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.RegisterMovement(context.Background(), MovementInput{
				ProductID: "p1",
				Type:      entity.MovementTypeSalida,
				Quantity:  2,
			})
			contadorMu.Lock()
			defer contadorMu.Unlock()
			if err == nil {
				exitos++
			} else {
				var insufficientErr *domain.InsufficientStockError
				require.ErrorAs(t, err, &insufficientErr)
				rechazos++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(5), exitos)
	assert.Equal(t, int32(5), rechazos)
	assert.Equal(t, 0, store.products["p1"].Stock)
	assert.Len(t, store.moves, 5)
}

func TestRegisterMovement_SumaDelLibroCoincideConStock(t *testing.T) {
	// Invariante: stock inicial + entradas - salidas == stock final
	store := newFakeStore(producto("p1", "Arroz Diana", 7))
	uc := NewRegisterMovementUseCase(store)

	movimientos := []MovementInput{
		{ProductID: "p1", Type: entity.MovementTypeEntrada, Quantity: 20},
		{ProductID: "p1", Type: entity.MovementTypeSalida, Quantity: 4},
		{ProductID: "p1", Type: entity.MovementTypeSalida, Quantity: 30}, // rechazada: solo hay 23
		{ProductID: "p1", Type: entity.MovementTypeEntrada, Quantity: 1},
		{ProductID: "p1", Type: entity.MovementTypeSalida, Quantity: 24},
	}
	for _, in := range movimientos {
		_, _ = uc.RegisterMovement(context.Background(), in)
	}

	saldo := 7
	for _, m := range store.moves {
		if m.Type == entity.MovementTypeEntrada {
			saldo += m.Quantity
		} else {
			saldo -= m.Quantity
		}
	}
	assert.Equal(t, saldo, store.products["p1"].Stock)
	assert.Equal(t, 0, store.products["p1"].Stock)
}

func TestRegisterMovement_ProductosDistintosNoSeMezclan(t *testing.T) {
	store := newFakeStore(
		producto("p1", "Arroz Diana", 10),
		producto("p2", "Aceite Premier", 3),
	)
	uc := NewRegisterMovementUseCase(store)

	_, err := uc.RegisterMovement(context.Background(), MovementInput{
		ProductID: "p1", Type: entity.MovementTypeSalida, Quantity: 8,
	})
	require.NoError(t, err)

	_, err = uc.RegisterMovement(context.Background(), MovementInput{
		ProductID: "p2", Type: entity.MovementTypeSalida, Quantity: 8,
	})
	require.Error(t, err)

	assert.Equal(t, 2, store.products["p1"].Stock)
	assert.Equal(t, 3, store.products["p2"].Stock)
}
