package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/omarvides/tienda-stock/internal/application/inventory"
	"github.com/omarvides/tienda-stock/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	CustomerUC       *usecase.CustomerUseCase
	WorkerUC         *usecase.WorkerUseCase
	CashierUC        *usecase.CashierUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	ListMovements    *inventory.ListMovementsUseCase
}

// Router registra las rutas de la API (las mismas del router original:
// productos, clientes, trabajadores, cajeros, movimientos).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Productos
	products := api.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/stock-bajo", productHandler.LowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Movimientos de stock (libro append-only; sin PUT ni DELETE)
	movements := api.Group("/movimientos")
	movementHandler := NewMovementHandler(deps.RegisterMovement, deps.ListMovements)
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Register)

	// Clientes
	customers := api.Group("/clientes")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Trabajadores
	workers := api.Group("/trabajadores")
	workerHandler := NewWorkerHandler(deps.WorkerUC)
	workers.Get("/", workerHandler.List)
	workers.Post("/", workerHandler.Create)
	workers.Get("/:id", workerHandler.GetByID)
	workers.Put("/:id", workerHandler.Update)
	workers.Delete("/:id", workerHandler.Delete)

	// Cajeros
	cashiers := api.Group("/cajeros")
	cashierHandler := NewCashierHandler(deps.CashierUC)
	cashiers.Get("/", cashierHandler.List)
	cashiers.Post("/", cashierHandler.Create)
	cashiers.Get("/:id", cashierHandler.GetByID)
	cashiers.Put("/:id", cashierHandler.Update)
	cashiers.Delete("/:id", cashierHandler.Delete)
}
