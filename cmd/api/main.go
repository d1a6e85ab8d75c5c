package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/omarvides/tienda-stock/internal/application/inventory"
	"github.com/omarvides/tienda-stock/internal/application/usecase"
	"github.com/omarvides/tienda-stock/internal/infrastructure/cache"
	"github.com/omarvides/tienda-stock/internal/infrastructure/postgres"
	httpRouter "github.com/omarvides/tienda-stock/internal/interfaces/http"
	"github.com/omarvides/tienda-stock/pkg/config"
	"github.com/omarvides/tienda-stock/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Caché opcional: si REDIS_ADDR está vacío o Redis no responde, la app
	// arranca sin caché y todo va directo a BD.
	var cacheClient cache.Client
	if cfg.Cache.Addr != "" {
		redisClient, err := cache.NewRedisClient(cfg.Cache.Addr)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Cache.Addr).Msg("Redis no disponible, continuando sin caché")
		} else {
			defer redisClient.Close()
			cacheClient = redisClient
			log.Info().Str("addr", cfg.Cache.Addr).Msg("caché Redis conectado")
		}
	}

	productRepo := postgres.NewProductRepository(pool, cacheClient)
	customerRepo := postgres.NewCustomerRepository(pool)
	workerRepo := postgres.NewWorkerRepository(pool)
	cashierRepo := postgres.NewCashierRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool, cacheClient)

	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	workerUC := usecase.NewWorkerUseCase(workerRepo)
	cashierUC := usecase.NewCashierUseCase(cashierRepo)
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner)
	listMovementsUC := inventory.NewListMovementsUseCase(movementRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tienda Stock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:        productUC,
		CustomerUC:       customerUC,
		WorkerUC:         workerUC,
		CashierUC:        cashierUC,
		RegisterMovement: registerMovementUC,
		ListMovements:    listMovementsUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
