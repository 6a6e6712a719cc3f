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

	"github.com/panasystem/panasystem-api/internal/application/auth"
	"github.com/panasystem/panasystem-api/internal/application/catalog"
	"github.com/panasystem/panasystem-api/internal/application/sales"
	"github.com/panasystem/panasystem-api/internal/application/statistics"
	"github.com/panasystem/panasystem-api/internal/application/usecase"
	infrapdf "github.com/panasystem/panasystem-api/internal/infrastructure/pdf"
	"github.com/panasystem/panasystem-api/internal/infrastructure/postgres"
	httpRouter "github.com/panasystem/panasystem-api/internal/interfaces/http"
	"github.com/panasystem/panasystem-api/pkg/config"
	"github.com/panasystem/panasystem-api/pkg/logger"
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

	productRepo := postgres.NewProductRepository(pool)
	historyRepo := postgres.NewPriceHistoryRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	brandRepo := postgres.NewBrandRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	statisticsRepo := postgres.NewStatisticsRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	orderRepo := postgres.NewSupplierOrderRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	expenseCategoryRepo := postgres.NewExpenseCategoryRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	receiptGen := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)

	productUC := catalog.NewProductUseCase(txRunner, productRepo, historyRepo, categoryRepo, brandRepo, supplierRepo)
	saleUC := sales.NewSaleUseCase(txRunner, saleRepo, productRepo, customerRepo, receiptGen)
	statisticsUC := statistics.NewStatisticsUseCase(statisticsRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	brandUC := usecase.NewBrandUseCase(brandRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	supplierOrderUC := usecase.NewSupplierOrderUseCase(txRunner, orderRepo, supplierRepo, productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, expenseCategoryRepo, employeeRepo, supplierRepo)
	expenseCategoryUC := usecase.NewExpenseCategoryUseCase(expenseCategoryRepo)
	authUC := auth.NewAuthUseCase(userRepo, cfg.JWT)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Panasystem API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:         productUC,
		SaleUC:            saleUC,
		StatisticsUC:      statisticsUC,
		CategoryUC:        categoryUC,
		BrandUC:           brandUC,
		SupplierUC:        supplierUC,
		SupplierOrderUC:   supplierOrderUC,
		CustomerUC:        customerUC,
		EmployeeUC:        employeeUC,
		ExpenseUC:         expenseUC,
		ExpenseCategoryUC: expenseCategoryUC,
		AuthUC:            authUC,
		JWTSecret:         cfg.JWT.Secret,
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
