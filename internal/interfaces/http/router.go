package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/panasystem/panasystem-api/internal/application/auth"
	"github.com/panasystem/panasystem-api/internal/application/catalog"
	"github.com/panasystem/panasystem-api/internal/application/sales"
	"github.com/panasystem/panasystem-api/internal/application/statistics"
	"github.com/panasystem/panasystem-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC         *catalog.ProductUseCase
	SaleUC            *sales.SaleUseCase
	StatisticsUC      *statistics.StatisticsUseCase
	CategoryUC        *usecase.CategoryUseCase
	BrandUC           *usecase.BrandUseCase
	SupplierUC        *usecase.SupplierUseCase
	SupplierOrderUC   *usecase.SupplierOrderUseCase
	CustomerUC        *usecase.CustomerUseCase
	EmployeeUC        *usecase.EmployeeUseCase
	ExpenseUC         *usecase.ExpenseUseCase
	ExpenseCategoryUC *usecase.ExpenseCategoryUseCase
	AuthUC            *auth.AuthUseCase
	JWTSecret         string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:id/price-history", productHandler.PriceHistory)

	// Sales (protegido). /totals antes que /:id para que no lo capture el param.
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/totals", saleHandler.Totals)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Put("/:id", saleHandler.Update)
	salesGroup.Delete("/:id", saleHandler.Delete)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)

	// Statistics (protegido, solo lectura)
	stats := protected.Group("/statistics")
	statisticsHandler := NewStatisticsHandler(deps.StatisticsUC)
	stats.Get("/", statisticsHandler.Get)
	stats.Get("/custom", statisticsHandler.Custom)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Brands (protegido)
	brands := protected.Group("/brands")
	brandHandler := NewBrandHandler(deps.BrandUC)
	brands.Post("/", brandHandler.Create)
	brands.Get("/", brandHandler.List)
	brands.Get("/:id", brandHandler.GetByID)
	brands.Put("/:id", brandHandler.Update)
	brands.Delete("/:id", brandHandler.Delete)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Supplier orders (protegido)
	orders := protected.Group("/supplier-orders")
	orderHandler := NewSupplierOrderHandler(deps.SupplierOrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Employees (protegido)
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Expenses (protegido)
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/:id", expenseHandler.GetByID)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Expense categories (protegido)
	expenseCategories := protected.Group("/expense-categories")
	expenseCategoryHandler := NewExpenseCategoryHandler(deps.ExpenseCategoryUC)
	expenseCategories.Post("/", expenseCategoryHandler.Create)
	expenseCategories.Get("/", expenseCategoryHandler.List)
	expenseCategories.Get("/:id", expenseCategoryHandler.GetByID)
	expenseCategories.Put("/:id", expenseCategoryHandler.Update)
	expenseCategories.Delete("/:id", expenseCategoryHandler.Delete)
}
