package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/construstock/internal/application/auth"
	"github.com/tu-usuario/construstock/internal/application/ledger"
	"github.com/tu-usuario/construstock/internal/application/usecase"
	"github.com/tu-usuario/construstock/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ItemUC     *usecase.ItemUseCase
	SupplierUC *usecase.SupplierUseCase
	ProjectUC  *usecase.ProjectUseCase
	CategoryUC *usecase.CategoryUseCase
	ReportUC   *usecase.ReportUseCase
	LedgerUC   *ledger.UseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
// Escritura de catálogos: admin y manager. Borrado: solo admin.
// Registro de transacciones: cualquier usuario autenticado.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	staff := RequireRole(entity.RoleAdmin, entity.RoleManager)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público salvo /me)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Inventario de materiales
	inventory := protected.Group("/inventory")
	itemHandler := NewItemHandler(deps.ItemUC)
	inventory.Get("/", itemHandler.List)
	inventory.Get("/alerts/low-stock", itemHandler.LowStockAlerts)
	inventory.Get("/:id", itemHandler.GetByID)
	inventory.Post("/", staff, itemHandler.Create)
	inventory.Put("/:id", staff, itemHandler.Update)
	inventory.Delete("/:id", adminOnly, itemHandler.Delete)

	// Proveedores
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Post("/", staff, supplierHandler.Create)
	suppliers.Put("/:id", staff, supplierHandler.Update)
	suppliers.Delete("/:id", adminOnly, supplierHandler.Delete)

	// Proyectos y asignaciones
	projects := protected.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC, deps.LedgerUC)
	projects.Get("/", projectHandler.List)
	projects.Get("/:id", projectHandler.GetByID)
	projects.Get("/:id/allocations", projectHandler.ListAllocations)
	projects.Post("/", staff, projectHandler.Create)
	projects.Post("/:id/allocate", staff, projectHandler.Allocate)
	projects.Put("/:id", staff, projectHandler.Update)
	projects.Delete("/:id", adminOnly, projectHandler.Delete)

	// Categorías
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", staff, categoryHandler.Create)

	// Ledger de transacciones
	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.LedgerUC, deps.ReportUC)
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/summary/overview", transactionHandler.Summary)
	transactions.Get("/:id", transactionHandler.GetByID)
	transactions.Post("/", transactionHandler.Create)

	// Reportes
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/dashboard", reportHandler.Dashboard)
	reports.Get("/inventory-value", reportHandler.InventoryValue)
	reports.Get("/stock-movement", reportHandler.StockMovement)
	reports.Get("/category-wise", reportHandler.CategoryWise)
	reports.Get("/supplier-performance", reportHandler.SupplierPerformance)
	reports.Get("/project-allocations", reportHandler.ProjectAllocations)
	reports.Get("/monthly-summary", reportHandler.MonthlySummary)
}
