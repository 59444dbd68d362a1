package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmontoya/spapos-api/internal/application/auth"
	"github.com/jmontoya/spapos-api/internal/application/inventory"
	"github.com/jmontoya/spapos-api/internal/application/reports"
	"github.com/jmontoya/spapos-api/internal/application/sales"
	"github.com/jmontoya/spapos-api/internal/application/usecase"
	"github.com/jmontoya/spapos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	ProductUC    *usecase.ProductUseCase
	CategoryUC   *usecase.CategoryUseCase
	CustomerUC   *usecase.CustomerUseCase
	TherapistUC  *usecase.TherapistUseCase
	VoucherUC    *usecase.VoucherUseCase
	ExpenseUC    *usecase.ExpenseUseCase
	SettingsUC   *usecase.SettingsUseCase
	SalesUC      *sales.UseCase
	AdjustmentUC *inventory.UseCase
	ReportsUC    *reports.UseCase
	JWTSecret    string
}

// Router registra las rutas de la API. Todo excepto el login requiere Bearer
// Token; las operaciones administrativas exigen además rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (login público, registro solo admin)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/register", AuthMiddleware(deps.JWTSecret), adminOnly, authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (solo admin)
	protected.Get("/users", adminOnly, authHandler.ListUsers)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", adminOnly, customerHandler.Delete)

	// Therapists
	therapists := protected.Group("/therapists")
	therapistHandler := NewTherapistHandler(deps.TherapistUC)
	reportHandler := NewReportHandler(deps.ReportsUC)
	therapists.Post("/", therapistHandler.Create)
	therapists.Get("/", therapistHandler.List)
	therapists.Get("/active", therapistHandler.ListActive)
	therapists.Get("/report", reportHandler.TherapistLeaderboard)
	therapists.Put("/:id", therapistHandler.Update)
	therapists.Delete("/:id", adminOnly, therapistHandler.Delete)

	// Vouchers (gestión solo admin, lectura para todos)
	vouchers := protected.Group("/vouchers")
	voucherHandler := NewVoucherHandler(deps.VoucherUC)
	vouchers.Get("/", voucherHandler.List)
	vouchers.Get("/active", voucherHandler.ListActive)
	vouchers.Get("/validate", voucherHandler.Validate)
	vouchers.Post("/", adminOnly, voucherHandler.Create)
	vouchers.Put("/:id", adminOnly, voucherHandler.Update)
	vouchers.Delete("/:id", adminOnly, voucherHandler.Delete)

	// Expenses (solo admin)
	expenses := protected.Group("/expenses", adminOnly)
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Settings (edición solo admin)
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	protected.Get("/settings", settingsHandler.Get)
	protected.Put("/settings", adminOnly, settingsHandler.Update)

	// Sales (núcleo del POS; retractar es solo admin). Las rutas estáticas de
	// reportes van antes de /:id para que Fiber no las capture como parámetro.
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SalesUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/today", reportHandler.TodaySales)
	salesGroup.Get("/topproducts", reportHandler.TopProducts)
	salesGroup.Get("/allselling", reportHandler.AllSellingProducts)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Put("/:id", saleHandler.Update)
	salesGroup.Put("/:id/pay", saleHandler.Pay)
	salesGroup.Put("/:id/retract", adminOnly, saleHandler.Retract)
	salesGroup.Get("/:id/receipt.pdf", saleHandler.Receipt)

	// Stock adjustments (solo admin)
	adjustments := protected.Group("/adjustments", adminOnly)
	adjustmentHandler := NewAdjustmentHandler(deps.AdjustmentUC)
	adjustments.Post("/", adjustmentHandler.Create)
	adjustments.Get("/", adjustmentHandler.List)
}
