package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"

	_ "github.com/jmontoya/spapos-api/docs"
	"github.com/jmontoya/spapos-api/internal/application/auth"
	"github.com/jmontoya/spapos-api/internal/application/inventory"
	"github.com/jmontoya/spapos-api/internal/application/reports"
	"github.com/jmontoya/spapos-api/internal/application/sales"
	"github.com/jmontoya/spapos-api/internal/application/usecase"
	infrapdf "github.com/jmontoya/spapos-api/internal/infrastructure/pdf"
	"github.com/jmontoya/spapos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jmontoya/spapos-api/internal/interfaces/http"
	"github.com/jmontoya/spapos-api/pkg/config"
	"github.com/jmontoya/spapos-api/pkg/logger"
)

// @title        SPA POS API
// @version      1.0
// @description  API de punto de venta e inventario para spa.
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
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

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	therapistRepo := postgres.NewTherapistRepository(pool)
	voucherRepo := postgres.NewVoucherRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	adjustmentRepo := postgres.NewAdjustmentRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	therapistUC := usecase.NewTherapistUseCase(therapistRepo)
	voucherUC := usecase.NewVoucherUseCase(voucherRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)

	receiptGen := infrapdf.NewMarotoReceiptGenerator()
	salesUC := sales.NewUseCase(
		txRunner, saleRepo, customerRepo, therapistRepo,
		voucherRepo, settingsRepo, receiptGen, log,
	)
	adjustmentUC := inventory.NewUseCase(txRunner, adjustmentRepo, log)
	reportsUC := reports.NewUseCase(reportRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if doc, err := swag.ReadDoc(); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath:    "/",
			FileContent: []byte(doc),
			Path:        "docs",
			Title:       "SPA POS API",
		}))
	} else {
		log.Warn().Err(err).Msg("spec swagger no disponible")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ProductUC:    productUC,
		CategoryUC:   categoryUC,
		CustomerUC:   customerUC,
		TherapistUC:  therapistUC,
		VoucherUC:    voucherUC,
		ExpenseUC:    expenseUC,
		SettingsUC:   settingsUC,
		SalesUC:      salesUC,
		AdjustmentUC: adjustmentUC,
		ReportsUC:    reportsUC,
		JWTSecret:    cfg.JWT.Secret,
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
