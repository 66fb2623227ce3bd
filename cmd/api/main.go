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

	"github.com/tu-usuario/teatro-billing/internal/application/catalog"
	"github.com/tu-usuario/teatro-billing/internal/application/invoicing"
	"github.com/tu-usuario/teatro-billing/internal/application/statement"
	"github.com/tu-usuario/teatro-billing/internal/infrastructure/export"
	infrapdf "github.com/tu-usuario/teatro-billing/internal/infrastructure/pdf"
	"github.com/tu-usuario/teatro-billing/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/teatro-billing/internal/interfaces/http"
	"github.com/tu-usuario/teatro-billing/pkg/config"
	"github.com/tu-usuario/teatro-billing/pkg/currency"
	"github.com/tu-usuario/teatro-billing/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
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

	playRepo := postgres.NewPlayRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	statementRepo := postgres.NewStatementRepository(pool)

	money := currency.New(cfg.Billing.Locale, cfg.Billing.CurrencySymbol)
	statementUC := statement.NewGenerateUseCase(
		playRepo, invoiceRepo, statementRepo, money,
		infrapdf.NewMarotoStatementGenerator(),
		export.NewXMLBuilderService(),
		log,
	)

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
		Title:    "Teatro Billing API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:   catalog.NewUseCase(playRepo),
		InvoicingUC: invoicing.NewUseCase(invoiceRepo, playRepo),
		StatementUC: statementUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
