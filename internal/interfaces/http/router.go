package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/teatro-billing/internal/application/catalog"
	"github.com/tu-usuario/teatro-billing/internal/application/invoicing"
	"github.com/tu-usuario/teatro-billing/internal/application/statement"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC   *catalog.UseCase
	InvoicingUC *invoicing.UseCase
	StatementUC *statement.GenerateUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Todo el API va protegido con Bearer
// Token; el alta de obras además exige rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Catálogo de obras
	plays := api.Group("/plays")
	playHandler := NewPlayHandler(deps.CatalogUC)
	plays.Get("/", playHandler.List)
	plays.Get("/:id", playHandler.GetByID)
	plays.Post("/", RequireRole("admin"), playHandler.Create)

	// Facturas de funciones
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoicingUC)
	statementHandler := NewStatementHandler(deps.StatementUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/statement", statementHandler.ForInvoice)
	invoices.Get("/:id/statement.pdf", statementHandler.PDF)
	invoices.Get("/:id/statement.xml", statementHandler.XML)

	// Estados de cuenta: generación sobre factura inline y lectura del archivo
	api.Post("/statements", statementHandler.Generate)
	api.Get("/statements/:id", statementHandler.GetByID)
}
