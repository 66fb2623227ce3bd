package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/teatro-billing/internal/application/dto"
	"github.com/tu-usuario/teatro-billing/internal/application/statement"
	"github.com/tu-usuario/teatro-billing/internal/domain"
)

// StatementHandler maneja las peticiones HTTP de estados de cuenta (protegido).
type StatementHandler struct {
	uc *statement.GenerateUseCase
}

// NewStatementHandler construye el handler.
func NewStatementHandler(uc *statement.GenerateUseCase) *StatementHandler {
	return &StatementHandler{uc: uc}
}

// Generate genera el estado de cuenta de una factura enviada inline.
// POST /api/statements
func (h *StatementHandler) Generate(c *fiber.Ctx) error {
	var in dto.StatementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.FromRequest(c.Context(), in)
	if err != nil {
		return statementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ForInvoice genera el estado de cuenta de una factura persistida.
// GET /api/invoices/:id/statement
func (h *StatementHandler) ForInvoice(c *fiber.Ctx) error {
	out, err := h.uc.ForInvoice(c.Context(), c.Params("id"))
	if err != nil {
		return statementError(c, err)
	}
	return c.JSON(out)
}

// PDF genera la representación PDF del estado de cuenta.
// GET /api/invoices/:id/statement.pdf
func (h *StatementHandler) PDF(c *fiber.Ctx) error {
	out, err := h.uc.PDFForInvoice(c.Context(), c.Params("id"))
	if err != nil {
		return statementError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(out)
}

// XML genera el export XML del estado de cuenta.
// GET /api/invoices/:id/statement.xml
func (h *StatementHandler) XML(c *fiber.Ctx) error {
	out, err := h.uc.XMLForInvoice(c.Context(), c.Params("id"))
	if err != nil {
		return statementError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(out)
}

// GetByID devuelve un estado de cuenta previamente archivado.
// GET /api/statements/:id
func (h *StatementHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.ArchivedStatement(c.Context(), c.Params("id"))
	if err != nil {
		return statementError(c, err)
	}
	return c.JSON(out)
}

// statementError mapea los centinelas de dominio a códigos HTTP.
// Obra desconocida y género desconocido son datos irrecuperables del request o
// del catálogo: 422, sin estado de cuenta parcial.
func statementError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrUnknownPlay):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "UNKNOWN_PLAY", Message: err.Error()})
	case errors.Is(err, domain.ErrUnknownPlayType):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "UNKNOWN_PLAY_TYPE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
