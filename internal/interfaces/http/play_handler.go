package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/teatro-billing/internal/application/catalog"
	"github.com/tu-usuario/teatro-billing/internal/application/dto"
	"github.com/tu-usuario/teatro-billing/internal/domain"
)

// PlayHandler maneja las peticiones HTTP del catálogo de obras (protegido).
type PlayHandler struct {
	uc *catalog.UseCase
}

// NewPlayHandler construye el handler.
func NewPlayHandler(uc *catalog.UseCase) *PlayHandler {
	return &PlayHandler{uc: uc}
}

// Create registra una obra en el catálogo. El género se valida aquí, en la
// frontera: géneros fuera del conjunto cerrado se rechazan.
// POST /api/plays
func (h *PlayHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePlayRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	play, err := h.uc.CreatePlay(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrUnknownPlayType):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "UNKNOWN_PLAY_TYPE", Message: err.Error()})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una obra con ese id"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(play)
}

// List devuelve el catálogo completo.
// GET /api/plays
func (h *PlayHandler) List(c *fiber.Ctx) error {
	plays, err := h.uc.ListPlays(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrUnknownPlayType) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "UNKNOWN_PLAY_TYPE", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(plays)
}

// GetByID devuelve una obra por ID.
// GET /api/plays/:id
func (h *PlayHandler) GetByID(c *fiber.Ctx) error {
	play, err := h.uc.GetPlay(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "obra no encontrada"})
		case errors.Is(err, domain.ErrUnknownPlayType):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "UNKNOWN_PLAY_TYPE", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(play)
}
