package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrUnknownPlay     = errors.New("obra no registrada en el catálogo")
	ErrUnknownPlayType = errors.New("tipo de obra no soportado")
)
