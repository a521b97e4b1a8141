package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")

	// Errores del carrito de facturación.
	ErrInvalidQuantity   = errors.New("la cantidad debe ser mayor a 0")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrMissingPrice      = errors.New("el producto no tiene precio")
	ErrLineOutOfRange    = errors.New("línea de detalle inexistente")
	ErrEmptyDraft        = errors.New("el borrador no tiene productos")
	ErrDraftNotFound     = errors.New("borrador no encontrado")
)
