package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ferreteriapro/admin-api/internal/application/dto"
	"github.com/ferreteriapro/admin-api/internal/domain"
	"github.com/ferreteriapro/admin-api/internal/infrastructure/backend"
)

// respondError mapea los errores de dominio e infraestructura a respuestas
// HTTP uniformes:
//
//	errores del borrador      → 400/409 con código propio
//	no encontrado             → 404
//	backend rechaza (4xx)     → mismo status, código BACKEND_REJECTED
//	backend falla (5xx)       → 502 BACKEND
//	backend inaccesible       → 503 BACKEND_UNAVAILABLE
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: domain.ErrInvalidQuantity.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: domain.ErrInsufficientStock.Error()})
	case errors.Is(err, domain.ErrMissingPrice):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_PRICE", Message: domain.ErrMissingPrice.Error()})
	case errors.Is(err, domain.ErrLineOutOfRange):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "LINE_OUT_OF_RANGE", Message: domain.ErrLineOutOfRange.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrDraftNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, backend.ErrBackendUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "BACKEND_UNAVAILABLE", Message: "el backend no está disponible, intente de nuevo"})
	}

	if remote, ok := backend.AsRemoteError(err); ok {
		if remote.Status >= 400 && remote.Status < 500 {
			// El backend rechazó datos del usuario: el status se propaga
			return c.Status(remote.Status).JSON(dto.ErrorResponse{Code: "BACKEND_REJECTED", Message: remote.Message})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND", Message: remote.Message})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
