// Package http expone la API de administración sobre Fiber: handlers finos
// que parsean, delegan en los casos de uso y mapean errores a HTTP.
package http

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ferreteriapro/admin-api/internal/application/dto"
)

// pathID lee el parámetro :id numérico. Si es inválido escribe el 400 y
// devuelve ok=false; el handler debe retornar nil sin hacer más.
func pathID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
		return 0, false
	}
	return id, true
}

// bodyMap parsea el cuerpo JSON como mapa genérico para reenviarlo al backend
// sin re-tipar cada recurso CRUD. Si es inválido escribe el 400 y devuelve
// ok=false.
func bodyMap(c *fiber.Ctx) (map[string]any, bool) {
	var in map[string]any
	if err := c.BodyParser(&in); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		return nil, false
	}
	if in == nil {
		in = map[string]any{}
	}
	return in, true
}

// queryValues convierte la query string de Fiber a url.Values para el cliente
// del backend (los filtros se reenvían tal cual).
func queryValues(c *fiber.Ctx) url.Values {
	params := url.Values{}
	c.Request().URI().QueryArgs().VisitAll(func(key, value []byte) {
		params.Add(string(key), string(value))
	})
	return params
}
