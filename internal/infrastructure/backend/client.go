// Package backend implementa el cliente HTTP tipado del backend REST remoto
// (la fuente de verdad del sistema: productos, clientes, proveedores, órdenes
// de compra, recepciones, facturas y movimientos).
//
// Todo viaja como JSON sobre HTTP con Bearer token. La decodificación es
// estricta (DisallowUnknownFields): una respuesta con forma desconocida se
// rechaza en la frontera en lugar de aceptarse en silencio.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ferreteriapro/admin-api/internal/domain"
	"github.com/ferreteriapro/admin-api/pkg/config"
	"github.com/ferreteriapro/admin-api/pkg/logger"
)

// Page envoltorio de paginación del backend: {count, next, previous, results}.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// Client cliente HTTP del backend remoto. Seguro para uso concurrente.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logger.Logger
}

// New construye el cliente a partir de la configuración.
func New(cfg config.BackendConfig, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout: cfg.Timeout(),
		},
		log: log,
	}
}

// ── Token en contexto ─────────────────────────────────────────────────────────

type tokenKey struct{}

// WithToken devuelve un contexto que lleva el Bearer token del usuario. El
// middleware de auth lo inyecta y el cliente lo reenvía en cada petición
// (mismo patrón que el interceptor del cliente original).
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFrom(ctx context.Context) string {
	if v, ok := ctx.Value(tokenKey{}).(string); ok {
		return v
	}
	return ""
}

// ── Núcleo de peticiones ──────────────────────────────────────────────────────

// do ejecuta una petición JSON contra el backend. body y out pueden ser nil.
// Errores: ErrBackendUnavailable (transporte), domain.ErrNotFound (404),
// *RemoteError (resto de 4xx/5xx).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("backend: serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("backend: construir petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := tokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("backend inaccesible")
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		remote := &RemoteError{Status: resp.StatusCode, Message: parseAPIError(raw)}
		c.log.Warn().Int("status", resp.StatusCode).Str("method", method).Str("path", path).
			Str("mensaje", remote.Message).Msg("backend rechazó la petición")
		return remote
	}

	if out == nil {
		return nil
	}
	dec := json.NewDecoder(resp.Body)
	// Rechazar formas desconocidas en la frontera en vez de confiar en ellas
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("backend: respuesta con forma inesperada en %s: %w", path, err)
	}
	return nil
}

// parseAPIError extrae un mensaje legible del cuerpo de error del backend.
// El backend responde con varias formas: ["mensaje"], {"detail": "..."} o
// {"campo": ["error1", ...]}.
func parseAPIError(raw []byte) string {
	// Array plano de strings
	var arr []string
	if err := json.Unmarshal(raw, &arr); err == nil && len(arr) > 0 {
		return strings.Join(arr, "; ")
	}

	// {"detail": "..."}
	var detail struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &detail); err == nil && detail.Detail != "" {
		return detail.Detail
	}

	// Mapa campo -> lista de errores (estilo validación por campo)
	var byField map[string]json.RawMessage
	if err := json.Unmarshal(raw, &byField); err == nil && len(byField) > 0 {
		parts := make([]string, 0, len(byField))
		for field, msg := range byField {
			var msgs []string
			if json.Unmarshal(msg, &msgs) == nil && len(msgs) > 0 {
				parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(msgs, ", ")))
				continue
			}
			parts = append(parts, fmt.Sprintf("%s: %s", field, string(msg)))
		}
		return strings.Join(parts, "; ")
	}

	s := strings.TrimSpace(string(raw))
	if s == "" {
		return "error del backend sin detalle"
	}
	if len(s) > 300 {
		s = s[:300]
	}
	return s
}
