package backend

import (
	"context"
	"net/http"
)

// TokenPair tokens JWT emitidos por el backend.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Login obtiene un par de tokens del backend con usuario y contraseña. Esta
// aplicación no guarda credenciales: solo reenvía y devuelve los tokens.
func (c *Client) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	body := map[string]string{"username": username, "password": password}
	var pair TokenPair
	if err := c.do(ctx, http.MethodPost, "/api/token/", nil, body, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

// RefreshToken renueva el token de acceso a partir del refresh token.
func (c *Client) RefreshToken(ctx context.Context, refresh string) (*TokenPair, error) {
	body := map[string]string{"refresh": refresh}
	var pair TokenPair
	if err := c.do(ctx, http.MethodPost, "/api/token/refresh/", nil, body, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}
