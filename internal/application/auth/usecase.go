// Package auth reenvía la autenticación al backend remoto, que es quien
// guarda los usuarios y emite los tokens JWT. Esta aplicación solo los valida.
package auth

import (
	"context"

	"github.com/ferreteriapro/admin-api/internal/application/dto"
	"github.com/ferreteriapro/admin-api/internal/infrastructure/backend"
)

// AuthUseCase inicio de sesión y renovación de tokens.
type AuthUseCase struct {
	gw *backend.Client
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(gw *backend.Client) *AuthUseCase {
	return &AuthUseCase{gw: gw}
}

// Login reenvía las credenciales al backend y devuelve el par de tokens.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	pair, err := uc.gw.Login(ctx, in.Username, in.Password)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Access: pair.Access, Refresh: pair.Refresh}, nil
}

// Refresh renueva el token de acceso.
func (uc *AuthUseCase) Refresh(ctx context.Context, refresh string) (*dto.LoginResponse, error) {
	pair, err := uc.gw.RefreshToken(ctx, refresh)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Access: pair.Access, Refresh: pair.Refresh}, nil
}
