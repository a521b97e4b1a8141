package dto

// LoginRequest credenciales de acceso. Se reenvían al backend remoto; esta
// aplicación no guarda usuarios ni contraseñas.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse par de tokens emitidos por el backend.
type LoginResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RefreshRequest renovación del token de acceso.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}
