package entity

// Supplier espeja el recurso /api/proveedores/ del backend remoto.
type Supplier struct {
	ID      int64  `json:"id"`
	Name    string `json:"nombre"`
	Phone   string `json:"telefono"`
	Email   string `json:"email"`
	Address string `json:"direccion"`
	Contact string `json:"contacto"`
	Active  bool   `json:"activo"`
}
