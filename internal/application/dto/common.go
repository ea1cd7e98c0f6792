package dto

// ErrorResponse cuerpo de error HTTP: mensaje legible y detalle opcional.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// MessageResponse confirmación simple.
type MessageResponse struct {
	Message string `json:"message"`
}

// SucursalRef referencia expandida a una sucursal.
type SucursalRef struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

// UsuarioRef referencia expandida a un usuario.
type UsuarioRef struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}
