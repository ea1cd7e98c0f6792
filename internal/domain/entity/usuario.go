package entity

import "time"

// Usuario es la persona responsable de un movimiento de caja.
// La autenticación se resuelve fuera de este servicio; acá solo se referencia.
type Usuario struct {
	ID        string
	Nombre    string
	Email     string
	CreatedAt time.Time
}
