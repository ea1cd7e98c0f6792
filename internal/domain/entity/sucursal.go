package entity

import "time"

// Sucursal es un local físico; unidad de alcance para caja e inventario.
type Sucursal struct {
	ID        string
	Nombre    string
	Direccion string
	CreatedAt time.Time
}
