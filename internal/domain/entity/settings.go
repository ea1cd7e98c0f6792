package entity

// Settings es la configuración global mutable del negocio. Se lee en el
// momento de uso, nunca se cachea en memoria.
type Settings struct {
	ID             string
	AutoGenerarSKU bool
}
