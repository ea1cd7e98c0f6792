package usecase

import (
	"fmt"
	"time"
)

// Formatos de fecha aceptados en entradas: fecha simple o timestamp completo.
var formatosFecha = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
}

// parseFecha interpreta una fecha enviada por el cliente.
func parseFecha(s string) (time.Time, error) {
	for _, layout := range formatosFecha {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha inválida: %q", s)
}
