// Package importer lee planillas xlsx para la carga masiva de productos.
// La primera hoja es la que vale: la fila 1 trae los nombres de columna y
// cada fila siguiente es un producto.
package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Fila es una fila de datos con acceso por nombre de columna. Columnas
// conserva el orden original de la planilla.
type Fila struct {
	Columnas []string
	valores  map[string]string
}

// Valor devuelve el valor de la columna, vacío si la celda no existe.
func (f Fila) Valor(columna string) string {
	return f.valores[columna]
}

// LeerPlanilla parsea el archivo y devuelve las filas de datos. Filas
// completamente vacías se descartan.
func LeerPlanilla(r io.Reader) ([]Fila, error) {
	archivo, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir planilla: %w", err)
	}
	defer archivo.Close()

	hojas := archivo.GetSheetList()
	if len(hojas) == 0 {
		return nil, fmt.Errorf("la planilla no tiene hojas")
	}

	filas, err := archivo.GetRows(hojas[0])
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", hojas[0], err)
	}
	if len(filas) == 0 {
		return nil, fmt.Errorf("la planilla está vacía")
	}

	encabezados := make([]string, 0, len(filas[0]))
	for _, h := range filas[0] {
		encabezados = append(encabezados, strings.TrimSpace(h))
	}

	// Las celdas de encabezado vacías no nombran columna: se saltean al mapear
	// valores y no aparecen en Columnas.
	columnas := make([]string, 0, len(encabezados))
	for _, col := range encabezados {
		if col != "" {
			columnas = append(columnas, col)
		}
	}

	datos := make([]Fila, 0, len(filas)-1)
	for _, cruda := range filas[1:] {
		valores := make(map[string]string, len(encabezados))
		vacia := true
		for i, col := range encabezados {
			if col == "" {
				continue
			}
			var v string
			if i < len(cruda) {
				v = strings.TrimSpace(cruda[i])
			}
			if v != "" {
				vacia = false
			}
			valores[col] = v
		}
		if vacia {
			continue
		}
		datos = append(datos, Fila{Columnas: columnas, valores: valores})
	}
	return datos, nil
}
