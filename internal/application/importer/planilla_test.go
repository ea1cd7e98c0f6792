package importer_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jpereyra/gestion-comercio-api/internal/application/importer"
)

// armarXLSX construye una planilla en memoria, fila por fila.
func armarXLSX(t *testing.T, filas ...[]interface{}) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, fila := range filas {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &fila))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return bytes.NewReader(buf.Bytes())
}

func TestLeerPlanilla_AccesoPorColumna(t *testing.T) {
	archivo := armarXLSX(t,
		[]interface{}{"nombre", " categoria ", "precio"},
		[]interface{}{"Lapicera", "Escritura", "120,50"},
		[]interface{}{"Cuaderno", "Papelería", "300"},
	)

	filas, err := importer.LeerPlanilla(archivo)

	require.NoError(t, err)
	require.Len(t, filas, 2)
	assert.Equal(t, []string{"nombre", "categoria", "precio"}, filas[0].Columnas,
		"los encabezados se recortan")
	assert.Equal(t, "Lapicera", filas[0].Valor("nombre"))
	assert.Equal(t, "120,50", filas[0].Valor("precio"))
	assert.Equal(t, "Cuaderno", filas[1].Valor("nombre"))
}

func TestLeerPlanilla_ColumnaAusenteDevuelveVacio(t *testing.T) {
	archivo := armarXLSX(t,
		[]interface{}{"nombre", "categoria"},
		[]interface{}{"Lapicera"},
	)

	filas, err := importer.LeerPlanilla(archivo)

	require.NoError(t, err)
	require.Len(t, filas, 1)
	assert.Empty(t, filas[0].Valor("categoria"))
	assert.Empty(t, filas[0].Valor("columna-inventada"))
}

func TestLeerPlanilla_DescartaFilasVacias(t *testing.T) {
	archivo := armarXLSX(t,
		[]interface{}{"nombre", "categoria"},
		[]interface{}{"", ""},
		[]interface{}{"Lapicera", "Escritura"},
	)

	filas, err := importer.LeerPlanilla(archivo)

	require.NoError(t, err)
	require.Len(t, filas, 1)
	assert.Equal(t, "Lapicera", filas[0].Valor("nombre"))
}

// Un encabezado vacío no nombra columna: la celda debajo se ignora y no
// aparece en Columnas.
func TestLeerPlanilla_EncabezadoVacioSeSaltea(t *testing.T) {
	archivo := armarXLSX(t,
		[]interface{}{"nombre", "", "categoria"},
		[]interface{}{"Lapicera", "basura", "Escritura"},
	)

	filas, err := importer.LeerPlanilla(archivo)

	require.NoError(t, err)
	require.Len(t, filas, 1)
	assert.Equal(t, []string{"nombre", "categoria"}, filas[0].Columnas)
	assert.Equal(t, "Escritura", filas[0].Valor("categoria"))
	assert.Empty(t, filas[0].Valor(""))
}

func TestLeerPlanilla_ArchivoInvalido(t *testing.T) {
	_, err := importer.LeerPlanilla(bytes.NewReader([]byte("no es un zip")))

	assert.Error(t, err)
}

func TestLeerPlanilla_SoloEncabezados(t *testing.T) {
	archivo := armarXLSX(t, []interface{}{"nombre", "categoria"})

	filas, err := importer.LeerPlanilla(archivo)

	require.NoError(t, err)
	assert.Empty(t, filas)
}
