package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stockapp "github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/application/stock"
	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/domain/entity"
	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/domain/stock"
)

func ids(records []entity.StockRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestView_FiltraPorEtiquetaSinMayusculas(t *testing.T) {
	records := []entity.StockRecord{
		rec("agotado", "0", "10"),
		rec("critico", "1", "10"),
		rec("normal", "20", "10"),
	}

	view := stockapp.View(records, stockapp.Filter{Status: "crítico"}, stock.DefaultThresholds())
	require.Len(t, view, 1, "la etiqueta visible filtra sin distinguir mayúsculas")
	assert.Equal(t, "critico", view[0].ID)

	view = stockapp.View(records, stockapp.Filter{Status: "AGOTADO"}, stock.DefaultThresholds())
	require.Len(t, view, 1)
	assert.Equal(t, "agotado", view[0].ID)

	view = stockapp.View(records, stockapp.Filter{}, stock.DefaultThresholds())
	assert.Len(t, view, 3, "sin filtro de estado pasan todos")
}

// TestView_OrdenCritico: ascendente deja los registros sin datos al final,
// como si su ratio fuera +infinito; descendente es el reverso exacto.
func TestView_OrdenCritico(t *testing.T) {
	records := []entity.StockRecord{
		rec("medio", "5", "10"),       // 0.5
		recSinMinimo("sinDatos", "3"), // sin ratio
		rec("peor", "0.5", "10"),      // 0.05
		rec("mejor", "8", "10"),       // 0.8
	}

	asc := stockapp.View(records, stockapp.Filter{SortBy: "critical", SortOrder: "asc"}, stock.DefaultThresholds())
	assert.Equal(t, []string{"peor", "medio", "mejor", "sinDatos"}, ids(asc),
		"sin datos ordena como ratio infinito: al final en ascendente")

	desc := stockapp.View(records, stockapp.Filter{SortBy: "critical", SortOrder: "desc"}, stock.DefaultThresholds())
	assert.Equal(t, []string{"sinDatos", "mejor", "medio", "peor"}, ids(desc))
}

// TestView_OrdenEstable: los empates conservan el orden de llegada en ambas
// direcciones (se invierte el comparador, no la lista).
func TestView_OrdenEstable(t *testing.T) {
	records := []entity.StockRecord{
		rec("a", "1", "10"),
		rec("b", "2", "20"), // mismo ratio 0.1 que "a"
		rec("c", "3", "30"), // mismo ratio 0.1
		rec("d", "5", "10"), // 0.5
	}

	asc := stockapp.View(records, stockapp.Filter{SortBy: "critical"}, stock.DefaultThresholds())
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(asc))

	desc := stockapp.View(records, stockapp.Filter{SortBy: "critical", SortOrder: "desc"}, stock.DefaultThresholds())
	assert.Equal(t, []string{"d", "a", "b", "c"}, ids(desc),
		"los tres empatados siguen en orden de llegada aunque la dirección cambie")
}

// TestView_OrdenPorNombre usa colación española: la Ñ ordena como letra
// propia entre N y O, y los nombres vacíos van primero.
func TestView_OrdenPorNombre(t *testing.T) {
	conNombre := func(id, nombre string) entity.StockRecord {
		r := rec(id, "5", "10")
		r.Name = nombre
		return r
	}
	records := []entity.StockRecord{
		conNombre("olla", "Olla a presión"),
		conNombre("nandu", "Ñandú de peluche"),
		{ID: "anonimo", Name: ""},
		conNombre("nuez", "Nuez moscada"),
		conNombre("naranja", "Naranja valencia"),
	}

	asc := stockapp.View(records, stockapp.Filter{SortBy: "name"}, stock.DefaultThresholds())
	assert.Equal(t, []string{"anonimo", "naranja", "nuez", "nandu", "olla"}, ids(asc),
		"vacíos primero; después N < Ñ < O según la colación española")
}

func TestView_OrdenPorFaltantes(t *testing.T) {
	records := []entity.StockRecord{
		rec("faltan2", "8", "10"),
		rec("faltan9", "1", "10"),
		recSinMinimo("sinDatos", "1"), // cuenta 0 faltantes
		rec("sobra", "15", "10"),      // max(0, -5) = 0
	}

	desc := stockapp.View(records, stockapp.Filter{SortBy: "missing", SortOrder: "desc"}, stock.DefaultThresholds())
	assert.Equal(t, []string{"faltan9", "faltan2", "sinDatos", "sobra"}, ids(desc),
		"más faltantes primero; los ceros empatados conservan el orden de llegada")
}

func TestView_CriterioDesconocidoDegrada(t *testing.T) {
	records := []entity.StockRecord{
		rec("medio", "5", "10"),
		rec("peor", "1", "10"),
	}

	view := stockapp.View(records, stockapp.Filter{SortBy: "precio", SortOrder: "sideways"}, stock.DefaultThresholds())
	assert.Equal(t, []string{"peor", "medio"}, ids(view),
		"un criterio desconocido degrada a criticidad ascendente")
}

func TestView_NoMutaLaEntrada(t *testing.T) {
	records := []entity.StockRecord{
		rec("z", "9", "10"),
		rec("a", "1", "10"),
	}

	_ = stockapp.View(records, stockapp.Filter{SortBy: "critical"}, stock.DefaultThresholds())

	assert.Equal(t, []string{"z", "a"}, ids(records), "la función es pura: la entrada queda intacta")
}

func TestAlertFromRecord_ProyectaEstadoYRatio(t *testing.T) {
	alert := stockapp.AlertFromRecord(rec("p-2", "5", "10"), stock.DefaultThresholds())

	assert.Equal(t, "WARNING", alert.Status)
	assert.Equal(t, "Advertencia", alert.StatusLabel)
	require.NotNil(t, alert.StockRatio)
	assert.Equal(t, "0.5", alert.StockRatio.String())
	assert.Equal(t, "5", alert.MissingUnits.String())

	sinDatos := stockapp.AlertFromRecord(recSinMinimo("p-9", "4"), stock.DefaultThresholds())
	assert.Equal(t, "Sin datos", sinDatos.StatusLabel)
	assert.Nil(t, sinDatos.StockRatio, "sin datos completos no se inventa un ratio")
	assert.False(t, sinDatos.HasCompleteStockData)
}

func TestExportRow_DatosAusentesQuedanVacios(t *testing.T) {
	row := stockapp.ExportRowFromRecord(recSinStock("p-7", "10"), stock.DefaultThresholds())

	assert.Equal(t, "", row.CurrentStock, "dato ausente exporta vacío, nunca \"0\"")
	assert.Equal(t, "10", row.MinStock)
	assert.Equal(t, "Sin datos", row.StatusLabel)
	assert.Equal(t, "10", row.SuggestedQty, "la sugerencia degrada al mínimo conocido")
}
