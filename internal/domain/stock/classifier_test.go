package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/domain/entity"
	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Builders compartidos por los tests del paquete. Un registro "completo" tiene
// CurrentStock y MinStock presentes con MinStock > 0; las variantes incompletas
// reproducen los huecos reales del catálogo (campo ausente o mínimo en cero).
// ──────────────────────────────────────────────────────────────────────────────

func record(current, min string) entity.StockRecord {
	c := decimal.RequireFromString(current)
	m := decimal.RequireFromString(min)
	return entity.StockRecord{
		ID:                   "p-1",
		Name:                 "Tornillo 3/8",
		CurrentStock:         &c,
		MinStock:             &m,
		HasCompleteStockData: m.IsPositive(),
	}
}

func recordWithoutMin(current string) entity.StockRecord {
	c := decimal.RequireFromString(current)
	return entity.StockRecord{ID: "p-2", Name: "Tuerca M8", CurrentStock: &c}
}

func recordWithoutStock(min string) entity.StockRecord {
	m := decimal.RequireFromString(min)
	return entity.StockRecord{ID: "p-3", Name: "Arandela plana", MinStock: &m}
}

func TestClassify_StockCeroEsAgotado(t *testing.T) {
	st := stock.Classify(record("0", "10"), stock.DefaultThresholds())

	require.Equal(t, entity.StatusOutOfStock, st, "stock en cero debe clasificar como agotado, no como crítico")
	assert.Equal(t, "Agotado", st.Label())
	assert.NotEqual(t, entity.StatusCritical.Label(), st.Label(),
		"las etiquetas de agotado y crítico deben distinguirse textualmente")
}

// TestClassify_BordesInclusivos verifica que los cortes de la tabla son
// inclusivos: un ratio exactamente en el límite cae en el nivel inferior.
func TestClassify_BordesInclusivos(t *testing.T) {
	cases := []struct {
		nombre   string
		current  string
		min      string
		expected entity.StockStatus
	}{
		{"ratio 0.05 es crítico", "0.5", "10", entity.StatusCritical},
		{"ratio 0.10 exacto es crítico", "1", "10", entity.StatusCritical},
		{"ratio 0.20 es bajo", "2", "10", entity.StatusLow},
		{"ratio 0.30 exacto es bajo", "3", "10", entity.StatusLow},
		{"ratio 0.50 es advertencia", "5", "10", entity.StatusWarning},
		{"ratio 1.00 exacto es advertencia", "10", "10", entity.StatusWarning},
		{"ratio 1.10 es normal", "11", "10", entity.StatusNormal},
	}

	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			st := stock.Classify(record(tc.current, tc.min), stock.DefaultThresholds())
			assert.Equal(t, tc.expected, st, "ratio %s/%s", tc.current, tc.min)
		})
	}
}

// TestClassify_SinDatosEsIndeterminado cubre la regla número uno: sin datos
// completos el registro es INDETERMINATE, nunca NORMAL. Mostrarlo como normal
// tranquilizaría falsamente al usuario.
func TestClassify_SinDatosEsIndeterminado(t *testing.T) {
	th := stock.DefaultThresholds()

	assert.Equal(t, entity.StatusIndeterminate, stock.Classify(recordWithoutMin("5"), th),
		"sin mínimo no hay ratio posible")
	assert.Equal(t, entity.StatusIndeterminate, stock.Classify(recordWithoutStock("10"), th),
		"sin stock actual no hay ratio posible")
	assert.Equal(t, entity.StatusIndeterminate, stock.Classify(record("5", "0"), th),
		"mínimo en cero debe tratarse como dato incompleto (guardia de división por cero)")

	assert.NotEqual(t, entity.StatusNormal.Label(), entity.StatusIndeterminate.Label(),
		"la etiqueta de sin datos debe distinguirse de la de normal")
}

// TestClassify_UmbralesAjustables verifica que los cortes viven en la tabla y
// no incrustados en el clasificador: cambiar la tabla cambia el resultado.
func TestClassify_UmbralesAjustables(t *testing.T) {
	custom := stock.Thresholds{
		Critical: decimal.NewFromFloat(0.50),
		Low:      decimal.NewFromFloat(0.75),
		Warning:  decimal.NewFromFloat(2.00),
	}

	rec := record("5", "10") // ratio 0.50
	assert.Equal(t, entity.StatusWarning, stock.Classify(rec, stock.DefaultThresholds()))
	assert.Equal(t, entity.StatusCritical, stock.Classify(rec, custom),
		"con el corte crítico en 0.50 el mismo registro debe clasificar como crítico")
}

func TestThresholds_Validate(t *testing.T) {
	require.NoError(t, stock.DefaultThresholds().Validate())

	invertida := stock.Thresholds{
		Critical: decimal.NewFromFloat(0.30),
		Low:      decimal.NewFromFloat(0.10),
		Warning:  decimal.NewFromFloat(1.00),
	}
	assert.Error(t, invertida.Validate(), "los cortes deben ser estrictamente crecientes")

	negativa := stock.Thresholds{
		Critical: decimal.NewFromFloat(-0.10),
		Low:      decimal.NewFromFloat(0.30),
		Warning:  decimal.NewFromFloat(1.00),
	}
	assert.Error(t, negativa.Validate())
}

func TestStatus_MatchesFiltroSinMayusculas(t *testing.T) {
	assert.True(t, entity.StatusCritical.Matches("crítico"), "la etiqueta visible debe aceptarse en minúsculas")
	assert.True(t, entity.StatusCritical.Matches("CRÍTICO"))
	assert.True(t, entity.StatusCritical.Matches("critical"), "el código canónico también es válido")
	assert.True(t, entity.StatusOutOfStock.Matches("agotado"))
	assert.False(t, entity.StatusNormal.Matches("crítico"))
	assert.True(t, entity.StatusLow.Matches(""), "filtro vacío acepta cualquier estado")
}
