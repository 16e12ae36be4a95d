package stock

import (
	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/domain/entity"
)

// Classify determina el estado de un registro contra la tabla de umbrales.
// El orden de evaluación es fijo y la primera regla que aplica gana:
//
//  1. sin datos completos → INDETERMINATE
//  2. stock actual cero   → OUT_OF_STOCK
//  3. ratio CurrentStock/MinStock contra los cortes inclusivos de la tabla
func Classify(rec entity.StockRecord, t Thresholds) entity.StockStatus {
	if !rec.HasCompleteStockData {
		return entity.StatusIndeterminate
	}
	if rec.CurrentStock.IsZero() {
		return entity.StatusOutOfStock
	}
	ratio, _ := rec.Ratio()
	switch {
	case ratio.LessThanOrEqual(t.Critical):
		return entity.StatusCritical
	case ratio.LessThanOrEqual(t.Low):
		return entity.StatusLow
	case ratio.LessThanOrEqual(t.Warning):
		return entity.StatusWarning
	default:
		return entity.StatusNormal
	}
}
