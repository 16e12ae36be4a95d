package stock

import (
	"github.com/shopspring/decimal"

	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/domain/entity"
)

var two = decimal.NewFromInt(2)

// SuggestQuantity calcula la cantidad de reposición sugerida para un registro:
// max(MinStock*2 - CurrentStock, MinStock), es decir, reponer hasta el doble
// del mínimo sin sugerir nunca menos de un mínimo completo.
// Sin datos completos degrada a MinStock si se conoce, o a cero.
func SuggestQuantity(rec entity.StockRecord) decimal.Decimal {
	if !rec.HasCompleteStockData {
		if rec.MinStock != nil && rec.MinStock.IsPositive() {
			return *rec.MinStock
		}
		return decimal.Zero
	}
	target := rec.MinStock.Mul(two).Sub(*rec.CurrentStock)
	if target.LessThan(*rec.MinStock) {
		return *rec.MinStock
	}
	return target
}

// BatchQuantity calcula la cantidad usada por la reposición masiva:
// max(0, MinStock*2 - CurrentStock). Cero significa "omitir el registro"
// (ya está por encima del doble del mínimo o no hay datos).
func BatchQuantity(rec entity.StockRecord) decimal.Decimal {
	if !rec.HasCompleteStockData {
		return decimal.Zero
	}
	qty := rec.MinStock.Mul(two).Sub(*rec.CurrentStock)
	if qty.IsNegative() {
		return decimal.Zero
	}
	return qty
}
