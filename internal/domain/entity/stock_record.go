package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockRecord representa un producto del catálogo de stock bajo, ya normalizado.
// CurrentStock y MinStock son punteros: nil significa dato ausente en el origen,
// que NO es lo mismo que cero (cero es un valor válido: stock agotado).
type StockRecord struct {
	ID           string
	Name         string
	SKU          string
	CategoryName string
	SupplierName string
	Unit         string
	CurrentStock *decimal.Decimal
	MinStock     *decimal.Decimal
	Price        decimal.Decimal

	LastPurchaseDate  *time.Time
	LastPurchasePrice *decimal.Decimal

	// HasCompleteStockData se calcula una sola vez al normalizar:
	// CurrentStock presente, MinStock presente y MinStock > 0.
	HasCompleteStockData bool
}

// Ratio devuelve CurrentStock/MinStock. ok=false cuando faltan datos;
// el llamador decide el tratamiento (estado indeterminado, final de la
// lista al ordenar, exclusión de agregados).
func (r StockRecord) Ratio() (decimal.Decimal, bool) {
	if !r.HasCompleteStockData {
		return decimal.Zero, false
	}
	return r.CurrentStock.Div(*r.MinStock), true
}

// MissingUnits devuelve las unidades que faltan para alcanzar el mínimo:
// max(0, MinStock-CurrentStock). Cero cuando faltan datos.
func (r StockRecord) MissingUnits() decimal.Decimal {
	if !r.HasCompleteStockData {
		return decimal.Zero
	}
	missing := r.MinStock.Sub(*r.CurrentStock)
	if missing.IsNegative() {
		return decimal.Zero
	}
	return missing
}

// StockValue devuelve Price*CurrentStock, el valor inmovilizado en riesgo.
// Cero cuando faltan datos.
func (r StockRecord) StockValue() decimal.Decimal {
	if !r.HasCompleteStockData {
		return decimal.Zero
	}
	return r.Price.Mul(*r.CurrentStock)
}
