package stock

import (
	"strings"

	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/application/dto"
	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/domain/entity"
)

// Valores por defecto aplicados a los campos descriptivos ausentes. Son datos
// (el origen ya los entrega así en catálogos viejos), no formato de pantalla.
const (
	PlaceholderName  = "Producto sin nombre"
	SentinelSKU      = "N/A"
	SentinelCategory = "sin categoría"
	SentinelSupplier = "N/A"
	SentinelUnit     = "unidad"
)

// Normalize convierte un registro crudo en la entidad canónica.
// ok=false cuando el registro no trae id: sin identificador mínimo no se
// puede operar sobre él y se descarta.
//
// Reglas numéricas: un stock actual ausente o negativo queda en nil (se lista
// pero no participa en agregados); el mínimo se conserva tal cual llegó, y la
// completitud exige que sea positivo. Ausente nunca se confunde con cero.
func Normalize(raw dto.RawStockRecord) (entity.StockRecord, bool) {
	id := strings.TrimSpace(raw.ID)
	if id == "" {
		return entity.StockRecord{}, false
	}

	rec := entity.StockRecord{
		ID:           id,
		Name:         defaultIfBlank(raw.Name, PlaceholderName),
		SKU:          defaultIfBlank(raw.SKU, SentinelSKU),
		CategoryName: defaultIfBlank(raw.CategoryName, SentinelCategory),
		SupplierName: defaultIfBlank(raw.SupplierName, SentinelSupplier),
		Unit:         defaultIfBlank(raw.Unit, SentinelUnit),
	}

	if raw.CurrentStock != nil && !raw.CurrentStock.IsNegative() {
		current := *raw.CurrentStock
		rec.CurrentStock = &current
	}
	if raw.MinStock != nil {
		min := *raw.MinStock
		rec.MinStock = &min
	}
	if raw.Price != nil {
		rec.Price = *raw.Price
	}
	if raw.LastPurchaseDate != nil {
		date := *raw.LastPurchaseDate
		rec.LastPurchaseDate = &date
	}
	if raw.LastPurchasePrice != nil {
		price := *raw.LastPurchasePrice
		rec.LastPurchasePrice = &price
	}

	rec.HasCompleteStockData = rec.CurrentStock != nil &&
		rec.MinStock != nil && rec.MinStock.IsPositive()

	return rec, true
}

// NormalizeAll normaliza el catálogo completo conservando el orden de llegada
// (el orden de inserción es el desempate de los ordenamientos estables).
// Devuelve también cuántos registros se descartaron por no traer id.
func NormalizeAll(raws []dto.RawStockRecord) ([]entity.StockRecord, int) {
	records := make([]entity.StockRecord, 0, len(raws))
	discarded := 0
	for _, raw := range raws {
		rec, ok := Normalize(raw)
		if !ok {
			discarded++
			continue
		}
		records = append(records, rec)
	}
	return records, discarded
}

func defaultIfBlank(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
