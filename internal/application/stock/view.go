package stock

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/application/dto"
	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/domain/entity"
	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/domain/stock"
)

// Criterios de orden de la vista.
const (
	SortByCritical = "critical" // por ratio stock/mínimo
	SortByName     = "name"     // alfabético con colación española
	SortByMissing  = "missing"  // por unidades faltantes max(0, min-current)

	SortAsc  = "asc"
	SortDesc = "desc"
)

// Filter define la vista activa sobre el snapshot.
type Filter struct {
	Status    string // etiqueta visible o código canónico; vacío = todos
	SortBy    string // critical | name | missing
	SortOrder string // asc | desc
}

// sanitize aplica los valores por defecto; un criterio desconocido degrada al
// orden por criticidad ascendente en lugar de fallar.
func (f Filter) sanitize() Filter {
	switch f.SortBy {
	case SortByCritical, SortByName, SortByMissing:
	default:
		f.SortBy = SortByCritical
	}
	switch f.SortOrder {
	case SortAsc, SortDesc:
	default:
		f.SortOrder = SortAsc
	}
	return f
}

// View aplica filtro y orden sobre el snapshot y devuelve una lista nueva.
// Función pura: no muta la entrada ni toca estado del motor, así que puede
// probarse con cualquier combinación de registros sin montar nada más.
//
// El ordenamiento es estable: los empates conservan el orden de llegada.
// En el orden descendente se invierte el comparador, no la lista, para que
// los empates sigan en orden de llegada.
func View(records []entity.StockRecord, f Filter, th stock.Thresholds) []entity.StockRecord {
	f = f.sanitize()

	out := make([]entity.StockRecord, 0, len(records))
	for _, rec := range records {
		if stock.Classify(rec, th).Matches(f.Status) {
			out = append(out, rec)
		}
	}

	less := lessFor(f.SortBy)
	if f.SortOrder == SortDesc {
		base := less
		less = func(a, b entity.StockRecord) bool { return base(b, a) }
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })

	return out
}

func lessFor(sortBy string) func(a, b entity.StockRecord) bool {
	switch sortBy {
	case SortByName:
		coll := collate.New(language.Spanish)
		return func(a, b entity.StockRecord) bool { return lessName(coll, a, b) }
	case SortByMissing:
		return lessMissing
	default:
		return lessCritical
	}
}

// lessCritical ordena por ratio; un registro sin datos completos ordena como
// si su ratio fuera +infinito, de modo que ascendentemente queda al final.
func lessCritical(a, b entity.StockRecord) bool {
	ra, okA := a.Ratio()
	rb, okB := b.Ratio()
	switch {
	case !okA:
		return false
	case !okB:
		return true
	default:
		return ra.LessThan(rb)
	}
}

// lessName compara con colación española (la Ñ ordena entre N y O); los
// nombres vacíos van primero.
func lessName(coll *collate.Collator, a, b entity.StockRecord) bool {
	if a.Name == "" || b.Name == "" {
		return a.Name == "" && b.Name != ""
	}
	return coll.CompareString(a.Name, b.Name) < 0
}

func lessMissing(a, b entity.StockRecord) bool {
	return a.MissingUnits().LessThan(b.MissingUnits())
}

// AlertFromRecord proyecta un registro clasificado a la fila de la vista.
func AlertFromRecord(rec entity.StockRecord, th stock.Thresholds) dto.StockAlertDTO {
	status := stock.Classify(rec, th)

	alert := dto.StockAlertDTO{
		ID:                   rec.ID,
		Name:                 rec.Name,
		SKU:                  rec.SKU,
		CategoryName:         rec.CategoryName,
		SupplierName:         rec.SupplierName,
		Unit:                 rec.Unit,
		Price:                rec.Price,
		Status:               string(status),
		StatusLabel:          status.Label(),
		MissingUnits:         rec.MissingUnits(),
		HasCompleteStockData: rec.HasCompleteStockData,
	}
	if rec.CurrentStock != nil {
		current := *rec.CurrentStock
		alert.CurrentStock = &current
	}
	if rec.MinStock != nil {
		min := *rec.MinStock
		alert.MinStock = &min
	}
	if ratio, ok := rec.Ratio(); ok {
		rounded := ratio.Round(4)
		alert.StockRatio = &rounded
	}
	return alert
}

// AlertsFromRecords proyecta la vista completa.
func AlertsFromRecords(records []entity.StockRecord, th stock.Thresholds) []dto.StockAlertDTO {
	alerts := make([]dto.StockAlertDTO, 0, len(records))
	for _, rec := range records {
		alerts = append(alerts, AlertFromRecord(rec, th))
	}
	return alerts
}

// ExportRowFromRecord proyecta un registro a la fila plana de exportación.
// Los datos ausentes quedan como cadena vacía, nunca como "0".
func ExportRowFromRecord(rec entity.StockRecord, th stock.Thresholds) dto.StockExportRowDTO {
	row := dto.StockExportRowDTO{
		ID:           rec.ID,
		Name:         rec.Name,
		SKU:          rec.SKU,
		CategoryName: rec.CategoryName,
		SupplierName: rec.SupplierName,
		Unit:         rec.Unit,
		Price:        rec.Price.String(),
		StatusLabel:  stock.Classify(rec, th).Label(),
		MissingUnits: rec.MissingUnits().String(),
		SuggestedQty: stock.SuggestQuantity(rec).String(),
	}
	if rec.CurrentStock != nil {
		row.CurrentStock = rec.CurrentStock.String()
	}
	if rec.MinStock != nil {
		row.MinStock = rec.MinStock.String()
	}
	return row
}
