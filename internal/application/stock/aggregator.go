package stock

import (
	"github.com/shopspring/decimal"

	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/application/dto"
	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/domain/entity"
	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/domain/stock"
)

var hundred = decimal.NewFromInt(100)

// BuildStatistics recalcula el agregado completo sobre el snapshot; no hay
// estado incremental que pueda desfasarse. Devuelve nil con entrada vacía o
// sin ningún registro con datos completos: el llamador presenta un estado
// vacío explícito en lugar de ceros engañosos.
//
// Solo los registros con datos completos participan en las sumas y en el
// promedio; los indeterminados se cuentan aparte para que el hueco de datos
// siga siendo visible.
func BuildStatistics(records []entity.StockRecord, th stock.Thresholds) *dto.StockStatisticsDTO {
	if len(records) == 0 {
		return nil
	}

	stats := &dto.StockStatisticsDTO{TotalRecords: len(records)}

	var (
		pctSum    decimal.Decimal
		best      *entity.StockRecord
		bestRatio decimal.Decimal
	)

	for i := range records {
		rec := records[i]

		switch stock.Classify(rec, th) {
		case entity.StatusOutOfStock:
			stats.OutOfStockCount++
		case entity.StatusCritical:
			stats.CriticalCount++
		case entity.StatusLow:
			stats.LowCount++
		case entity.StatusWarning:
			stats.WarningCount++
		case entity.StatusIndeterminate:
			stats.IndeterminateRecords++
		}

		ratio, ok := rec.Ratio()
		if !ok {
			continue
		}

		stats.CompleteRecords++
		stats.ValueAtRisk = stats.ValueAtRisk.Add(rec.StockValue())
		stats.MissingUnits = stats.MissingUnits.Add(rec.MissingUnits())
		pctSum = pctSum.Add(ratio.Mul(hundred))

		// Solo un ratio estrictamente menor desplaza al más crítico:
		// el empate conserva la primera aparición en el orden de llegada.
		if best == nil || ratio.LessThan(bestRatio) {
			best = &records[i]
			bestRatio = ratio
		}
	}

	if stats.CompleteRecords == 0 {
		return nil
	}

	stats.AverageStockPct = pctSum.Div(decimal.NewFromInt(int64(stats.CompleteRecords)))

	mostCritical := AlertFromRecord(*best, th)
	stats.MostCritical = &mostCritical

	return stats
}
