package stock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/application/dto"
	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/domain"
	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/domain/entity"
	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/domain/stock"
)

const defaultBatchLimit = 4

// Engine mantiene el snapshot normalizado del catálogo de stock bajo y expone
// las lecturas y acciones sobre él. Es una instancia explícita: cada
// consumidor construye la suya con NewEngine; no hay estado a nivel de
// paquete.
//
// Concurrencia: el mutex protege el snapshot; el flag refreshing deduplica
// refrescos (nunca dos fetch en vuelo, nunca dos reemplazos simultáneos); el
// contador de generación descarta resultados en vuelo cuando el motor se
// cierra. El snapshot se reemplaza completo, nunca se muta en sitio, así que
// las lecturas pueden trabajar sobre la referencia tomada bajo el mutex.
type Engine struct {
	source     CatalogSource
	submitter  RestockSubmitter
	th         stock.Thresholds
	batchLimit int

	mu          sync.Mutex
	records     []entity.StockRecord
	stats       *dto.StockStatisticsDTO
	filter      Filter
	refreshing  bool
	stale       bool
	lastRefresh time.Time
	discarded   int
	generation  uint64
	closed      bool
}

// NewEngine construye el motor con sus colaboradores. batchLimit acota las
// órdenes de reposición masiva en vuelo; cero o negativo usa el valor por
// defecto.
func NewEngine(source CatalogSource, submitter RestockSubmitter, th stock.Thresholds, batchLimit int) *Engine {
	if batchLimit <= 0 {
		batchLimit = defaultBatchLimit
	}
	return &Engine{
		source:     source,
		submitter:  submitter,
		th:         th,
		batchLimit: batchLimit,
	}
}

// Refresh trae el catálogo completo y reemplaza el snapshot. Si ya hay un
// refresco en curso la llamada es un no-op con started=false. Un fetch
// fallido deja el snapshot anterior intacto, marca los datos como obsoletos
// y devuelve ErrFetchFailed; un contexto cancelado o un motor cerrado
// descartan el resultado sin tocar nada.
func (e *Engine) Refresh(ctx context.Context) (started bool, err error) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return false, domain.ErrEngineClosed
	}
	if e.refreshing {
		e.mu.Unlock()
		return false, nil
	}
	e.refreshing = true
	gen := e.generation
	e.mu.Unlock()

	raws, fetchErr := e.source.FetchLowStockRecords(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.refreshing = false

	if e.generation != gen {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if fetchErr != nil {
		e.stale = true
		return true, fmt.Errorf("%w: %v", domain.ErrFetchFailed, fetchErr)
	}

	records, discarded := NormalizeAll(raws)
	e.records = records
	e.discarded = discarded
	e.stats = BuildStatistics(records, e.th)
	e.stale = false
	e.lastRefresh = time.Now()
	return true, nil
}

// SetFilter valida y guarda la vista activa.
func (e *Engine) SetFilter(f Filter) {
	f = f.sanitize()
	e.mu.Lock()
	e.filter = f
	e.mu.Unlock()
}

// ActiveFilter devuelve la vista activa.
func (e *Engine) ActiveFilter() Filter {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.filter
}

// FilteredView aplica la vista activa sobre el snapshot.
func (e *Engine) FilteredView() []dto.StockAlertDTO {
	e.mu.Lock()
	records, f := e.records, e.filter
	e.mu.Unlock()

	return AlertsFromRecords(View(records, f, e.th), e.th)
}

// Statistics devuelve el agregado del último refresco exitoso; nil cuando el
// catálogo está vacío o ningún registro trae datos completos.
func (e *Engine) Statistics() *dto.StockStatisticsDTO {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats
}

// SnapshotMeta devuelve los metadatos del snapshot en memoria.
func (e *Engine) SnapshotMeta() dto.SnapshotMetaDTO {
	e.mu.Lock()
	defer e.mu.Unlock()
	return dto.SnapshotMetaDTO{
		LastRefreshedAt:  e.lastRefresh,
		Stale:            e.stale,
		DiscardedRecords: e.discarded,
		TotalRecords:     len(e.records),
	}
}

// StatusOf clasifica el registro indicado contra la tabla de umbrales.
func (e *Engine) StatusOf(recordID string) (entity.StockStatus, error) {
	rec, err := e.find(recordID)
	if err != nil {
		return "", err
	}
	return stock.Classify(rec, e.th), nil
}

// SuggestQuantity calcula la cantidad de reposición sugerida para el registro.
func (e *Engine) SuggestQuantity(recordID string) (decimal.Decimal, error) {
	rec, err := e.find(recordID)
	if err != nil {
		return decimal.Zero, err
	}
	return stock.SuggestQuantity(rec), nil
}

// Detail devuelve la fila de la vista más la cantidad sugerida.
func (e *Engine) Detail(recordID string) (dto.StockDetailDTO, error) {
	rec, err := e.find(recordID)
	if err != nil {
		return dto.StockDetailDTO{}, err
	}
	return dto.StockDetailDTO{
		StockAlertDTO: AlertFromRecord(rec, e.th),
		SuggestedQty:  stock.SuggestQuantity(rec),
	}, nil
}

// ExportRows proyecta la vista activa a filas planas de exportación; la
// escritura del archivo es del colaborador externo.
func (e *Engine) ExportRows() []dto.StockExportRowDTO {
	e.mu.Lock()
	records, f := e.records, e.filter
	e.mu.Unlock()

	view := View(records, f, e.th)
	rows := make([]dto.StockExportRowDTO, 0, len(view))
	for _, rec := range view {
		rows = append(rows, ExportRowFromRecord(rec, e.th))
	}
	return rows
}

// Restock emite una orden de reposición para un registro puntual. La cantidad
// debe ser positiva y el registro debe existir en el snapshot actual. Tras
// una entrega exitosa se dispara un refresco: el catálogo del origen es la
// única fuente de verdad del nuevo stock.
func (e *Engine) Restock(ctx context.Context, recordID string, quantity decimal.Decimal, reason string) (entity.RestockIntent, error) {
	if !quantity.IsPositive() {
		return entity.RestockIntent{}, fmt.Errorf("%w: %s", domain.ErrInvalidQuantity, quantity)
	}

	rec, err := e.find(recordID)
	if err != nil {
		return entity.RestockIntent{}, err
	}

	intent := e.buildIntent(rec, quantity, reason)
	if err := e.submitter.SubmitRestock(ctx, intent); err != nil {
		return entity.RestockIntent{}, fmt.Errorf("%w: %v", domain.ErrSubmitFailed, err)
	}

	// El refresco puede fallar sin invalidar la orden ya entregada; el flag
	// de obsolescencia queda visible en los metadatos.
	_, _ = e.Refresh(ctx)

	return intent, nil
}

// RestockAllCritical emite una orden por cada registro crítico o agotado con
// déficit. Las órdenes se entregan con concurrencia acotada y el reporte se
// arma cuando TODAS resolvieron: un fallo individual no aborta el lote y no
// hay rollback de las ya entregadas.
func (e *Engine) RestockAllCritical(ctx context.Context, reason string) (dto.BatchRestockResponse, error) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return dto.BatchRestockResponse{}, domain.ErrEngineClosed
	}
	records := e.records
	e.mu.Unlock()

	type target struct {
		rec entity.StockRecord
		qty decimal.Decimal
	}

	var targets []target
	skipped := 0
	for _, rec := range records {
		switch stock.Classify(rec, e.th) {
		case entity.StatusCritical, entity.StatusOutOfStock:
		default:
			continue
		}
		qty := stock.BatchQuantity(rec)
		if !qty.IsPositive() {
			skipped++
			continue
		}
		targets = append(targets, target{rec: rec, qty: qty})
	}

	items := make([]dto.BatchRestockItemDTO, len(targets))

	g := new(errgroup.Group)
	g.SetLimit(e.batchLimit)
	for i, tg := range targets {
		g.Go(func() error {
			item := dto.BatchRestockItemDTO{
				RecordID:    tg.rec.ID,
				ProductName: tg.rec.Name,
				Quantity:    tg.qty,
			}
			intent := e.buildIntent(tg.rec, tg.qty, reason)
			if err := e.submitter.SubmitRestock(ctx, intent); err != nil {
				item.Error = err.Error()
			} else {
				item.Success = true
				item.IntentID = intent.ID
			}
			items[i] = item
			// Nunca se devuelve error: el lote completa siempre.
			return nil
		})
	}
	_ = g.Wait()

	resp := dto.BatchRestockResponse{
		Items:        items,
		TotalCount:   len(items),
		SkippedCount: skipped,
	}
	for _, item := range items {
		if item.Success {
			resp.SuccessCount++
		} else {
			resp.FailureCount++
		}
	}

	if resp.SuccessCount > 0 {
		_, _ = e.Refresh(ctx)
	}
	return resp, nil
}

// Close descarta cualquier resultado de refresco en vuelo y deja el motor
// detenido. Idempotente.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	e.generation++
}

func (e *Engine) find(recordID string) (entity.StockRecord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return entity.StockRecord{}, domain.ErrEngineClosed
	}
	for _, rec := range e.records {
		if rec.ID == recordID {
			return rec, nil
		}
	}
	return entity.StockRecord{}, fmt.Errorf("%w: %s", domain.ErrUnknownRecord, recordID)
}

func (e *Engine) buildIntent(rec entity.StockRecord, qty decimal.Decimal, reason string) entity.RestockIntent {
	return entity.RestockIntent{
		ID:          uuid.NewString(),
		RecordID:    rec.ID,
		ProductName: rec.Name,
		SKU:         rec.SKU,
		Quantity:    qty,
		Reason:      reason,
		RequestedAt: time.Now(),
	}
}
