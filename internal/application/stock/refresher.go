package stock

import (
	"context"
	"errors"
	"time"

	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/pkg/logger"
)

// Refresher dispara refrescos periódicos del motor. El ciclo de vida lo
// gobierna la raíz de composición: Run bloquea hasta que el contexto se
// cancela. Los solapamientos con refrescos manuales los absorbe el flag de
// ocupado del motor, aquí no hace falta coordinación adicional.
type Refresher struct {
	engine   *Engine
	interval time.Duration
	log      *logger.Logger
}

// NewRefresher construye el refrescador periódico.
func NewRefresher(engine *Engine, interval time.Duration, log *logger.Logger) *Refresher {
	return &Refresher{engine: engine, interval: interval, log: log}
}

// Run ejecuta un refresco inmediato y después uno por intervalo.
func (r *Refresher) Run(ctx context.Context) {
	r.refresh(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *Refresher) refresh(ctx context.Context) {
	started, err := r.engine.Refresh(ctx)
	switch {
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		return
	case err != nil:
		r.log.Error().Err(err).Msg("refresco del catálogo falló; se conserva el snapshot anterior")
	case !started:
		r.log.Debug().Msg("refresco omitido: ya hay uno en curso")
	default:
		meta := r.engine.SnapshotMeta()
		r.log.Info().
			Int("registros", meta.TotalRecords).
			Msg("snapshot de stock actualizado")
		if meta.DiscardedRecords > 0 {
			r.log.Warn().
				Int("descartados", meta.DiscardedRecords).
				Msg("registros sin id descartados del catálogo")
		}
	}
}
