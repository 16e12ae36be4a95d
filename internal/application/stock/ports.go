package stock

import (
	"context"

	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/application/dto"
	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/domain/entity"
)

// CatalogSource es el puerto de entrada del motor: entrega el corte de
// productos con stock bajo tal como lo conoce el origen (API remota o base
// de datos). Un error deja el snapshot anterior intacto.
type CatalogSource interface {
	FetchLowStockRecords(ctx context.Context) ([]dto.RawStockRecord, error)
}

// RestockSubmitter es el puerto de salida: entrega una orden de reposición y
// espera su resultado. Sin reintentos automáticos; el motor nunca refleja la
// orden en el stock local.
type RestockSubmitter interface {
	SubmitRestock(ctx context.Context, intent entity.RestockIntent) error
}
