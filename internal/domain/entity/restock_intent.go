package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RestockIntent es una orden de reposición lista para entregarse al
// colaborador externo. Emitirla no modifica el snapshot local: el stock
// solo cambia cuando un refresco posterior trae el catálogo actualizado.
type RestockIntent struct {
	ID          string
	RecordID    string
	ProductName string
	SKU         string
	Quantity    decimal.Decimal
	Reason      string
	RequestedAt time.Time
}
