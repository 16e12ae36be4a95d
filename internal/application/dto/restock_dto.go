package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RestockRequest body para POST /api/v1/stock/:id/restock.
type RestockRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
	Reason   string          `json:"reason"`
}

// BatchRestockRequest body para POST /api/v1/stock/restock-critical.
type BatchRestockRequest struct {
	Reason string `json:"reason"`
}

// RestockIntentDTO orden de reposición emitida hacia el colaborador externo.
// El motor nunca descuenta ni suma stock localmente: el siguiente refresco
// del catálogo es la única fuente de verdad.
type RestockIntentDTO struct {
	IntentID    string          `json:"intent_id"`
	RecordID    string          `json:"record_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Reason      string          `json:"reason"`
	RequestedAt time.Time       `json:"requested_at"`
}

// BatchRestockItemDTO resultado individual dentro de la reposición masiva.
type BatchRestockItemDTO struct {
	RecordID    string          `json:"record_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Success     bool            `json:"success"`
	IntentID    string          `json:"intent_id,omitempty"`
	Error       string          `json:"error,omitempty"`
}

// BatchRestockResponse reporte completo de la reposición masiva. No hay
// rollback: cada orden se reporta por separado y el total se entrega solo
// cuando todas resolvieron.
type BatchRestockResponse struct {
	Items        []BatchRestockItemDTO `json:"items"`
	TotalCount   int                   `json:"total_count"`
	SuccessCount int                   `json:"success_count"`
	FailureCount int                   `json:"failure_count"`
	SkippedCount int                   `json:"skipped_count"` // críticos omitidos por cantidad cero
}
