package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawStockRecord es la forma laxa en que el origen entrega cada registro del
// catálogo de stock bajo. Los campos numéricos son punteros: distinguir
// "ausente" de "cero" es obligatorio antes de normalizar (un stock en cero es
// un dato válido; un stock ausente no participa en ningún cálculo).
type RawStockRecord struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	SKU               string           `json:"sku"`
	CategoryName      string           `json:"category_name"`
	SupplierName      string           `json:"supplier_name"`
	Unit              string           `json:"unit"`
	CurrentStock      *decimal.Decimal `json:"current_stock"`
	MinStock          *decimal.Decimal `json:"min_stock"`
	Price             *decimal.Decimal `json:"price"`
	LastPurchaseDate  *time.Time       `json:"last_purchase_date,omitempty"`
	LastPurchasePrice *decimal.Decimal `json:"last_purchase_price,omitempty"`
}

// StockAlertDTO fila de la vista filtrada de GET /api/v1/stock/alerts.
type StockAlertDTO struct {
	ID                   string           `json:"id"`
	Name                 string           `json:"name"`
	SKU                  string           `json:"sku"`
	CategoryName         string           `json:"category_name"`
	SupplierName         string           `json:"supplier_name"`
	Unit                 string           `json:"unit"`
	CurrentStock         *decimal.Decimal `json:"current_stock"` // nil = dato ausente
	MinStock             *decimal.Decimal `json:"min_stock"`     // nil = dato ausente
	Price                decimal.Decimal  `json:"price"`
	Status               string           `json:"status"`                // código canónico (CRITICAL, ...)
	StatusLabel          string           `json:"status_label"`          // etiqueta visible (Crítico, ...)
	StockRatio           *decimal.Decimal `json:"stock_ratio,omitempty"` // CurrentStock/MinStock; nil sin datos
	MissingUnits         decimal.Decimal  `json:"missing_units"`         // max(0, min-current)
	HasCompleteStockData bool             `json:"has_complete_stock_data"`
}

// StockStatisticsDTO agregado de GET /api/v1/stock/statistics. Se recalcula
// completo en cada refresco; nil cuando no hay ningún registro con datos
// completos (el cliente muestra un estado vacío explícito).
type StockStatisticsDTO struct {
	TotalRecords         int             `json:"total_records"`
	CompleteRecords      int             `json:"complete_records"`      // registros que participan en los agregados
	IndeterminateRecords int             `json:"indeterminate_records"` // listados pero sin datos completos
	OutOfStockCount      int             `json:"out_of_stock_count"`
	CriticalCount        int             `json:"critical_count"`
	LowCount             int             `json:"low_count"`
	WarningCount         int             `json:"warning_count"`
	ValueAtRisk          decimal.Decimal `json:"value_at_risk"`     // Σ price*current (completos)
	MissingUnits         decimal.Decimal `json:"missing_units"`     // Σ max(0, min-current)
	AverageStockPct      decimal.Decimal `json:"average_stock_pct"` // Σ(current/min*100) / completos
	MostCritical         *StockAlertDTO  `json:"most_critical,omitempty"`
}

// SnapshotMetaDTO metadatos del snapshot en memoria del motor.
type SnapshotMetaDTO struct {
	LastRefreshedAt  time.Time `json:"last_refreshed_at"`
	Stale            bool      `json:"stale"`             // el último fetch falló; los datos son los anteriores
	DiscardedRecords int       `json:"discarded_records"` // registros crudos descartados por no traer id
	TotalRecords     int       `json:"total_records"`
}

// StatisticsResponse respuesta completa de estadísticas: el agregado puede ser
// null, los metadatos del snapshot siempre están presentes.
type StatisticsResponse struct {
	Statistics *StockStatisticsDTO `json:"statistics"`
	Snapshot   SnapshotMetaDTO     `json:"snapshot"`
}

// StockDetailDTO respuesta de GET /api/v1/stock/:id.
type StockDetailDTO struct {
	StockAlertDTO
	SuggestedQty decimal.Decimal `json:"suggested_qty"` // max(min*2-current, min)
}

// RefreshResponse respuesta de POST /api/v1/stock/refresh.
type RefreshResponse struct {
	Started  bool            `json:"started"` // false cuando ya había un refresco en curso
	Snapshot SnapshotMetaDTO `json:"snapshot"`
}

// StockExportRowDTO fila plana para exportación (la escritura del archivo es
// responsabilidad del colaborador externo; aquí solo se define la forma).
type StockExportRowDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	SKU          string `json:"sku"`
	CategoryName string `json:"category_name"`
	SupplierName string `json:"supplier_name"`
	Unit         string `json:"unit"`
	CurrentStock string `json:"current_stock"` // vacío = dato ausente
	MinStock     string `json:"min_stock"`
	Price        string `json:"price"`
	StatusLabel  string `json:"status_label"`
	MissingUnits string `json:"missing_units"`
	SuggestedQty string `json:"suggested_qty"`
}
