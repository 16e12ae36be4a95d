package entity

import "strings"

// StockStatus clasifica la severidad del nivel de stock de un registro.
type StockStatus string

const (
	StatusOutOfStock    StockStatus = "OUT_OF_STOCK"
	StatusCritical      StockStatus = "CRITICAL"
	StatusLow           StockStatus = "LOW"
	StatusWarning       StockStatus = "WARNING"
	StatusNormal        StockStatus = "NORMAL"
	StatusIndeterminate StockStatus = "INDETERMINATE"
)

// Etiquetas visibles. "Agotado" y "Crítico" se distinguen textualmente, y
// "Sin datos" nunca se presenta como "Normal": un registro sin datos no debe
// tranquilizar al usuario.
var statusLabels = map[StockStatus]string{
	StatusOutOfStock:    "Agotado",
	StatusCritical:      "Crítico",
	StatusLow:           "Bajo",
	StatusWarning:       "Advertencia",
	StatusNormal:        "Normal",
	StatusIndeterminate: "Sin datos",
}

// Label devuelve la etiqueta visible del estado.
func (s StockStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Matches compara el estado contra un filtro de usuario sin distinguir
// mayúsculas; acepta tanto la etiqueta visible como el código canónico.
// Filtro vacío acepta todo.
func (s StockStatus) Matches(filter string) bool {
	if filter == "" {
		return true
	}
	return strings.EqualFold(filter, s.Label()) || strings.EqualFold(filter, string(s))
}

// IsAlert indica si el estado cuenta para los contadores de alerta.
// NORMAL e INDETERMINATE quedan fuera.
func (s StockStatus) IsAlert() bool {
	switch s {
	case StatusOutOfStock, StatusCritical, StatusLow, StatusWarning:
		return true
	}
	return false
}
