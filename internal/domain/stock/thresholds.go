package stock

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Thresholds es la tabla única de cortes del clasificador, expresados como
// fracción CurrentStock/MinStock. Los límites superiores son inclusivos:
// un ratio exactamente igual a Low clasifica como LOW.
type Thresholds struct {
	Critical decimal.Decimal // ratio <= Critical → CRITICAL
	Low      decimal.Decimal // ratio <= Low      → LOW
	Warning  decimal.Decimal // ratio <= Warning  → WARNING; por encima → NORMAL
}

// DefaultThresholds devuelve la tabla estándar 10% / 30% / 100%.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Critical: decimal.NewFromFloat(0.10),
		Low:      decimal.NewFromFloat(0.30),
		Warning:  decimal.NewFromFloat(1.00),
	}
}

// Validate verifica que los cortes sean positivos y estrictamente crecientes.
func (t Thresholds) Validate() error {
	if !t.Critical.IsPositive() {
		return fmt.Errorf("umbral crítico debe ser positivo: %s", t.Critical)
	}
	if t.Low.LessThanOrEqual(t.Critical) {
		return fmt.Errorf("umbral bajo (%s) debe ser mayor que el crítico (%s)", t.Low, t.Critical)
	}
	if t.Warning.LessThanOrEqual(t.Low) {
		return fmt.Errorf("umbral de advertencia (%s) debe ser mayor que el bajo (%s)", t.Warning, t.Low)
	}
	return nil
}
