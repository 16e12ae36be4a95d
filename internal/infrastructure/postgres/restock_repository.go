package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	stockapp "github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/application/stock"
	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/domain/entity"
)

// RestockRepository persiste las intenciones de reposición en la tabla
// restock_orders, donde el módulo de compras las recoge. El motor nunca
// actualiza el stock: solo deja la orden en estado PENDIENTE.
type RestockRepository struct {
	q Querier
}

var _ stockapp.RestockSubmitter = (*RestockRepository)(nil)

// NewRestockRepository crea el repositorio. Pasar pool o tx (Querier).
func NewRestockRepository(q Querier) *RestockRepository {
	return &RestockRepository{q: q}
}

// SubmitRestock inserta la orden de reposición. Un reintento con el mismo ID
// de intención no duplica la orden: la violación de unicidad se trata como
// envío ya hecho.
func (r *RestockRepository) SubmitRestock(ctx context.Context, intent entity.RestockIntent) error {
	query := `
		INSERT INTO restock_orders (
			id, product_id, product_name, sku, quantity, reason, status, requested_at
		) VALUES ($1, $2, $3, $4, $5, $6, 'PENDIENTE', $7)`

	_, err := r.q.Exec(ctx, query,
		intent.ID,
		intent.RecordID,
		intent.ProductName,
		intent.SKU,
		intent.Quantity,
		intent.Reason,
		intent.RequestedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("insertar orden de reposición: %w", err)
	}
	return nil
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}
