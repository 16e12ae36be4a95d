package postgres

import (
	"context"
	"fmt"

	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/application/dto"
	stockapp "github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/application/stock"
)

// CatalogRepository lee el corte de stock bajo directamente de la base de
// datos del inventario, para despliegues donde el motor corre junto a ella
// (SOURCE_DRIVER=postgres).
type CatalogRepository struct {
	q Querier
}

var _ stockapp.CatalogSource = (*CatalogRepository)(nil)

// NewCatalogRepository crea el repositorio. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepository {
	return &CatalogRepository{q: q}
}

// FetchLowStockRecords devuelve los productos en o por debajo de su stock
// mínimo, más los que no tienen datos suficientes para evaluarlos (stock o
// mínimo ausente, o mínimo no positivo). El saneo de los campos lo hace el
// normalizador, no el SQL: aquí se entregan los valores tal como están.
func (r *CatalogRepository) FetchLowStockRecords(ctx context.Context) ([]dto.RawStockRecord, error) {
	query := `
		SELECT p.id,
		       p.name,
		       p.sku,
		       c.name  AS category_name,
		       s.name  AS supplier_name,
		       p.unit,
		       p.current_stock,
		       p.min_stock,
		       p.price,
		       p.last_purchase_date,
		       p.last_purchase_price
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		LEFT JOIN suppliers s ON s.id = p.supplier_id
		WHERE p.current_stock IS NULL
		   OR p.min_stock IS NULL
		   OR p.min_stock <= 0
		   OR p.current_stock <= p.min_stock
		ORDER BY p.name, p.id`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("consultar stock bajo: %w", err)
	}
	defer rows.Close()

	var records []dto.RawStockRecord
	for rows.Next() {
		var (
			rec      dto.RawStockRecord
			id       *string
			name     *string
			sku      *string
			category *string
			supplier *string
			unit     *string
		)
		err := rows.Scan(
			&id,
			&name,
			&sku,
			&category,
			&supplier,
			&unit,
			&rec.CurrentStock,
			&rec.MinStock,
			&rec.Price,
			&rec.LastPurchaseDate,
			&rec.LastPurchasePrice,
		)
		if err != nil {
			return nil, fmt.Errorf("scan registro de stock: %w", err)
		}
		rec.ID = deref(id)
		rec.Name = deref(name)
		rec.SKU = deref(sku)
		rec.CategoryName = deref(category)
		rec.SupplierName = deref(supplier)
		rec.Unit = deref(unit)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar registros de stock: %w", err)
	}
	return records, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
