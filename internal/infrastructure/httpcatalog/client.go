// Package httpcatalog implementa los puertos del motor contra el API REST del
// inventario (SOURCE_DRIVER=api): el corte de stock bajo se lee de
// GET /api/v1/products/low-stock y las órdenes de reposición se envían a
// POST /api/v1/restock-orders. Usa net/http de la stdlib.
package httpcatalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/application/dto"
	stockapp "github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/application/stock"
	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/domain/entity"
)

// Client cliente del API de inventario remoto.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var (
	_ stockapp.CatalogSource    = (*Client)(nil)
	_ stockapp.RestockSubmitter = (*Client)(nil)
)

// NewClient crea el cliente. timeout cubre la petición completa, incluida la
// lectura del cuerpo; cero deja el cliente sin límite.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// lowStockResponse envuelve el corte de stock bajo tal como lo entrega el API.
type lowStockResponse struct {
	Total int                  `json:"total"`
	Items []dto.RawStockRecord `json:"items"`
}

// FetchLowStockRecords consulta el corte de stock bajo. Devuelve los registros
// crudos sin sanear: de eso se encarga el normalizador.
func (c *Client) FetchLowStockRecords(ctx context.Context) ([]dto.RawStockRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/products/low-stock", nil)
	if err != nil {
		return nil, fmt.Errorf("crear request de stock bajo: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("consultar stock bajo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("consultar stock bajo: %s", errorDetail(resp))
	}

	var payload lowStockResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decodificar stock bajo: %w", err)
	}
	return payload.Items, nil
}

// restockOrderRequest cuerpo del alta de orden de reposición.
type restockOrderRequest struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku"`
	Quantity    decimal.Decimal `json:"quantity"`
	Reason      string          `json:"reason"`
	RequestedAt time.Time       `json:"requested_at"`
}

// SubmitRestock envía la intención de reposición al inventario remoto. No
// reintenta: el llamador decide qué hacer con el fallo.
func (c *Client) SubmitRestock(ctx context.Context, intent entity.RestockIntent) error {
	body, err := json.Marshal(restockOrderRequest{
		ID:          intent.ID,
		ProductID:   intent.RecordID,
		ProductName: intent.ProductName,
		SKU:         intent.SKU,
		Quantity:    intent.Quantity,
		Reason:      intent.Reason,
		RequestedAt: intent.RequestedAt,
	})
	if err != nil {
		return fmt.Errorf("serializar orden de reposición: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/restock-orders", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("crear request de reposición: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("enviar orden de reposición: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("enviar orden de reposición: %s", errorDetail(resp))
	}
	return nil
}

// errorDetail arma un detalle legible de una respuesta no exitosa: usa el
// mensaje del cuerpo si viene en el formato de error del API, o el texto crudo.
func errorDetail(resp *http.Response) string {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	var apiErr dto.ErrorResponse
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Message != "" {
		return fmt.Sprintf("el origen respondió %d: %s", resp.StatusCode, apiErr.Message)
	}
	if detail := strings.TrimSpace(string(raw)); detail != "" {
		return fmt.Sprintf("el origen respondió %d: %s", resp.StatusCode, detail)
	}
	return fmt.Sprintf("el origen respondió %d", resp.StatusCode)
}
