package httpcatalog_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/domain/entity"
	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/infrastructure/httpcatalog"
)

// ──────────────────────────────────────────────────────────────────────────────
// FetchLowStockRecords
// ──────────────────────────────────────────────────────────────────────────────

func TestFetchLowStockRecords_DecodificaElCorte(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/v1/products/low-stock", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		// min_stock ausente en el segundo item: debe quedar como puntero nil
		w.Write([]byte(`{
			"total": 2,
			"items": [
				{"id": "p-1", "name": "Tornillo 3mm", "sku": "T-3", "current_stock": "0", "min_stock": 10, "price": "2.5"},
				{"id": "p-2", "name": "Tuerca", "current_stock": 4}
			]
		}`))
	}))
	defer srv.Close()

	client := httpcatalog.NewClient(srv.URL, 5*time.Second)
	records, err := client.FetchLowStockRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "p-1", first.ID)
	assert.Equal(t, "Tornillo 3mm", first.Name)
	require.NotNil(t, first.CurrentStock, "cero es un valor presente, no ausente")
	assert.True(t, first.CurrentStock.IsZero())
	require.NotNil(t, first.MinStock)
	assert.True(t, first.MinStock.Equal(decimal.NewFromInt(10)),
		"el mínimo debe decodificarse igual venga como número o como string")
	require.NotNil(t, first.Price)
	assert.Equal(t, "2.5", first.Price.String())

	second := records[1]
	assert.Nil(t, second.MinStock, "un campo ausente debe quedar nil, no cero")
	assert.Nil(t, second.Price)
}

func TestFetchLowStockRecords_ErrorDelOrigen(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]string{"code": "UNAVAILABLE", "message": "inventario en mantenimiento"})
	}))
	defer srv.Close()

	client := httpcatalog.NewClient(srv.URL, 5*time.Second)
	records, err := client.FetchLowStockRecords(context.Background())

	require.Error(t, err)
	assert.Nil(t, records)
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "inventario en mantenimiento",
		"el mensaje del API debe llegar al error")
}

func TestFetchLowStockRecords_RespetaElContexto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := httpcatalog.NewClient(srv.URL, 5*time.Second)
	_, err := client.FetchLowStockRecords(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

// ──────────────────────────────────────────────────────────────────────────────
// SubmitRestock
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmitRestock_EnviaLaIntencionCompleta(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/restock-orders", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	intent := entity.RestockIntent{
		ID:          "11111111-1111-1111-1111-111111111111",
		RecordID:    "p-9",
		ProductName: "Cable HDMI",
		SKU:         "C-HDMI",
		Quantity:    decimal.NewFromInt(19),
		Reason:      "reposición por nivel crítico",
		RequestedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	client := httpcatalog.NewClient(srv.URL, 5*time.Second)
	require.NoError(t, client.SubmitRestock(context.Background(), intent))

	assert.Equal(t, "p-9", got["product_id"])
	assert.Equal(t, "Cable HDMI", got["product_name"])
	assert.Equal(t, "19", got["quantity"], "decimal se serializa como string JSON")
	assert.Equal(t, "reposición por nivel crítico", got["reason"])
}

func TestSubmitRestock_RechazoDelOrigenEsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte("producto descontinuado"))
	}))
	defer srv.Close()

	client := httpcatalog.NewClient(srv.URL, 5*time.Second)
	err := client.SubmitRestock(context.Background(), entity.RestockIntent{
		ID:       "22222222-2222-2222-2222-222222222222",
		RecordID: "p-1",
		Quantity: decimal.NewFromInt(5),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "producto descontinuado")
}
