package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/application/dto"
	stockapp "github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/application/stock"
	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/domain"
)

// StockHandler maneja la consulta del snapshot de alertas.
type StockHandler struct {
	engine *stockapp.Engine
}

// NewStockHandler construye el handler.
func NewStockHandler(engine *stockapp.Engine) *StockHandler {
	return &StockHandler{engine: engine}
}

// domainError traduce los errores del dominio a la respuesta HTTP. Los errores
// vienen envueltos con contexto, por eso errors.Is y no comparación directa.
func domainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: err.Error()})
	case errors.Is(err, domain.ErrUnknownRecord):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrFetchFailed):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "FETCH_FAILED", Message: err.Error()})
	case errors.Is(err, domain.ErrSubmitFailed):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "SUBMIT_FAILED", Message: err.Error()})
	case errors.Is(err, domain.ErrEngineClosed):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "ENGINE_CLOSED", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// GetAlerts godoc
// @Summary      Listar alertas de stock
// @Description  Vista filtrada y ordenada del snapshot en memoria. Cada parámetro presente actualiza ese criterio de la vista activa; los ausentes conservan el valor anterior.
// @Tags         stock
// @Produce      json
// @Param        status   query  string  false  "Etiqueta visible o código de estado (ej. Crítico, OUT_OF_STOCK); vacío = todos"
// @Param        sort_by  query  string  false  "Criterio de orden"  Enums(critical, name, missing)  default(critical)
// @Param        order    query  string  false  "Dirección"          Enums(asc, desc)                default(asc)
// @Success      200  {array}  dto.StockAlertDTO
// @Router       /api/v1/stock/alerts [get]
func (h *StockHandler) GetAlerts(c *fiber.Ctx) error {
	f := h.engine.ActiveFilter()
	args := c.Context().QueryArgs()
	if args.Has("status") {
		f.Status = c.Query("status")
	}
	if args.Has("sort_by") {
		f.SortBy = c.Query("sort_by")
	}
	if args.Has("order") {
		f.SortOrder = c.Query("order")
	}
	h.engine.SetFilter(f)
	return c.JSON(h.engine.FilteredView())
}

// ExportAlerts godoc
// @Summary      Exportar la vista activa
// @Description  Filas planas de la vista activa, listas para volcar a archivo. Los datos ausentes van como cadena vacía, nunca como cero.
// @Tags         stock
// @Produce      json
// @Success      200  {array}  dto.StockExportRowDTO
// @Router       /api/v1/stock/alerts/export [get]
func (h *StockHandler) ExportAlerts(c *fiber.Ctx) error {
	return c.JSON(h.engine.ExportRows())
}

// GetStatistics godoc
// @Summary      Estadísticas agregadas del snapshot
// @Description  El agregado es null cuando el catálogo está vacío o ningún registro trae datos completos; los metadatos del snapshot siempre vienen.
// @Tags         stock
// @Produce      json
// @Success      200  {object}  dto.StatisticsResponse
// @Router       /api/v1/stock/statistics [get]
func (h *StockHandler) GetStatistics(c *fiber.Ctx) error {
	return c.JSON(dto.StatisticsResponse{
		Statistics: h.engine.Statistics(),
		Snapshot:   h.engine.SnapshotMeta(),
	})
}

// GetDetail godoc
// @Summary      Detalle de un registro
// @Description  Fila de la vista más la cantidad de reposición sugerida.
// @Tags         stock
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  dto.StockDetailDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/stock/{id} [get]
func (h *StockHandler) GetDetail(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	detail, err := h.engine.Detail(id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(detail)
}

// Refresh godoc
// @Summary      Refrescar el snapshot
// @Description  Dispara un fetch del catálogo y reemplaza el snapshot completo. Si ya hay un refresco en curso responde started=false sin lanzar otro.
// @Tags         stock
// @Produce      json
// @Success      200  {object}  dto.RefreshResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/v1/stock/refresh [post]
func (h *StockHandler) Refresh(c *fiber.Ctx) error {
	started, err := h.engine.Refresh(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.RefreshResponse{
		Started:  started,
		Snapshot: h.engine.SnapshotMeta(),
	})
}
