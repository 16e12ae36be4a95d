package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/application/dto"
	stockapp "github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/application/stock"
)

// RestockHandler maneja la emisión de órdenes de reposición.
type RestockHandler struct {
	engine *stockapp.Engine
}

// NewRestockHandler construye el handler.
func NewRestockHandler(engine *stockapp.Engine) *RestockHandler {
	return &RestockHandler{engine: engine}
}

// Restock godoc
// @Summary      Reponer un registro puntual
// @Description  Valida cantidad y registro, emite la orden hacia el origen y dispara un refresco. El stock local nunca se modifica: el catálogo del origen es la única fuente de verdad.
// @Tags         restock
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID del registro"
// @Param        body  body  dto.RestockRequest   true  "Cantidad y motivo"
// @Success      201   {object}  dto.RestockIntentDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/v1/stock/{id}/restock [post]
func (h *RestockHandler) Restock(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.RestockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	intent, err := h.engine.Restock(c.Context(), id, in.Quantity, in.Reason)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RestockIntentDTO{
		IntentID:    intent.ID,
		RecordID:    intent.RecordID,
		ProductName: intent.ProductName,
		Quantity:    intent.Quantity,
		Reason:      intent.Reason,
		RequestedAt: intent.RequestedAt,
	})
}

// RestockCritical godoc
// @Summary      Reponer todos los críticos
// @Description  Emite órdenes para cada registro CRITICAL u OUT_OF_STOCK con déficit. No hay rollback: cada orden se reporta por separado y un fallo no detiene a las demás.
// @Tags         restock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BatchRestockRequest  false  "Motivo común (opcional)"
// @Success      200   {object}  dto.BatchRestockResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/v1/stock/restock-critical [post]
func (h *RestockHandler) RestockCritical(c *fiber.Ctx) error {
	var in dto.BatchRestockRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}

	report, err := h.engine.RestockAllCritical(c.Context(), in.Reason)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(report)
}
