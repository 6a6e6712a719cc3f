package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/panasystem/panasystem-api/internal/application/dto"
	"github.com/panasystem/panasystem-api/internal/application/usecase"
)

// SupplierOrderHandler maneja las peticiones HTTP de pedidos a proveedores (protegido).
type SupplierOrderHandler struct {
	uc *usecase.SupplierOrderUseCase
}

// NewSupplierOrderHandler construye el handler.
func NewSupplierOrderHandler(uc *usecase.SupplierOrderUseCase) *SupplierOrderHandler {
	return &SupplierOrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear pedido a proveedor
// @Description  Cabecera y líneas en una transacción; el total se deriva de
// @Description  las líneas, nunca lo fija el cliente.
// @Tags         supplier-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SupplierOrderRequest  true  "Pedido con líneas"
// @Success      201   {object}  dto.SupplierOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/supplier-orders [post]
func (h *SupplierOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.SupplierOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *SupplierOrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SupplierOrderHandler) Update(c *fiber.Ctx) error {
	var in dto.SupplierOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SupplierOrderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SupplierOrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
