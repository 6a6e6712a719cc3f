package http

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/panasystem/panasystem-api/internal/application/dto"
	"github.com/panasystem/panasystem-api/internal/application/sales"
	"github.com/panasystem/panasystem-api/internal/domain"
	"github.com/panasystem/panasystem-api/internal/domain/repository"
)

// SaleHandler maneja las peticiones HTTP de ventas (protegido).
type SaleHandler struct {
	uc *sales.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create godoc
// @Summary      Crear venta(s)
// @Description  Acepta un objeto (una venta) o un array (lote). El lote entra
// @Description  en una sola transacción: cualquier fallo revierte todo.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Venta o array de ventas"
// @Success      201   {array}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	body := bytes.TrimSpace(c.Body())
	var batch []dto.CreateSaleRequest
	if len(body) > 0 && body[0] == '[' {
		if err := json.Unmarshal(body, &batch); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	} else {
		var one dto.CreateSaleRequest
		if err := json.Unmarshal(body, &one); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
		batch = []dto.CreateSaleRequest{one}
	}
	out, err := h.uc.CreateSales(c.Context(), batch)
	if err != nil {
		return respondError(c, err)
	}
	// Un objeto entró, un objeto sale; un array entró, un array sale.
	if len(body) > 0 && body[0] == '[' {
		return c.Status(fiber.StatusCreated).JSON(out)
	}
	return c.Status(fiber.StatusCreated).JSON(out[0])
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetSale(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        customer        query  string  false  "Filtrar por cliente"
// @Param        is_bakery       query  bool    false  "Solo ventas de panadería"
// @Param        payment_method  query  string  false  "efv | trf | crd | qr"
// @Param        delivered       query  bool    false  "Filtrar por entregadas"
// @Param        uncharged       query  bool    false  "Solo ventas con saldo pendiente"
// @Param        date            query  string  false  "Ventas de un día exacto (YYYY-MM-DD)"
// @Param        date_from       query  string  false  "Desde (YYYY-MM-DD)"
// @Param        date_to         query  string  false  "Hasta, día incluido (YYYY-MM-DD)"
// @Param        order_by        query  string  false  "date | -date | total | -total"
// @Param        limit           query  int     false  "Límite"   default(20)
// @Param        offset          query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.SaleListResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()

	filter := repository.SaleFilter{
		CustomerID:    c.Query("customer"),
		PaymentMethod: c.Query("payment_method"),
		Uncharged:     c.QueryBool("uncharged"),
		OrderBy:       c.Query("order_by"),
		Limit:         page.Limit,
		Offset:        page.Offset,
	}
	if v := c.Query("is_bakery"); v != "" {
		b := c.QueryBool("is_bakery")
		filter.IsBakery = &b
	}
	if v := c.Query("delivered"); v != "" {
		b := c.QueryBool("delivered")
		filter.Delivered = &b
	}
	if v := c.Query("date"); v != "" {
		// Un día exacto equivale al rango [día, día+1).
		day, err := time.Parse("2006-01-02", v)
		if err != nil {
			return respondError(c, domain.ErrInvalidDate)
		}
		next := day.AddDate(0, 0, 1)
		filter.DateFrom = &day
		filter.DateTo = &next
	} else {
		if v := c.Query("date_from"); v != "" {
			from, err := time.Parse("2006-01-02", v)
			if err != nil {
				return respondError(c, domain.ErrInvalidDate)
			}
			filter.DateFrom = &from
		}
		if v := c.Query("date_to"); v != "" {
			to, err := time.Parse("2006-01-02", v)
			if err != nil {
				return respondError(c, domain.ErrInvalidDate)
			}
			to = to.AddDate(0, 0, 1) // exclusivo: incluye el día final completo
			filter.DateTo = &to
		}
	}

	out, err := h.uc.ListSales(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar venta (parcial)
// @Description  Si el cuerpo trae sale_details, TODAS las líneas se reemplazan
// @Description  y el total se recalcula; si no, líneas y total quedan intactos.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la venta"
// @Param        body  body  dto.UpdateSaleRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [put]
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateSale(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar venta
// @Tags         sales
// @Security     Bearer
// @Param        id  path  string  true  "ID de la venta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [delete]
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteSale(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Totals godoc
// @Summary      Totales de ventas en un rango
// @Description  Cuenta y suma ventas en [date_from, date_to] (día final incluido).
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        date_from       query  string  true   "YYYY-MM-DD"
// @Param        date_to         query  string  true   "YYYY-MM-DD"
// @Param        payment_method  query  string  false  "efv | trf | crd | qr"
// @Param        is_bakery       query  bool    false  "Solo ventas de panadería"
// @Success      200  {object}  dto.TotalsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales/totals [get]
func (h *SaleHandler) Totals(c *fiber.Ctx) error {
	var isBakery *bool
	if v := c.Query("is_bakery"); v != "" {
		b := c.QueryBool("is_bakery")
		isBakery = &b
	}
	out, err := h.uc.Totals(c.Context(), c.Query("date_from"), c.Query("date_to"), c.Query("payment_method"), isBakery)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Ticket PDF de una venta
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.Receipt(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="ticket-`+c.Params("id")+`.pdf"`)
	return c.Send(pdfBytes)
}
