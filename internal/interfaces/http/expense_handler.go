package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/panasystem/panasystem-api/internal/application/dto"
	"github.com/panasystem/panasystem-api/internal/application/usecase"
	"github.com/panasystem/panasystem-api/internal/domain"
	"github.com/panasystem/panasystem-api/internal/domain/repository"
)

// ExpenseHandler maneja las peticiones HTTP de gastos (protegido).
type ExpenseHandler struct {
	uc *usecase.ExpenseUseCase
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.ExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ExpenseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	var in dto.ExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar gastos
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Param        supplier   query  string  false  "Filtrar por proveedor"
// @Param        category   query  string  false  "Filtrar por categoría de gasto"
// @Param        employee   query  string  false  "Filtrar por empleado"
// @Param        date_from  query  string  false  "YYYY-MM-DD"
// @Param        date_to    query  string  false  "YYYY-MM-DD (día incluido)"
// @Param        limit      query  int     false  "Límite"   default(20)
// @Param        offset     query  int     false  "Offset"   default(0)
// @Success      200  {array}  dto.ExpenseResponse
// @Router       /api/expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()

	filter := repository.ExpenseFilter{
		SupplierID: c.Query("supplier"),
		CategoryID: c.Query("category"),
		EmployeeID: c.Query("employee"),
		Limit:      page.Limit,
		Offset:     page.Offset,
	}
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

	out, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
