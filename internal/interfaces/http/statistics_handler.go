package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/panasystem/panasystem-api/internal/application/dto"
	"github.com/panasystem/panasystem-api/internal/application/statistics"
)

// StatisticsHandler maneja las peticiones HTTP de estadísticas (protegido, solo lectura).
type StatisticsHandler struct {
	uc *statistics.StatisticsUseCase
}

// NewStatisticsHandler construye el handler.
func NewStatisticsHandler(uc *statistics.StatisticsUseCase) *StatisticsHandler {
	return &StatisticsHandler{uc: uc}
}

// Get godoc
// @Summary      Estadísticas de ventas
// @Description  Rollups de hoy, semana en curso (lunes a domingo), mes
// @Description  calendario y rango a medida opcional; cada ventana admite su
// @Description  propio filtro de método de pago.
// @Tags         statistics
// @Security     Bearer
// @Produce      json
// @Param        payment_method_today      query  string  false  "efv | trf | crd | qr"
// @Param        payment_method_week       query  string  false  "efv | trf | crd | qr"
// @Param        payment_method_month      query  string  false  "efv | trf | crd | qr"
// @Param        payment_method_customize  query  string  false  "efv | trf | crd | qr"
// @Param        start_date                query  string  false  "YYYY-MM-DD"
// @Param        end_date                  query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.StatisticsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/statistics [get]
func (h *StatisticsHandler) Get(c *fiber.Ctx) error {
	var q dto.StatisticsQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	out, err := h.uc.GetStatistics(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Custom godoc
// @Summary      Estadísticas de un rango a medida
// @Tags         statistics
// @Security     Bearer
// @Produce      json
// @Param        start_date      query  string  true   "YYYY-MM-DD"
// @Param        end_date        query  string  true   "YYYY-MM-DD"
// @Param        payment_method  query  string  false  "efv | trf | crd | qr"
// @Success      200  {object}  dto.WindowStatsDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/statistics/custom [get]
func (h *StatisticsHandler) Custom(c *fiber.Ctx) error {
	out, err := h.uc.CustomStats(c.Context(), c.Query("start_date"), c.Query("end_date"), c.Query("payment_method"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
