package statistics

import (
	"context"
	"fmt"
	"time"

	"github.com/panasystem/panasystem-api/internal/application/dto"
	"github.com/panasystem/panasystem-api/internal/domain"
	"github.com/panasystem/panasystem-api/internal/domain/entity"
	"github.com/panasystem/panasystem-api/internal/domain/repository"
)

// Cantidad de productos en el top de más vendidos.
const bestSellersLimit = 5

// StatisticsUseCase arma los rollups de ventas: hoy, semana en curso (lunes a
// domingo), mes calendario y rango a medida. Solo lectura, sin mutación.
type StatisticsUseCase struct {
	repo repository.StatisticsRepository
	now  func() time.Time
}

// NewStatisticsUseCase construye el caso de uso.
func NewStatisticsUseCase(repo repository.StatisticsRepository) *StatisticsUseCase {
	return NewStatisticsUseCaseWithClock(repo, time.Now)
}

// NewStatisticsUseCaseWithClock construye el caso de uso con un reloj propio,
// que fija la fecha de referencia de las ventanas hoy/semana/mes.
func NewStatisticsUseCaseWithClock(repo repository.StatisticsRepository, clock func() time.Time) *StatisticsUseCase {
	return &StatisticsUseCase{repo: repo, now: clock}
}

// GetStatistics devuelve las cuatro ventanas, cada una filtrable por su propio
// método de pago. El bloque custom se omite si no vienen fechas; fechas mal
// formadas fallan con error de validación nombrando el formato esperado.
func (uc *StatisticsUseCase) GetStatistics(ctx context.Context, q dto.StatisticsQuery) (*dto.StatisticsResponse, error) {
	for _, pm := range []string{q.PaymentMethodToday, q.PaymentMethodWeek, q.PaymentMethodMonth, q.PaymentMethodCustomize} {
		if pm != "" && !entity.ValidPaymentMethod(pm) {
			return nil, fmt.Errorf("método de pago %q desconocido: %w", pm, domain.ErrInvalidInput)
		}
	}

	ref := uc.now()
	out := &dto.StatisticsResponse{}

	from, to := TodayWindow(ref)
	today, err := uc.windowStats(ctx, from, to, q.PaymentMethodToday)
	if err != nil {
		return nil, err
	}
	out.SalesToday = *today

	from, to = WeekWindow(ref)
	week, err := uc.windowStats(ctx, from, to, q.PaymentMethodWeek)
	if err != nil {
		return nil, err
	}
	out.SalesWeek = *week

	from, to = MonthWindow(ref)
	month, err := uc.windowStats(ctx, from, to, q.PaymentMethodMonth)
	if err != nil {
		return nil, err
	}
	out.SalesMonth = *month

	if q.StartDate == "" && q.EndDate == "" {
		return out, nil
	}
	custom, err := uc.customWindow(ctx, q.StartDate, q.EndDate, q.PaymentMethodCustomize)
	if err != nil {
		return nil, err
	}
	out.SalesCustom = custom
	return out, nil
}

// CustomStats devuelve solo el rollup del rango [startDate, endDate].
func (uc *StatisticsUseCase) CustomStats(ctx context.Context, startDate, endDate, paymentMethod string) (*dto.WindowStatsDTO, error) {
	if paymentMethod != "" && !entity.ValidPaymentMethod(paymentMethod) {
		return nil, fmt.Errorf("método de pago %q desconocido: %w", paymentMethod, domain.ErrInvalidInput)
	}
	return uc.customWindow(ctx, startDate, endDate, paymentMethod)
}

func (uc *StatisticsUseCase) customWindow(ctx context.Context, startDate, endDate, paymentMethod string) (*dto.WindowStatsDTO, error) {
	if startDate == "" || endDate == "" {
		return nil, fmt.Errorf("start_date y end_date son requeridos: %w", domain.ErrInvalidInput)
	}
	from, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	to, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	return uc.windowStats(ctx, from, to.AddDate(0, 0, 1), paymentMethod)
}

// windowStats arma el rollup de una ventana [from, to): cantidad de ventas,
// suma de totales (cero si no hay filas), top de productos y suma de pedidos.
func (uc *StatisticsUseCase) windowStats(ctx context.Context, from, to time.Time, paymentMethod string) (*dto.WindowStatsDTO, error) {
	count, total, err := uc.repo.SalesSummary(ctx, from, to, paymentMethod)
	if err != nil {
		return nil, err
	}
	best, err := uc.repo.BestSellingProducts(ctx, from, to, bestSellersLimit)
	if err != nil {
		return nil, err
	}
	orders, err := uc.repo.SupplierOrdersTotal(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := &dto.WindowStatsDTO{
		TotalEarned:         total,
		SalesCount:          count,
		BestSellingProducts: make([]dto.BestSellerDTO, 0, len(best)),
		TotalOrders:         orders,
	}
	for _, b := range best {
		out.BestSellingProducts = append(out.BestSellingProducts, dto.BestSellerDTO{
			ProductID:         b.ProductID,
			ProductName:       b.ProductName,
			TotalQuantitySold: b.TotalQuantity,
		})
	}
	return out, nil
}
