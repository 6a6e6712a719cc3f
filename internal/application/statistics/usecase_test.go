package statistics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panasystem/panasystem-api/internal/application/dto"
	"github.com/panasystem/panasystem-api/internal/application/statistics"
	"github.com/panasystem/panasystem-api/internal/domain"
	"github.com/panasystem/panasystem-api/internal/domain/repository"
)

// fakeStatsRepo registra las ventanas consultadas y devuelve datos fijos.
type fakeStatsRepo struct {
	summaryCalls []window
	count        int64
	total        decimal.Decimal
	best         []repository.BestSeller
	orders       decimal.Decimal
}

type window struct {
	from, to      time.Time
	paymentMethod string
}

func (r *fakeStatsRepo) SalesSummary(_ context.Context, from, to time.Time, paymentMethod string) (int64, decimal.Decimal, error) {
	r.summaryCalls = append(r.summaryCalls, window{from: from, to: to, paymentMethod: paymentMethod})
	return r.count, r.total, nil
}

func (r *fakeStatsRepo) BestSellingProducts(_ context.Context, _, _ time.Time, limit int) ([]repository.BestSeller, error) {
	if limit < len(r.best) {
		return r.best[:limit], nil
	}
	return r.best, nil
}

func (r *fakeStatsRepo) SupplierOrdersTotal(_ context.Context, _, _ time.Time) (decimal.Decimal, error) {
	return r.orders, nil
}

func newTestUC(repo *fakeStatsRepo, ref time.Time) *statistics.StatisticsUseCase {
	return statistics.NewStatisticsUseCaseWithClock(repo, func() time.Time { return ref })
}

func TestGetStatistics_TresVentanasCanonicas(t *testing.T) {
	repo := &fakeStatsRepo{
		count: 7,
		total: decimal.RequireFromString("1234.50"),
		best: []repository.BestSeller{
			{ProductID: "p1", ProductName: "Facturas", TotalQuantity: decimal.NewFromInt(40)},
		},
		orders: decimal.RequireFromString("300"),
	}
	// Miércoles 2026-03-18.
	ref := time.Date(2026, time.March, 18, 11, 0, 0, 0, time.Local)
	uc := newTestUC(repo, ref)

	out, err := uc.GetStatistics(context.Background(), dto.StatisticsQuery{})
	require.NoError(t, err)
	assert.Nil(t, out.SalesCustom, "sin fechas no hay bloque custom")

	require.Len(t, repo.summaryCalls, 3, "hoy, semana y mes")
	day := time.Date(2026, time.March, 18, 0, 0, 0, 0, time.Local)
	assert.Equal(t, day, repo.summaryCalls[0].from)
	assert.Equal(t, day.AddDate(0, 0, 1), repo.summaryCalls[0].to)
	assert.Equal(t, time.Date(2026, time.March, 16, 0, 0, 0, 0, time.Local), repo.summaryCalls[1].from, "la semana arranca el lunes")
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local), repo.summaryCalls[2].from)

	assert.Equal(t, int64(7), out.SalesToday.SalesCount)
	assert.True(t, out.SalesToday.TotalEarned.Equal(decimal.RequireFromString("1234.50")))
	require.Len(t, out.SalesToday.BestSellingProducts, 1)
	assert.Equal(t, "Facturas", out.SalesToday.BestSellingProducts[0].ProductName)
	assert.True(t, out.SalesToday.TotalOrders.Equal(decimal.RequireFromString("300")))
}

func TestGetStatistics_MetodoDePagoPorVentana(t *testing.T) {
	repo := &fakeStatsRepo{}
	uc := newTestUC(repo, time.Date(2026, time.March, 18, 11, 0, 0, 0, time.Local))

	_, err := uc.GetStatistics(context.Background(), dto.StatisticsQuery{
		PaymentMethodToday: "efv",
		PaymentMethodMonth: "trf",
	})
	require.NoError(t, err)
	require.Len(t, repo.summaryCalls, 3)
	assert.Equal(t, "efv", repo.summaryCalls[0].paymentMethod)
	assert.Equal(t, "", repo.summaryCalls[1].paymentMethod)
	assert.Equal(t, "trf", repo.summaryCalls[2].paymentMethod)
}

func TestGetStatistics_MetodoDePagoDesconocido(t *testing.T) {
	uc := newTestUC(&fakeStatsRepo{}, time.Now())
	_, err := uc.GetStatistics(context.Background(), dto.StatisticsQuery{
		PaymentMethodWeek: "cheque",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetStatistics_ConRangoCustom(t *testing.T) {
	repo := &fakeStatsRepo{}
	uc := newTestUC(repo, time.Date(2026, time.March, 18, 11, 0, 0, 0, time.Local))

	out, err := uc.GetStatistics(context.Background(), dto.StatisticsQuery{
		StartDate: "2026-01-01",
		EndDate:   "2026-01-15",
	})
	require.NoError(t, err)
	require.NotNil(t, out.SalesCustom)
	require.Len(t, repo.summaryCalls, 4)

	custom := repo.summaryCalls[3]
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), custom.from)
	// Exclusivo: el 15 entra completo.
	assert.Equal(t, time.Date(2026, time.January, 16, 0, 0, 0, 0, time.UTC), custom.to)
}

func TestCustomStats_Validaciones(t *testing.T) {
	uc := newTestUC(&fakeStatsRepo{}, time.Now())

	_, err := uc.CustomStats(context.Background(), "2026-01-01", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "ambas fechas son requeridas")

	_, err = uc.CustomStats(context.Background(), "", "2026-01-15", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CustomStats(context.Background(), "15-01-2026", "2026-01-31", "")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)

	_, err = uc.CustomStats(context.Background(), "2026-01-01", "2026-01-15", "cheque")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCustomStats_RangoVacioDevuelveCeros(t *testing.T) {
	uc := newTestUC(&fakeStatsRepo{}, time.Now())
	out, err := uc.CustomStats(context.Background(), "2026-01-01", "2026-01-15", "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.SalesCount)
	assert.True(t, out.TotalEarned.IsZero())
	assert.True(t, out.TotalOrders.IsZero())
	assert.Empty(t, out.BestSellingProducts)
}
