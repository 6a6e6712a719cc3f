package statistics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/panasystem/panasystem-api/internal/application/statistics"
)

// Las ventanas son [from, to) alineadas a medianoche local. Los casos de borde
// importantes: domingo pertenece a la semana que arrancó el lunes ANTERIOR, y
// los meses de 28/29/31 días cierran donde corresponde.

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestTodayWindow(t *testing.T) {
	ref := time.Date(2026, time.March, 15, 14, 30, 45, 0, time.Local)
	from, to := statistics.TodayWindow(ref)
	assert.Equal(t, date(2026, time.March, 15), from)
	assert.Equal(t, date(2026, time.March, 16), to)
}

func TestWeekWindow_Miercoles(t *testing.T) {
	// Miércoles 2026-03-18 → semana del lunes 16 al lunes 23 (exclusivo).
	from, to := statistics.WeekWindow(date(2026, time.March, 18))
	assert.Equal(t, date(2026, time.March, 16), from)
	assert.Equal(t, date(2026, time.March, 23), to)
}

func TestWeekWindow_LunesArrancaEseDia(t *testing.T) {
	from, to := statistics.WeekWindow(date(2026, time.March, 16))
	assert.Equal(t, date(2026, time.March, 16), from)
	assert.Equal(t, date(2026, time.March, 23), to)
}

func TestWeekWindow_DomingoPerteneceALaSemanaAnterior(t *testing.T) {
	// Domingo 2026-03-22: la semana arrancó el lunes 16, no "mañana".
	from, to := statistics.WeekWindow(date(2026, time.March, 22))
	assert.Equal(t, date(2026, time.March, 16), from)
	assert.Equal(t, date(2026, time.March, 23), to)
}

func TestMonthWindow(t *testing.T) {
	from, to := statistics.MonthWindow(time.Date(2026, time.March, 15, 10, 0, 0, 0, time.Local))
	assert.Equal(t, date(2026, time.March, 1), from)
	assert.Equal(t, date(2026, time.April, 1), to)
}

func TestMonthWindow_FebreroNoBisiesto(t *testing.T) {
	from, to := statistics.MonthWindow(date(2026, time.February, 28))
	assert.Equal(t, date(2026, time.February, 1), from)
	assert.Equal(t, date(2026, time.March, 1), to)
}

func TestMonthWindow_Diciembre(t *testing.T) {
	from, to := statistics.MonthWindow(date(2026, time.December, 31))
	assert.Equal(t, date(2026, time.December, 1), from)
	assert.Equal(t, date(2027, time.January, 1), to)
}
