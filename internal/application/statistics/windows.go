package statistics

import "time"

// Ventanas canónicas de los rollups. Todas son [from, to) en hora local,
// alineadas a medianoche.

// TodayWindow devuelve el día de ref completo.
func TodayWindow(ref time.Time) (from, to time.Time) {
	from = midnight(ref)
	return from, from.AddDate(0, 0, 1)
}

// WeekWindow devuelve la semana calendario de ref, de lunes a domingo.
func WeekWindow(ref time.Time) (from, to time.Time) {
	day := midnight(ref)
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // domingo: retrocede al lunes anterior
	}
	from = day.AddDate(0, 0, -offset)
	return from, from.AddDate(0, 0, 7)
}

// MonthWindow devuelve el mes calendario de ref.
func MonthWindow(ref time.Time) (from, to time.Time) {
	from = time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	return from, from.AddDate(0, 1, 0)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
