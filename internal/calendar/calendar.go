// Package calendar counts working days of plan and program periods.
package calendar

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/aa"
)

// ---------------------------------------------------------------------------
// Ecuador Public Holidays
// ---------------------------------------------------------------------------

var (
	newYear = &cal.Holiday{Name: "Año Nuevo", Type: cal.ObservancePublic, Month: time.January, Day: 1, Func: cal.CalcDayOfMonth}

	carnivalMonday  = &cal.Holiday{Name: "Lunes de Carnaval", Type: cal.ObservancePublic, Offset: -48, Func: cal.CalcEasterOffset}
	carnivalTuesday = &cal.Holiday{Name: "Martes de Carnaval", Type: cal.ObservancePublic, Offset: -47, Func: cal.CalcEasterOffset}
	goodFriday      = aa.GoodFriday.Clone(&cal.Holiday{Name: "Viernes Santo", Type: cal.ObservancePublic})

	labourDay    = &cal.Holiday{Name: "Día del Trabajo", Type: cal.ObservancePublic, Month: time.May, Day: 1, Func: cal.CalcDayOfMonth}
	pichincha    = &cal.Holiday{Name: "Batalla de Pichincha", Type: cal.ObservancePublic, Month: time.May, Day: 24, Func: cal.CalcDayOfMonth}
	independence = &cal.Holiday{Name: "Primer Grito de Independencia", Type: cal.ObservancePublic, Month: time.August, Day: 10, Func: cal.CalcDayOfMonth}
	guayaquil    = &cal.Holiday{Name: "Independencia de Guayaquil", Type: cal.ObservancePublic, Month: time.October, Day: 9, Func: cal.CalcDayOfMonth}
	allSouls     = &cal.Holiday{Name: "Día de los Difuntos", Type: cal.ObservancePublic, Month: time.November, Day: 2, Func: cal.CalcDayOfMonth}
	cuenca       = &cal.Holiday{Name: "Independencia de Cuenca", Type: cal.ObservancePublic, Month: time.November, Day: 3, Func: cal.CalcDayOfMonth}
	christmasDay = &cal.Holiday{Name: "Navidad", Type: cal.ObservancePublic, Month: time.December, Day: 25, Func: cal.CalcDayOfMonth}
)

// regionHolidays maps region codes to their public holidays.
var regionHolidays = map[string][]*cal.Holiday{
	"EC": {
		newYear, carnivalMonday, carnivalTuesday, goodFriday, labourDay, pichincha,
		independence, guayaquil, allSouls, cuenca, christmasDay,
	},
}

// Counter counts working days on a business calendar.
type Counter struct {
	cal *cal.BusinessCalendar
}

// New creates a counter for region. Unknown or empty regions count every
// weekday as a working day.
func New(region string) *Counter {
	c := cal.NewBusinessCalendar()
	c.Name = "Calendario institucional"
	c.Description = "Días laborables del sector público"
	c.AddHoliday(regionHolidays[region]...)
	return &Counter{cal: c}
}

// IsWorkday reports whether date is a working day.
func (w *Counter) IsWorkday(date time.Time) bool {
	return w.cal.IsWorkday(date)
}

// MaxSpanYears bounds the periods WorkdaysInRange will count.
const MaxSpanYears = 100

// WorkdaysInRange counts working days from start to end, both inclusive.
// Only the calendar date of each bound is used. It returns 0 when end
// precedes start and -1 when the period spans more than MaxSpanYears.
func (w *Counter) WorkdaysInRange(start, end time.Time) int {
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	if end.Before(start) {
		return 0
	}
	if end.After(start.AddDate(MaxSpanYears, 0, 0)) {
		return -1
	}
	return w.cal.WorkdaysInRange(start, end)
}
