package aggregate

import "github.com/sells-group/location-insights/internal/model"

// HourlyActivity is the hour-by-weekday cross tabulation of event counts,
// with the derived headline figures the report prints.
type HourlyActivity struct {
	// Counts[hour][weekday], hour 0-23, weekday 0=Mon .. 6=Sun.
	// Absent combinations stay zero.
	Counts [24][7]int

	PeakHour      int // hour with the highest overall count; ties go to the earliest hour
	WeekendEvents int
	WeekdayEvents int
}

// Hourly cross-tabulates events by hour and weekday and derives the peak
// hour and the weekend/weekday split.
func Hourly(events []model.Event) HourlyActivity {
	var h HourlyActivity
	for _, e := range events {
		h.Counts[e.Hour][e.Weekday]++
		if e.IsWeekend {
			h.WeekendEvents++
		} else {
			h.WeekdayEvents++
		}
	}

	best := -1
	for hour := 0; hour < 24; hour++ {
		total := 0
		for wd := 0; wd < 7; wd++ {
			total += h.Counts[hour][wd]
		}
		if total > best {
			best = total
			h.PeakHour = hour
		}
	}
	return h
}

// HourTotal returns the overall event count for one hour of day.
func (h *HourlyActivity) HourTotal(hour int) int {
	total := 0
	for wd := 0; wd < 7; wd++ {
		total += h.Counts[hour][wd]
	}
	return total
}
