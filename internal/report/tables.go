package report

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/location-insights/internal/aggregate"
	"github.com/sells-group/location-insights/internal/model"
)

var npr = message.NewPrinter(language.English)

// PrintCityTable writes the per-city summary, most users first.
func PrintCityTable(out io.Writer, metrics []model.CityMetrics) {
	rows := append([]model.CityMetrics(nil), metrics...)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Users > rows[j].Users })

	fmt.Fprintln(out, "\n=== Users per City & Avg Match Success ===")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CITY\tUSERS\tEVENTS\tAVG_SUCCESS")
	fmt.Fprintln(w, "----\t-----\t------\t-----------")
	for _, m := range rows {
		fmt.Fprintf(w, "%s\t%d\t%d\t%.3f\n", m.City, m.Users, m.Events, m.AvgSuccess)
	}
	_ = w.Flush()
}

// PrintHourlyPivot writes the 24x7 hour-by-weekday activity table.
func PrintHourlyPivot(out io.Writer, h *aggregate.HourlyActivity) {
	fmt.Fprintln(out, "\n=== Hourly Usage (hour x weekday) ===")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "HOUR\tMON\tTUE\tWED\tTHU\tFRI\tSAT\tSUN")
	for hour := 0; hour < 24; hour++ {
		fmt.Fprintf(w, "%02d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			hour,
			h.Counts[hour][0], h.Counts[hour][1], h.Counts[hour][2], h.Counts[hour][3],
			h.Counts[hour][4], h.Counts[hour][5], h.Counts[hour][6],
		)
	}
	_ = w.Flush()

	npr.Fprintf(out, "\nPeak usage hour (overall): %d:00 (%d events)\n", h.PeakHour, h.HourTotal(h.PeakHour))
	npr.Fprintf(out, "Weekday events: %d\n", h.WeekdayEvents)
	npr.Fprintf(out, "Weekend events: %d\n", h.WeekendEvents)
}

// PrintClusterTable writes the hotspot summary, largest cluster first.
func PrintClusterTable(out io.Writer, summaries []model.ClusterSummary) {
	fmt.Fprintln(out, "\n=== Geographic Hotspot Clusters (DBSCAN) ===")
	if len(summaries) == 0 {
		fmt.Fprintln(out, "No dense clusters found.")
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CLUSTER\tEVENTS\tAVG_LAT\tAVG_LON")
	for _, s := range summaries {
		fmt.Fprintf(w, "%d\t%d\t%.4f\t%.4f\n", s.Cluster, s.Events, s.AvgLat, s.AvgLon)
	}
	_ = w.Flush()
}

// PrintRanking writes the recommended launch zones in rank order.
func PrintRanking(out io.Writer, ranked []model.CityMetrics) {
	fmt.Fprintf(out, "\n=== Recommended Event Launch Zones (Top %d) ===\n", len(ranked))
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tCITY\tUSERS\tEVENTS\tAVG_SUCCESS\tSCORE")
	for i, m := range ranked {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%.3f\t%.3f\n", i+1, m.City, m.Users, m.Events, m.AvgSuccess, m.Score)
	}
	_ = w.Flush()
}
