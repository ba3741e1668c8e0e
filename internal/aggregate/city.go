// Package aggregate computes the descriptive summaries the report is built
// from. Everything here is a pure reduction over the generated slices.
package aggregate

import (
	"sort"

	"github.com/sells-group/location-insights/internal/model"
)

// CityStats joins the per-city user rollup (count, mean match success) with
// the per-city event count. The join is inner: a city with users but zero
// events is dropped from the result. That boundary is intentional; switching
// to a zero-filled left join is a semantic change, not a fix.
func CityStats(users []model.User, events []model.Event) []model.CityMetrics {
	type cityAcc struct {
		users      int
		successSum float64
	}
	userAcc := make(map[string]*cityAcc)
	for _, u := range users {
		acc := userAcc[u.City]
		if acc == nil {
			acc = &cityAcc{}
			userAcc[u.City] = acc
		}
		acc.users++
		acc.successSum += u.MatchSuccess
	}

	eventCounts := make(map[string]int)
	for _, e := range events {
		eventCounts[e.City]++
	}

	var metrics []model.CityMetrics
	for city, acc := range userAcc {
		evts, ok := eventCounts[city]
		if !ok {
			continue
		}
		metrics = append(metrics, model.CityMetrics{
			City:       city,
			Users:      acc.users,
			Events:     evts,
			AvgSuccess: acc.successSum / float64(acc.users),
		})
	}

	// Map iteration order is random; fix it so downstream stable sorts have
	// a deterministic base order.
	sort.Slice(metrics, func(i, j int) bool { return metrics[i].City < metrics[j].City })
	return metrics
}
